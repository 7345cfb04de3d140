package domain_test

import (
	"fmt"
	"testing"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProducts(n int) []domain.Product {
	ps := make([]domain.Product, n)
	for i := range ps {
		ps[i] = domain.Product{ID: fmt.Sprint(i + 1), Name: fmt.Sprintf("Item %d", i+1)}
	}
	return ps
}

func TestProductQueryMatch(t *testing.T) {
	radio := domain.Product{Name: "Retro Radio", Description: "AM/FM tuner", Category: "Audio"}
	fryer := domain.Product{Name: "Air Fryer", Description: "Crispy without oil", Category: "Kitchenware"}
	clock := domain.Product{Name: "Alarm Clock", Description: "Loud radio alarm", Category: "Clocks & Watches"}

	tests := []struct {
		name  string
		query domain.ProductQuery
		want  []bool
	}{
		{"NoFilters", domain.ProductQuery{}, []bool{true, true, true}},
		{"SearchIsCaseInsensitive", domain.ProductQuery{Search: "RADIO"}, []bool{true, false, true}},
		{"SearchCoversDescription", domain.ProductQuery{Search: "oil"}, []bool{false, true, false}},
		{"CategoryExact", domain.ProductQuery{Category: "Audio"}, []bool{true, false, false}},
		{"CategoryAll", domain.ProductQuery{Category: domain.AllCategories}, []bool{true, true, true}},
		{"CategoryNotSubstring", domain.ProductQuery{Category: "Aud"}, []bool{false, false, false}},
		{"Intersection", domain.ProductQuery{Search: "radio", Category: "Clocks & Watches"}, []bool{false, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, p := range []domain.Product{radio, fryer, clock} {
				assert.Equal(t, tt.want[i], tt.query.Match(p), p.Name)
			}
		})
	}
}

func TestProductQueryResetsPage(t *testing.T) {
	q := domain.ProductQuery{Search: "fan", Category: "Home", Page: 3}

	assert.Equal(t, 3, q.WithSearch("fan").Page)
	assert.Equal(t, 1, q.WithSearch("heater").Page)
	assert.Equal(t, 3, q.WithCategory("Home").Page)
	assert.Equal(t, 1, q.WithCategory("Audio").Page)
	assert.Equal(t, 2, q.WithPage(2).Page)
}

func TestPaginate(t *testing.T) {
	ps := makeProducts(25)

	t.Run("FirstPage", func(t *testing.T) {
		page := domain.Paginate(ps, 1, 12)
		require.Len(t, page.Items, 12)
		assert.Equal(t, "1", page.Items[0].ID)
		assert.Equal(t, "12", page.Items[11].ID)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 25, page.TotalItems)
		assert.False(t, page.HasPrev())
		assert.True(t, page.HasNext())
	})

	t.Run("LastPage", func(t *testing.T) {
		page := domain.Paginate(ps, 3, 12)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "25", page.Items[0].ID)
		assert.False(t, page.HasNext())
	})

	t.Run("Clamped", func(t *testing.T) {
		assert.Equal(t, 1, domain.Paginate(ps, 0, 12).Page)
		assert.Equal(t, 3, domain.Paginate(ps, 99, 12).Page)
	})

	t.Run("Empty", func(t *testing.T) {
		page := domain.Paginate(nil, 4, 12)
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("DefaultSize", func(t *testing.T) {
		page := domain.Paginate(ps, 1, 0)
		assert.Equal(t, domain.DefaultPageSize, page.PageSize)
	})
}

func TestParseTheme(t *testing.T) {
	theme, err := domain.ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	_, err = domain.ParseTheme("sepia")
	assert.ErrorIs(t, err, domain.ErrInvalidTheme)
}
