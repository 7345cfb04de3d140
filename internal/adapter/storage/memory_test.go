package storage

import (
	"testing"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCarts(t *testing.T) {
	m := NewMemoryCarts()
	ctx := t.Context()

	data, err := m.LoadCart(ctx, "v1")
	require.NoError(t, err)
	assert.Nil(t, data)

	payload := []byte(`[{"id":"1","name":"Fan","img":"","quantity":1}]`)
	require.NoError(t, m.SaveCart(ctx, "v1", payload))
	payload[0] = 'X'

	data, err = m.LoadCart(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, byte('['), data[0], "stored data must not alias the caller's slice")

	_, stored := m.data["kanoha_cart:v1"]
	assert.True(t, stored)

	require.NoError(t, m.DeleteCart(ctx, "v1"))
	data, err = m.LoadCart(ctx, "v1")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemorySubmissions(t *testing.T) {
	m := NewMemorySubmissions()
	require.NoError(t, m.StoreSubmission(t.Context(), domain.Submission{ID: "1"}))
	require.NoError(t, m.StoreSubmission(t.Context(), domain.Submission{ID: "2"}))

	subs := m.Submissions()
	require.Len(t, subs, 2)
	assert.Equal(t, "2", subs[1].ID)
}
