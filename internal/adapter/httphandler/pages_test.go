package httphandler_test

import (
	"net/http"
	"testing"

	"github.com/kanoha/storefront/internal/adapter/httphandler"
	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages(t *testing.T) {
	srv := newTestServer(t, httphandler.ThemeSettings{Default: domain.ThemeDark})
	c := newClient(t, srv)

	tests := []struct {
		path string
		code int
		want string
	}{
		{"/", http.StatusOK, "Your Gateway to Global Trade."},
		{"/about", http.StatusOK, "Global Reach"},
		{"/services", http.StatusOK, "Drop Shipping"},
		{"/services/freight-forwarding", http.StatusOK, "Air Freight"},
		{"/services/entrusted-import", http.StatusOK, "Customs Management"},
		{"/contact", http.StatusOK, `data-endpoint="/api/v1/contact"`},
		{"/member", http.StatusOK, `<option value="Distributor">`},
		{"/policy", http.StatusOK, "7. Contact Us"},
		{"/products", http.StatusOK, "Showing 12 of 25 products"},
		{"/product/7", http.StatusOK, "Product 7"},
		{"/cart", http.StatusOK, "Your inquiry list is empty."},
		{"/404", http.StatusNotFound, "Page Not Found"},
		{"/no/such/page", http.StatusNotFound, "Page Not Found"},
		{"/product/unknown", http.StatusNotFound, "Page Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := c.do(http.MethodGet, tt.path, "")
			require.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
			assert.Contains(t, w.Body.String(), `class="dark"`)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		})
	}
}

func TestProductsPageFilters(t *testing.T) {
	srv := newTestServer(t, httphandler.ThemeSettings{Default: domain.ThemeLight})
	c := newClient(t, srv)

	w := c.do(http.MethodGet, "/products?category=Kitchenware", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Showing 5 of 5 products")
	assert.NotContains(t, body, "Page 1 of")

	w = c.do(http.MethodGet, "/products?page=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	assert.Contains(t, body, "Page 2 of 3")
	assert.Contains(t, body, `href="/products?page=1#catalog"`)
	assert.Contains(t, body, `href="/products?page=3#catalog"`)
}

func TestCartPageShowsItems(t *testing.T) {
	srv := newTestServer(t, httphandler.ThemeSettings{Default: domain.ThemeLight})
	c := newClient(t, srv)

	c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"9"}`)
	c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"9"}`)

	w := c.do(http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Product 9")
	assert.Contains(t, body, "Total items: 2")
	assert.Contains(t, body, `<span id="cart-count" class="badge">2</span>`)
	assert.Contains(t, body, `data-endpoint="/api/v1/inquiries"`)
}
