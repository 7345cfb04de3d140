package httphandler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kanoha/storefront/internal/adapter/content"
	"github.com/kanoha/storefront/internal/adapter/httphandler"
	"github.com/kanoha/storefront/internal/adapter/storage"
	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler     http.Handler
	submissions *storage.MemorySubmissions
}

func testProducts() []domain.Product {
	ps := make([]domain.Product, 25)
	for i := range ps {
		category := "Audio"
		if i%5 == 0 {
			category = "Kitchenware"
		}
		ps[i] = domain.Product{
			ID:          fmt.Sprint(i + 1),
			Name:        fmt.Sprintf("Product %d", i+1),
			Price:       domain.ContactForPrice,
			Category:    category,
			Img:         "/images/products/p.webp",
			Description: "High-quality item",
		}
	}
	return ps
}

func newTestServer(t *testing.T, theme httphandler.ThemeSettings) testServer {
	t.Helper()

	submissions := storage.NewMemorySubmissions()
	svc := service.New(
		storage.NewCatalog(testProducts()),
		storage.NewMemoryCarts(),
		submissions,
		nil,
		nil,
		service.Options{},
	)

	mux := http.NewServeMux()
	httphandler.RegisterCart(mux, svc)
	httphandler.RegisterProducts(mux, svc)
	httphandler.RegisterSubmissions(mux, svc)
	httphandler.RegisterTheme(mux, theme)
	httphandler.RegisterHealth(mux)
	require.NoError(t, httphandler.RegisterPages(mux, content.NewSite(), svc, svc))

	h := httphandler.Visitor(httphandler.Theme(theme)(httphandler.AllowJSON(mux)))
	return testServer{handler: h, submissions: submissions}
}

// client keeps the cookies set by the server between requests.
type client struct {
	t       *testing.T
	srv     testServer
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, srv testServer) *client {
	return &client{t: t, srv: srv, cookies: make(map[string]*http.Cookie)}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		r.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.srv.handler.ServeHTTP(w, r)

	for _, cookie := range w.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestCartAPI(t *testing.T) {
	srv := newTestServer(t, httphandler.ThemeSettings{Default: domain.ThemeLight})

	t.Run("AddTwice", func(t *testing.T) {
		c := newClient(t, srv)

		w := c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"3"}`)
		require.Equal(t, http.StatusOK, w.Code)
		cart := decode[httphandler.CartResponse](t, w)
		assert.Equal(t, "Product 3 added to inquiry list", cart.Notice)

		w = c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"3"}`)
		require.Equal(t, http.StatusOK, w.Code)
		cart = decode[httphandler.CartResponse](t, w)
		assert.Equal(t, "Increased quantity of Product 3", cart.Notice)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, 2, cart.ItemCount)

		w = c.do(http.MethodGet, "/api/v1/cart", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, decode[httphandler.CartResponse](t, w).ItemCount)
	})

	t.Run("VisitorsAreIsolated", func(t *testing.T) {
		a, b := newClient(t, srv), newClient(t, srv)

		a.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"1"}`)
		w := b.do(http.MethodGet, "/api/v1/cart", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[httphandler.CartResponse](t, w).Items)
	})

	t.Run("UpdateAndRemove", func(t *testing.T) {
		c := newClient(t, srv)
		c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"2"}`)
		c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"4"}`)

		w := c.do(http.MethodPatch, "/api/v1/cart/items/2", `{"quantity":0}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, decode[httphandler.CartResponse](t, w).ItemCount)

		w = c.do(http.MethodPatch, "/api/v1/cart/items/2", `{"quantity":5}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 6, decode[httphandler.CartResponse](t, w).ItemCount)

		w = c.do(http.MethodDelete, "/api/v1/cart/items/missing", "")
		require.Equal(t, http.StatusOK, w.Code)
		cart := decode[httphandler.CartResponse](t, w)
		assert.Equal(t, 6, cart.ItemCount)
		assert.Empty(t, cart.Notice)

		w = c.do(http.MethodDelete, "/api/v1/cart/items/4", "")
		require.Equal(t, http.StatusOK, w.Code)
		cart = decode[httphandler.CartResponse](t, w)
		assert.Equal(t, "Item removed from list", cart.Notice)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "2", cart.Items[0].ID)

		w = c.do(http.MethodDelete, "/api/v1/cart", "")
		require.Equal(t, http.StatusNoContent, w.Code)

		w = c.do(http.MethodGet, "/api/v1/cart", "")
		assert.Equal(t, 0, decode[httphandler.CartResponse](t, w).ItemCount)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		c := newClient(t, srv)
		w := c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"999"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("BadRequests", func(t *testing.T) {
		c := newClient(t, srv)

		w := c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = c.do(http.MethodPost, "/api/v1/cart/items", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[httphandler.ErrorResponse](t, w)
		require.Len(t, resp.Fields, 1)
		assert.Equal(t, "product_id", resp.Fields[0].Field)

		w = c.do(http.MethodPatch, "/api/v1/cart/items/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("WrongMediaType", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
			strings.NewReader(`{"product_id":"1"}`))
		r.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()
		srv.handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}

func TestProductsAPI(t *testing.T) {
	srv := newTestServer(t, httphandler.ThemeSettings{Default: domain.ThemeLight})
	c := newClient(t, srv)

	w := c.do(http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[httphandler.ProductsResponse](t, w)
	assert.Len(t, page.Items, 12)
	assert.Equal(t, "1", page.Items[0].ID)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 25, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)

	w = c.do(http.MethodGet, "/api/v1/products?page=3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[httphandler.ProductsResponse](t, w).Items, 1)

	w = c.do(http.MethodGet, "/api/v1/products?page=99", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[httphandler.ProductsResponse](t, w).Page)

	w = c.do(http.MethodGet, "/api/v1/products?q=product+1&category=Kitchenware", "")
	require.Equal(t, http.StatusOK, w.Code)
	page = decode[httphandler.ProductsResponse](t, w)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "1", page.Items[0].ID)
	assert.Equal(t, "11", page.Items[1].ID)
	assert.Equal(t, "16", page.Items[2].ID)

	w = c.do(http.MethodGet, "/api/v1/products?q=nothing-matches", "")
	require.Equal(t, http.StatusOK, w.Code)
	page = decode[httphandler.ProductsResponse](t, w)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)

	w = c.do(http.MethodGet, "/api/v1/products?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodGet, "/api/v1/products/7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Product 7", decode[domain.Product](t, w).Name)

	w = c.do(http.MethodGet, "/api/v1/products/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Audio", "Kitchenware"},
		decode[httphandler.CategoriesResponse](t, w).Categories)
}

func TestSubmissionsAPI(t *testing.T) {
	srv := newTestServer(t, httphandler.ThemeSettings{Default: domain.ThemeLight})

	t.Run("InquiryWithEmptyCart", func(t *testing.T) {
		c := newClient(t, srv)
		w := c.do(http.MethodPost, "/api/v1/inquiries",
			`{"first_name":"John","email":"john@example.com"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Inquiry", func(t *testing.T) {
		c := newClient(t, srv)
		c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"5"}`)
		c.do(http.MethodPost, "/api/v1/cart/items", `{"product_id":"5"}`)

		w := c.do(http.MethodPost, "/api/v1/inquiries",
			`{"first_name":"John","last_name":"Doe","email":"john@example.com"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		resp := decode[httphandler.SubmissionResponse](t, w)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "inquiry", resp.Kind)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 2, resp.Items[0].Quantity)

		w = c.do(http.MethodGet, "/api/v1/cart", "")
		assert.Empty(t, decode[httphandler.CartResponse](t, w).Items)

		var found bool
		for _, s := range srv.submissions.Submissions() {
			if s.ID == resp.ID {
				found = true
				assert.Equal(t, "john@example.com", s.Contact.Email)
			}
		}
		assert.True(t, found)
	})

	t.Run("ContactValidation", func(t *testing.T) {
		c := newClient(t, srv)
		w := c.do(http.MethodPost, "/api/v1/contact",
			`{"first_name":"John","email":"not-an-email","subject":"Hi","message":"Hello"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[httphandler.ErrorResponse](t, w)
		require.Len(t, resp.Fields, 1)
		assert.Equal(t, "email", resp.Fields[0].Field)
	})

	t.Run("Contact", func(t *testing.T) {
		c := newClient(t, srv)
		w := c.do(http.MethodPost, "/api/v1/contact",
			`{"first_name":"John","email":"john@example.com","subject":"Hi","message":"Hello"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "contact", decode[httphandler.SubmissionResponse](t, w).Kind)
	})

	t.Run("Membership", func(t *testing.T) {
		c := newClient(t, srv)
		w := c.do(http.MethodPost, "/api/v1/members",
			`{"first_name":"John","company":"Acme","email":"john@acme.com","business_type":"Farmer"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = c.do(http.MethodPost, "/api/v1/members",
			`{"first_name":"John","company":"Acme","email":"john@acme.com","business_type":"Retailer"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "membership", decode[httphandler.SubmissionResponse](t, w).Kind)
	})
}

func TestThemeAPI(t *testing.T) {
	t.Run("Locked", func(t *testing.T) {
		srv := newTestServer(t, httphandler.ThemeSettings{Default: domain.ThemeLight})
		c := newClient(t, srv)

		w := c.do(http.MethodPost, "/api/v1/theme", `{"theme":"dark"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = c.do(http.MethodGet, "/api/v1/theme", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "light", decode[httphandler.ThemeResponse](t, w).Theme)
	})

	t.Run("Switchable", func(t *testing.T) {
		srv := newTestServer(t, httphandler.ThemeSettings{
			Default: domain.ThemeLight, Switchable: true,
		})
		c := newClient(t, srv)

		w := c.do(http.MethodPost, "/api/v1/theme", `{"theme":"sepia"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = c.do(http.MethodPost, "/api/v1/theme", `{"theme":"dark"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = c.do(http.MethodGet, "/api/v1/theme", "")
		assert.Equal(t, "dark", decode[httphandler.ThemeResponse](t, w).Theme)

		w = c.do(http.MethodGet, "/about", "")
		assert.Contains(t, w.Body.String(), `<html lang="en" class="dark">`)
	})
}

func TestVisitorCookie(t *testing.T) {
	srv := newTestServer(t, httphandler.ThemeSettings{Default: domain.ThemeLight})

	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.AddCookie(&http.Cookie{Name: httphandler.VisitorCookie, Value: "not-a-uuid"})
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, httphandler.VisitorCookie, cookies[0].Name)
	assert.NotEqual(t, "not-a-uuid", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	c := newClient(t, srv)
	c.do(http.MethodGet, "/healthz", "")
	w = c.do(http.MethodGet, "/healthz", "")
	assert.Empty(t, w.Result().Cookies())
}
