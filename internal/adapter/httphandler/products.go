package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/port"
)

// GET v1/products?q=&category=&page= (200 OK, 400 Bad request)
// GET v1/products/{id} (200 OK, 404 Not found)
// GET v1/categories (200 OK)

type ProductsHandler struct {
	products port.ProductBrowser
}

func RegisterProducts(mux *http.ServeMux, products port.ProductBrowser) {
	h := ProductsHandler{products}
	mux.HandleFunc("GET /api/v1/products", h.ListProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /api/v1/categories", h.ListCategories)
}

func (h ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.ListProducts"
	log := slog.With("op", op)

	q, err := parseProductQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid page")
		return
	}

	page, err := h.products.ListProducts(r.Context(), q)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "catalog is unavailable")
		log.Error("failed to list products", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, toProductsResponse(page))
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	log := slog.With("op", op)

	p, err := h.products.Product(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusServiceUnavailable, "catalog is unavailable")
		log.Error("failed to get product", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h ProductsHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CategoriesResponse{
		Categories: h.products.Categories(r.Context()),
	})
}

// parseProductQuery reads q, category and page from the URL query.
// A missing page means the first one.
func parseProductQuery(r *http.Request) (domain.ProductQuery, error) {
	values := r.URL.Query()

	page := 1
	if s := values.Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return domain.ProductQuery{}, err
		}
		page = n
	}

	q := domain.ProductQuery{}.
		WithSearch(values.Get("q")).
		WithCategory(values.Get("category")).
		WithPage(page)
	return q, nil
}
