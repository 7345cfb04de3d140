package httphandler

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/port"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	tmplPage     = "page.html"
	tmplProducts = "products.html"
	tmplProduct  = "product.html"
	tmplCart     = "cart.html"
)

const notFoundSlug = "not-found"

// Static pages by route. Forms name the submission form rendered below the
// page content, if any.
var staticRoutes = []struct {
	pattern string
	slug    string
	form    string
}{
	{"GET /{$}", "home", ""},
	{"GET /about", "about", ""},
	{"GET /services", "services", ""},
	{"GET /services/freight-forwarding", "freight-forwarding", ""},
	{"GET /services/entrusted-import", "entrusted-import", ""},
	{"GET /contact", "contact", "contact"},
	{"GET /member", "member", "member"},
	{"GET /policy", "policy", ""},
}

type PagesHandler struct {
	pages    port.PageProvider
	products port.ProductBrowser
	carts    port.CartManager
	tmpl     map[string]*template.Template
}

// RegisterPages mounts the HTML routes. Every path without a route renders
// the not found page.
func RegisterPages(
	mux *http.ServeMux,
	pages port.PageProvider,
	products port.ProductBrowser,
	carts port.CartManager,
) error {
	tmpl, err := parseTemplates()
	if err != nil {
		return err
	}
	h := PagesHandler{pages, products, carts, tmpl}

	for _, route := range staticRoutes {
		mux.HandleFunc(route.pattern, h.StaticPage(route.slug, route.form))
	}
	mux.HandleFunc("GET /products", h.Products)
	mux.HandleFunc("GET /product/{id}", h.Product)
	mux.HandleFunc("GET /cart", h.Cart)
	mux.HandleFunc("GET /404", h.NotFound)
	mux.HandleFunc("GET /", h.NotFound)
	return nil
}

func parseTemplates() (map[string]*template.Template, error) {
	tmpl := make(map[string]*template.Template)
	for _, name := range []string{tmplPage, tmplProducts, tmplProduct, tmplCart} {
		t, err := template.New(name).ParseFS(
			templateFS, "templates/layout.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		tmpl[name] = t
	}
	return tmpl, nil
}

type layoutView struct {
	Title     string
	Path      string
	Theme     domain.Theme
	Nav       []domain.NavItem
	CartCount int
}

type pageView struct {
	layoutView
	Page          domain.Page
	Form          string
	BusinessTypes []string
}

type productsView struct {
	layoutView
	Page       domain.Page
	Featured   []domain.FeaturedCategory
	Tags       []string
	Categories []string
	Query      domain.ProductQuery
	Result     domain.ProductPage
}

func (v productsView) PageURL(page int) string {
	values := url.Values{}
	if v.Query.Search != "" {
		values.Set("q", v.Query.Search)
	}
	if v.Query.Category != "" {
		values.Set("category", v.Query.Category)
	}
	values.Set("page", strconv.Itoa(page))
	return "/products?" + values.Encode()
}

func (v productsView) PrevURL() string { return v.PageURL(v.Result.Page - 1) }
func (v productsView) NextURL() string { return v.PageURL(v.Result.Page + 1) }

type productView struct {
	layoutView
	Product domain.Product
}

type cartView struct {
	layoutView
	Page domain.Page
	Cart domain.Cart
}

func (h PagesHandler) StaticPage(slug, form string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := h.pages.Page(slug)
		if !ok {
			h.NotFound(w, r)
			return
		}
		h.render(w, http.StatusOK, tmplPage, pageView{
			layoutView:    h.layout(r, page.Title),
			Page:          page,
			Form:          form,
			BusinessTypes: domain.BusinessTypes,
		})
	}
}

func (h PagesHandler) Products(w http.ResponseWriter, r *http.Request) {
	const op = "PagesHandler.Products"
	log := slog.With("op", op)

	q, err := parseProductQuery(r)
	if err != nil {
		q = q.WithPage(1)
	}

	result, err := h.products.ListProducts(r.Context(), q)
	if err != nil {
		log.Error("failed to list products", "err", err)
		http.Error(w, "catalog is unavailable", http.StatusServiceUnavailable)
		return
	}

	page, _ := h.pages.Page("products")
	h.render(w, http.StatusOK, tmplProducts, productsView{
		layoutView: h.layout(r, page.Title),
		Page:       page,
		Featured:   h.pages.FeaturedCategories(),
		Tags:       h.pages.CategoryTags(),
		Categories: h.products.Categories(r.Context()),
		Query:      q,
		Result:     result,
	})
}

func (h PagesHandler) Product(w http.ResponseWriter, r *http.Request) {
	const op = "PagesHandler.Product"
	log := slog.With("op", op)

	p, err := h.products.Product(r.Context(), r.PathValue("id"))
	if err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			log.Error("failed to get product", "err", err)
		}
		h.NotFound(w, r)
		return
	}

	h.render(w, http.StatusOK, tmplProduct, productView{
		layoutView: h.layout(r, p.Name),
		Product:    p,
	})
}

func (h PagesHandler) Cart(w http.ResponseWriter, r *http.Request) {
	const op = "PagesHandler.Cart"
	log := slog.With("op", op)

	cart, err := h.carts.Cart(r.Context(), VisitorID(r.Context()))
	if err != nil {
		log.Error("failed to load cart", "err", err)
	}

	page, _ := h.pages.Page("cart")
	layout := h.layout(r, page.Title)
	layout.CartCount = cart.ItemCount()
	h.render(w, http.StatusOK, tmplCart, cartView{
		layoutView: layout,
		Page:       page,
		Cart:       cart,
	})
}

func (h PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	page, _ := h.pages.Page(notFoundSlug)
	h.render(w, http.StatusNotFound, tmplPage, pageView{
		layoutView: h.layout(r, page.Title),
		Page:       page,
	})
}

func (h PagesHandler) layout(r *http.Request, title string) layoutView {
	const op = "PagesHandler.layout"

	v := layoutView{
		Title: title,
		Path:  r.URL.Path,
		Theme: ThemeFromContext(r.Context()),
		Nav:   h.pages.Navigation(),
	}

	cart, err := h.carts.Cart(r.Context(), VisitorID(r.Context()))
	if err != nil {
		slog.Warn("cart badge is unavailable", "op", op, "err", err)
		return v
	}
	v.CartCount = cart.ItemCount()
	return v
}

func (h PagesHandler) render(w http.ResponseWriter, code int, name string, data any) {
	const op = "PagesHandler.render"

	var buf bytes.Buffer
	if err := h.tmpl[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("failed to render page", "op", op, "template", name, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}
