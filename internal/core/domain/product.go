package domain

import (
	"errors"
	"strings"
)

const (
	PlaceholderImage = "/images/products/placeholder.webp"
	DefaultPageSize  = 12
	ContactForPrice  = "Contact for Price"

	// AllCategories disables the category filter.
	AllCategories = "all"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Category    string   `json:"category"`
	Img         string   `json:"img"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// A FeaturedCategory is a curated group shown on the products page.
type FeaturedCategory struct {
	Name  string
	Img   string
	Items []string
}

// A ProductQuery selects one page of the catalog.
type ProductQuery struct {
	Search   string
	Category string
	Page     int
}

// WithSearch returns q searching for s. The page resets to 1 when s changes.
func (q ProductQuery) WithSearch(s string) ProductQuery {
	if q.Search != s {
		q.Search = s
		q.Page = 1
	}
	return q
}

// WithCategory returns q filtered by category. The page resets to 1 when the
// category changes.
func (q ProductQuery) WithCategory(category string) ProductQuery {
	if q.Category != category {
		q.Category = category
		q.Page = 1
	}
	return q
}

func (q ProductQuery) WithPage(page int) ProductQuery {
	q.Page = page
	return q
}

// Match reports whether p passes both the search and the category filter.
func (q ProductQuery) Match(p Product) bool {
	return q.matchCategory(p) && q.matchSearch(p)
}

func (q ProductQuery) matchCategory(p Product) bool {
	if q.Category == "" || q.Category == AllCategories {
		return true
	}
	return p.Category == q.Category
}

func (q ProductQuery) matchSearch(p Product) bool {
	s := strings.ToLower(strings.TrimSpace(q.Search))
	if s == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), s) ||
		strings.Contains(strings.ToLower(p.Description), s)
}

type ProductPage struct {
	Items      []Product
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

func (p ProductPage) HasPrev() bool { return p.Page > 1 }
func (p ProductPage) HasNext() bool { return p.Page < p.TotalPages }

// Paginate cuts page number page out of ps. Out of range pages are clamped.
func Paginate(ps []Product, page, size int) ProductPage {
	if size < 1 {
		size = DefaultPageSize
	}

	totalPages := (len(ps) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	page = min(max(page, 1), totalPages)

	start := min((page-1)*size, len(ps))
	end := min(start+size, len(ps))

	return ProductPage{
		Items:      ps[start:end],
		Page:       page,
		PageSize:   size,
		TotalItems: len(ps),
		TotalPages: totalPages,
	}
}
