package service

import (
	"context"
	"fmt"

	"github.com/kanoha/storefront/internal/core/domain"
)

func (s *Service) ListProducts(
	ctx context.Context, q domain.ProductQuery,
) (domain.ProductPage, error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return domain.ProductPage{}, fmt.Errorf("%s: %w", op, err)
	}

	var matched []domain.Product
	for _, p := range s.products {
		if q.Match(p) {
			matched = append(matched, p)
		}
	}

	return domain.Paginate(matched, q.Page, s.opts.PageSize), nil
}

func (s *Service) Product(ctx context.Context, id string) (domain.Product, error) {
	const op = "Service.Product"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, ok := s.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %w: %q", op, domain.ErrProductNotFound, id)
	}
	return p, nil
}

// Categories returns the distinct product categories in sorted order.
func (s *Service) Categories(context.Context) []string {
	return s.categories
}
