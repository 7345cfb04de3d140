package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kanoha/storefront/internal/core/domain"
)

func (s *Service) Cart(ctx context.Context, visitorID string) (domain.Cart, error) {
	const op = "Service.Cart"

	cart, err := s.loadCart(ctx, visitorID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

// AddToCart adds the product or increments its quantity. The returned notice
// tells the visitor which of the two happened.
func (s *Service) AddToCart(
	ctx context.Context, visitorID, productID string,
) (domain.Cart, string, error) {
	const op = "Service.AddToCart"

	p, err := s.Product(ctx, productID)
	if err != nil {
		return domain.Cart{}, "", fmt.Errorf("%s: %w", op, err)
	}

	var notice string
	cart, err := s.mutateCart(ctx, visitorID, "add", func(c *domain.Cart) {
		if c.Add(p) {
			notice = "Increased quantity of " + p.Name
			return
		}
		notice = p.Name + " added to inquiry list"
	})
	if err != nil {
		return domain.Cart{}, "", fmt.Errorf("%s: %w", op, err)
	}
	return cart, notice, nil
}

const removedNotice = "Item removed from list"

// RemoveFromCart deletes the line. Unknown ids are ignored and yield no
// notice.
func (s *Service) RemoveFromCart(
	ctx context.Context, visitorID, productID string,
) (domain.Cart, string, error) {
	const op = "Service.RemoveFromCart"

	var notice string
	cart, err := s.mutateCart(ctx, visitorID, "remove", func(c *domain.Cart) {
		if c.Remove(productID) {
			notice = removedNotice
		}
	})
	if err != nil {
		return domain.Cart{}, "", fmt.Errorf("%s: %w", op, err)
	}
	return cart, notice, nil
}

// UpdateQuantity sets the line quantity. Quantities below 1 are ignored.
func (s *Service) UpdateQuantity(
	ctx context.Context, visitorID, productID string, quantity int,
) (domain.Cart, error) {
	const op = "Service.UpdateQuantity"

	if quantity < 1 {
		cart, err := s.loadCart(ctx, visitorID)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
		}
		return cart, nil
	}

	cart, err := s.mutateCart(ctx, visitorID, "update", func(c *domain.Cart) {
		c.UpdateQuantity(productID, quantity)
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

// ClearCart empties the cart and removes the persisted record.
func (s *Service) ClearCart(ctx context.Context, visitorID string) error {
	const op = "Service.ClearCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	unlock := s.locks.Lock(visitorID)
	defer unlock()

	if err := s.carts.DeleteCart(ctx, visitorID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.observer.CartChanged("clear")
	return nil
}

func (s *Service) mutateCart(
	ctx context.Context, visitorID, opName string, fn func(*domain.Cart),
) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}

	unlock := s.locks.Lock(visitorID)
	defer unlock()

	cart, err := s.loadCart(ctx, visitorID)
	if err != nil {
		return domain.Cart{}, err
	}

	fn(&cart)

	if err := s.saveCart(ctx, visitorID, cart); err != nil {
		return domain.Cart{}, err
	}
	s.observer.CartChanged(opName)
	return cart, nil
}

// loadCart rehydrates the visitor's cart. Unreadable data yields an empty cart.
func (s *Service) loadCart(ctx context.Context, visitorID string) (domain.Cart, error) {
	const op = "Service.loadCart"

	data, err := s.carts.LoadCart(ctx, visitorID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	if data == nil {
		return domain.Cart{}, nil
	}

	cart, err := domain.DecodeCart(data)
	if err != nil {
		slog.Error("failed to parse cart data",
			"op", op, "visitorID", visitorID, "err", err)
		s.observer.CartLoadFailed()
		return domain.Cart{}, nil
	}
	return cart, nil
}

func (s *Service) saveCart(
	ctx context.Context, visitorID string, cart domain.Cart,
) error {
	const op = "Service.saveCart"

	data, err := cart.Encode()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.carts.SaveCart(ctx, visitorID, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
