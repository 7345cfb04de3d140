package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/pkg/retry"
)

var produceRetry = retry.RetryConfig{
	MaxAttempts: 3,
	Backoff:     retry.ExponentialBackoff(100 * time.Millisecond),
	ShouldRetry: func(err error) bool {
		return !errors.Is(err, context.Canceled) &&
			!errors.Is(err, context.DeadlineExceeded)
	},
}

// SubmitInquiry sends the visitor's cart together with the contact details and
// takes the submitted lines out of the cart once the inquiry is acknowledged.
func (s *Service) SubmitInquiry(
	ctx context.Context, visitorID string, sub domain.Submission,
) (domain.Submission, error) {
	const op = "Service.SubmitInquiry"

	cart, err := s.lockedCart(ctx, visitorID)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("%s: %w", op, err)
	}
	if cart.IsEmpty() {
		return domain.Submission{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	sub.Kind = domain.KindInquiry
	sub.Items = cart.Snapshot()

	sub, err = s.submit(ctx, visitorID, sub)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.releaseItems(ctx, visitorID, sub.Items); err != nil {
		slog.Error("failed to clear cart after inquiry",
			"op", op, "submissionID", sub.ID, "err", err)
	}
	return sub, nil
}

func (s *Service) lockedCart(ctx context.Context, visitorID string) (domain.Cart, error) {
	unlock := s.locks.Lock(visitorID)
	defer unlock()
	return s.loadCart(ctx, visitorID)
}

// releaseItems removes the submitted lines from the stored cart. The record
// is deleted once nothing is left.
func (s *Service) releaseItems(
	ctx context.Context, visitorID string, items []domain.CartItem,
) error {
	const op = "Service.releaseItems"

	unlock := s.locks.Lock(visitorID)
	defer unlock()

	cart, err := s.loadCart(ctx, visitorID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	cart.Release(items)

	if cart.IsEmpty() {
		err = s.carts.DeleteCart(ctx, visitorID)
	} else {
		err = s.saveCart(ctx, visitorID, cart)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.observer.CartChanged("clear")
	return nil
}

func (s *Service) SendContactMessage(
	ctx context.Context, visitorID string, sub domain.Submission,
) (domain.Submission, error) {
	const op = "Service.SendContactMessage"

	sub.Kind = domain.KindContact
	sub.Items = nil
	sub, err := s.submit(ctx, visitorID, sub)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

func (s *Service) ApplyMembership(
	ctx context.Context, visitorID string, sub domain.Submission,
) (domain.Submission, error) {
	const op = "Service.ApplyMembership"

	sub.Kind = domain.KindMembership
	sub.Items = nil
	sub, err := s.submit(ctx, visitorID, sub)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// submit waits for the acknowledgment delay, then records and publishes sub.
// Recording and publishing are best effort: failures are logged only.
func (s *Service) submit(
	ctx context.Context, visitorID string, sub domain.Submission,
) (domain.Submission, error) {
	const op = "Service.submit"

	sub.ID = s.opts.NewID()
	sub.VisitorID = visitorID
	sub.CreatedAt = s.opts.Now().UTC()

	log := slog.With("op", op, "submissionID", sub.ID, "kind", sub.Kind)

	if err := s.awaitAck(ctx); err != nil {
		return domain.Submission{}, err
	}

	if s.submissions != nil {
		if err := s.submissions.StoreSubmission(ctx, sub); err != nil {
			log.Error("failed to store submission", "err", err)
		}
	}

	if s.producer != nil {
		err := retry.Do(ctx, produceRetry, func() error {
			return s.producer.ProduceSubmission(ctx, sub)
		})
		if err != nil {
			log.Error("failed to publish submission", "err", err)
		}
	}

	s.observer.Submitted(sub.Kind)
	log.Info("submission accepted", "nItems", len(sub.Items))
	return sub, nil
}

func (s *Service) awaitAck(ctx context.Context) error {
	if s.opts.AckDelay == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.opts.AckDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
