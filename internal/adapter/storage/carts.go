package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kanoha/storefront/internal/core/port"
)

var _ port.CartStorage = (*CartsRepository)(nil)

// CartsRepository keeps one serialized cart per visitor in PostgreSQL.
type CartsRepository struct {
	sqldb sqldb
}

func NewCartsRepository(sqldb sqldb) CartsRepository {
	return CartsRepository{sqldb}
}

func (r CartsRepository) LoadCart(
	ctx context.Context, visitorID string,
) ([]byte, error) {
	const op = "CartsRepository.LoadCart"

	query := `SELECT payload::text FROM carts WHERE visitor_id = $1;`

	var payload string
	err := r.sqldb.QueryRowContext(ctx, query, visitorID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return []byte(payload), nil
}

func (r CartsRepository) SaveCart(
	ctx context.Context, visitorID string, data []byte,
) error {
	const op = "CartsRepository.SaveCart"

	query := `
		INSERT INTO carts (visitor_id, payload, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (visitor_id) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at;`

	if _, err := r.sqldb.ExecContext(ctx, query, visitorID, string(data)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r CartsRepository) DeleteCart(ctx context.Context, visitorID string) error {
	const op = "CartsRepository.DeleteCart"

	query := `DELETE FROM carts WHERE visitor_id = $1;`

	if _, err := r.sqldb.ExecContext(ctx, query, visitorID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
