package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/port"
)

var _ port.SubmissionsStorage = (*SubmissionsRepository)(nil)

type SubmissionsRepository struct {
	sqldb sqldb
}

func NewSubmissionsRepository(sqldb sqldb) SubmissionsRepository {
	return SubmissionsRepository{sqldb}
}

func (r SubmissionsRepository) StoreSubmission(
	ctx context.Context, s domain.Submission,
) error {
	const op = "SubmissionsRepository.StoreSubmission"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	items := s.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	itemsB, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO submissions (
			id, kind, visitor_id, created_at,
			first_name, last_name, email, company, phone,
			subject, message, business_type, items
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::jsonb)
		ON CONFLICT (id) DO NOTHING;`

	_, err = r.sqldb.ExecContext(ctx, query,
		s.ID, string(s.Kind), s.VisitorID, s.CreatedAt,
		s.Contact.FirstName, s.Contact.LastName, s.Contact.Email,
		s.Contact.Company, s.Contact.Phone,
		s.Subject, s.Message, s.BusinessType, string(itemsB),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}
