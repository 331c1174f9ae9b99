// Package jobrepo manages repository layer of jobs.
package jobrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/pkg/dbpkg"
	"github.com/gigpay/gigpay/pkg/errorspkg"
)

// RepoPGS facilitates job repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns job RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const listUnpaidQuery = `
SELECT
	j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date, j.created_at
FROM jobs j
	JOIN contracts c ON j.contract_id = c.id
WHERE (c.client_id = $1 OR c.contractor_id = $1)
	AND c.status = 'in_progress'
	AND NOT j.paid
ORDER BY j.id
`

// ListUnpaid returns unpaid jobs of the profile's in-progress contracts.
func (r *RepoPGS) ListUnpaid(ctx context.Context, profileID int64) ([]domain.Job, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listUnpaidQuery, profileID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Job{}

	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.ContractID, &j.Description, &j.Price, &j.Paid, &j.PaymentDate, &j.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, j)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
