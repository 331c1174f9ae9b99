// Package reportrepo manages repository layer of payment reports.
package reportrepo

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/pkg/dbpkg"
	"github.com/gigpay/gigpay/pkg/errorspkg"
)

// RepoPGS facilitates report repository layer logic.
//
// Window arguments are compared inclusively against payment_date; expanding
// calendar dates to day boundaries is the caller's concern.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns report RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const totalOutstandingQuery = `
SELECT COALESCE(SUM(j.price), 0)
FROM jobs j
	JOIN contracts c ON j.contract_id = c.id
WHERE c.client_id = $1 AND NOT j.paid
`

// TotalOutstanding returns the sum of prices of the client's unpaid jobs.
func (r *RepoPGS) TotalOutstanding(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, totalOutstandingQuery, clientID)

	var sum decimal.Decimal
	if err := row.Scan(&sum); err != nil {
		l.Error().Err(err).Send()
		return decimal.Decimal{}, errorspkg.ErrInternal
	}

	return sum, nil
}

const bestProfessionsQuery = `
SELECT p.profession, SUM(j.price) AS total_earned
FROM jobs j
	JOIN contracts c ON j.contract_id = c.id
	JOIN profiles p ON c.contractor_id = p.id
WHERE j.paid
	AND j.payment_date >= $1 AND j.payment_date <= $2
	AND p.type = 'contractor'
GROUP BY p.profession
ORDER BY total_earned DESC
`

// BestProfessions returns professions ranked by money earned in the window.
func (r *RepoPGS) BestProfessions(ctx context.Context, start, end time.Time) ([]domain.ProfessionEarnings, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, bestProfessionsQuery, start, end)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.ProfessionEarnings{}

	for rows.Next() {
		var pe domain.ProfessionEarnings
		if err := rows.Scan(&pe.Profession, &pe.TotalEarned); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, pe)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const bestClientsQuery = `
SELECT p.id, p.first_name, p.last_name, SUM(j.price) AS total_paid
FROM jobs j
	JOIN contracts c ON j.contract_id = c.id
	JOIN profiles p ON c.client_id = p.id
WHERE j.paid
	AND j.payment_date >= $1 AND j.payment_date <= $2
	AND p.type = 'client'
GROUP BY p.id, p.first_name, p.last_name
ORDER BY total_paid DESC
LIMIT $3
`

// BestClients returns the top clients by money paid in the window.
func (r *RepoPGS) BestClients(ctx context.Context, start, end time.Time, limit int32) ([]domain.ClientPaymentsRow, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, bestClientsQuery, start, end, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.ClientPaymentsRow{}

	for rows.Next() {
		var row domain.ClientPaymentsRow
		if err := rows.Scan(&row.ID, &row.FirstName, &row.LastName, &row.TotalPaid); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, row)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
