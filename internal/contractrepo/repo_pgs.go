// Package contractrepo manages repository layer of contracts.
package contractrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/pkg/dbpkg"
	"github.com/gigpay/gigpay/pkg/errorspkg"
)

// RepoPGS facilitates contract repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns contract RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const getQuery = `
SELECT
	id, terms, status, client_id, contractor_id, created_at
FROM contracts
WHERE id = $1
`

// Get returns the contract with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Contract, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var c domain.Contract

	err := row.Scan(
		&c.ID,
		&c.Terms,
		&c.Status,
		&c.ClientID,
		&c.ContractorID,
		&c.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrContractNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const listActiveQuery = `
SELECT
	id, terms, status, client_id, contractor_id, created_at
FROM contracts
WHERE (client_id = $1 OR contractor_id = $1) AND status <> 'terminated'
ORDER BY id
`

// ListActive returns the profile's non-terminated contracts.
func (r *RepoPGS) ListActive(ctx context.Context, profileID int64) ([]domain.Contract, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listActiveQuery, profileID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Contract{}

	for rows.Next() {
		var c domain.Contract
		if err := rows.Scan(&c.ID, &c.Terms, &c.Status, &c.ClientID, &c.ContractorID, &c.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
