// Package profilerepo manages repository layer of profiles.
package profilerepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/pkg/dbpkg"
	"github.com/gigpay/gigpay/pkg/errorspkg"
)

// RepoPGS facilitates profile repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns profile RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const getQuery = `
SELECT
	id, first_name, last_name, profession, balance, type, created_at
FROM profiles
WHERE id = $1
`

// Get returns the profile with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var p domain.Profile

	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Profession,
		&p.Balance,
		&p.Type,
		&p.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return p, domain.ErrProfileNotFound
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}
