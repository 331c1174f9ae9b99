// Package settlementrepo manages the transactional store used by settlements.
package settlementrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/internal/settlementservice"
	"github.com/gigpay/gigpay/pkg/errorspkg"
)

// StorePGS opens settlement transactions against Postgres.
type StorePGS struct {
	conn *sql.DB
}

// NewStorePGS returns settlement StorePGS.
func NewStorePGS(conn *sql.DB) *StorePGS {
	return &StorePGS{conn: conn}
}

// Begin opens a transaction and returns the handle scoped to it.
func (s *StorePGS) Begin(ctx context.Context) (settlementservice.Tx, error) {
	l := zerolog.Ctx(ctx)

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return &TxPGS{tx: tx}, nil
}

// TxPGS runs locked reads and writes inside a single settlement transaction.
type TxPGS struct {
	tx *sql.Tx
}

const getJobForUpdateQuery = `
SELECT
	j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date, j.created_at,
	c.id, c.terms, c.status, c.client_id, c.contractor_id, c.created_at
FROM jobs j
	JOIN contracts c ON j.contract_id = c.id
WHERE j.id = $1
FOR UPDATE OF j
`

// GetJobForUpdate locks the job row and returns it with its contract.
func (t *TxPGS) GetJobForUpdate(ctx context.Context, jobID int64) (domain.JobWithContract, error) {
	l := zerolog.Ctx(ctx)

	row := t.tx.QueryRowContext(ctx, getJobForUpdateQuery, jobID)

	var jwc domain.JobWithContract

	err := row.Scan(
		&jwc.Job.ID,
		&jwc.Job.ContractID,
		&jwc.Job.Description,
		&jwc.Job.Price,
		&jwc.Job.Paid,
		&jwc.Job.PaymentDate,
		&jwc.Job.CreatedAt,
		&jwc.Contract.ID,
		&jwc.Contract.Terms,
		&jwc.Contract.Status,
		&jwc.Contract.ClientID,
		&jwc.Contract.ContractorID,
		&jwc.Contract.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return jwc, domain.ErrJobNotFound
		}

		return jwc, errorspkg.ErrInternal
	}

	return jwc, nil
}

const getProfileForUpdateQuery = `
SELECT
	id, first_name, last_name, profession, balance, type, created_at
FROM profiles
WHERE id = $1
FOR UPDATE
`

// GetProfileForUpdate locks the profile row and returns it.
func (t *TxPGS) GetProfileForUpdate(ctx context.Context, profileID int64) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	row := t.tx.QueryRowContext(ctx, getProfileForUpdateQuery, profileID)

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

const sumUnpaidClientJobsQuery = `
SELECT COALESCE(SUM(j.price), 0)
FROM jobs j
	JOIN contracts c ON j.contract_id = c.id
WHERE c.client_id = $1 AND NOT j.paid
`

// SumUnpaidClientJobs returns the outstanding liability of the client within
// the transaction's snapshot.
func (t *TxPGS) SumUnpaidClientJobs(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	row := t.tx.QueryRowContext(ctx, sumUnpaidClientJobsQuery, clientID)

	var sum decimal.Decimal
	if err := row.Scan(&sum); err != nil {
		l.Error().Err(err).Send()
		return decimal.Decimal{}, errorspkg.ErrInternal
	}

	return sum, nil
}

const setProfileBalanceQuery = `
UPDATE profiles
SET balance = $1
WHERE id = $2
`

// SetProfileBalance writes the new balance of the already locked profile.
func (t *TxPGS) SetProfileBalance(ctx context.Context, profileID int64, balance decimal.Decimal) error {
	l := zerolog.Ctx(ctx)

	res, err := t.tx.ExecContext(ctx, setProfileBalanceQuery, balance, profileID)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}

const markJobPaidQuery = `
UPDATE jobs
SET paid = true, payment_date = $1
WHERE id = $2 AND NOT paid
`

// MarkJobPaid transitions the already locked job to its paid state.
func (t *TxPGS) MarkJobPaid(ctx context.Context, jobID int64, paymentDate time.Time) error {
	l := zerolog.Ctx(ctx)

	res, err := t.tx.ExecContext(ctx, markJobPaidQuery, paymentDate, jobID)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrJobAlreadyPaid
	}

	return nil
}

// Commit commits the transaction.
func (t *TxPGS) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction. Calling it after Commit is a no-op so that
// a single deferred Rollback covers every exit path.
func (t *TxPGS) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}
