// Package settlementservice manages the business logic layer of settlements.
//
// Every operation runs inside a single store transaction: rows are locked
// first, business rules are checked against the locked snapshot, and writes
// are committed only if every rule holds.
package settlementservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/pkg/errorspkg"
	"github.com/gigpay/gigpay/pkg/moneypkg"
)

// depositCeilingRatio is the share of the outstanding unpaid job value a
// client is allowed to hold as a single deposit.
var depositCeilingRatio = decimal.RequireFromString("0.25")

// Tx provides the locked reads and writes of one settlement transaction.
// Rollback after Commit must be a no-op so a deferred Rollback can cover
// every exit path.
//
//go:generate mockgen -source service.go -destination service_mock.go -package settlementservice
type Tx interface {
	GetJobForUpdate(ctx context.Context, jobID int64) (domain.JobWithContract, error)
	GetProfileForUpdate(ctx context.Context, profileID int64) (domain.Profile, error)
	SumUnpaidClientJobs(ctx context.Context, clientID int64) (decimal.Decimal, error)
	SetProfileBalance(ctx context.Context, profileID int64, balance decimal.Decimal) error
	MarkJobPaid(ctx context.Context, jobID int64, paymentDate time.Time) error
	Commit() error
	Rollback() error
}

// Store provides the data access layer interface needed by the settlement service.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
}

// Service facilitates settlement business logic.
type Service struct {
	store Store
}

// New returns a settlement service over the given transactional store.
func New(store Store) *Service {
	return &Service{store: store}
}

// PayJob transfers the job's price from the contract's client to its
// contractor and marks the job paid, all within one transaction.
//
// paymentValue must equal the job price exactly; partial payments are not
// supported.
func (s *Service) PayJob(ctx context.Context, jobID, requestingProfileID int64, paymentValue decimal.Decimal) error {
	l := zerolog.Ctx(ctx)

	tx, err := s.store.Begin(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil {
			l.Error().Err(err).Send()
		}
	}()

	jwc, err := tx.GetJobForUpdate(ctx, jobID)
	if err != nil {
		return err
	}

	if !jwc.Contract.IsParticipant(requestingProfileID) {
		l.Info().Int64("job_id", jobID).Int64("profile_id", requestingProfileID).
			Msg("payment requested by a profile outside the contract")
		return domain.ErrPaymentNotAllowed
	}

	if jwc.Job.Paid {
		return domain.ErrJobAlreadyPaid
	}

	if !paymentValue.Equal(jwc.Job.Price) {
		return domain.PriceMismatchError{Price: jwc.Job.Price}
	}

	client, contractor, err := s.lockParties(ctx, tx, jwc.Contract)
	if err != nil {
		return err
	}

	amount := moneypkg.Round(paymentValue)

	if client.Balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}

	if err := tx.SetProfileBalance(ctx, client.ID, client.Balance.Sub(amount)); err != nil {
		return err
	}

	if err := tx.SetProfileBalance(ctx, contractor.ID, contractor.Balance.Add(amount)); err != nil {
		return err
	}

	if err := tx.MarkJobPaid(ctx, jobID, time.Now().UTC()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

// lockParties locks the client and contractor rows of the contract.
// To avoid deadlocks the rows are locked in consistent id order.
func (s *Service) lockParties(ctx context.Context, tx Tx, c domain.Contract) (client, contractor domain.Profile, err error) {
	if c.ClientID < c.ContractorID {
		client, err = tx.GetProfileForUpdate(ctx, c.ClientID)
		if err != nil {
			return client, contractor, err
		}

		contractor, err = tx.GetProfileForUpdate(ctx, c.ContractorID)

		return client, contractor, err
	}

	contractor, err = tx.GetProfileForUpdate(ctx, c.ContractorID)
	if err != nil {
		return client, contractor, err
	}

	client, err = tx.GetProfileForUpdate(ctx, c.ClientID)

	return client, contractor, err
}

// Deposit adds depositValue to the profile's balance. The deposit is rejected
// when it exceeds 25% of the profile's outstanding unpaid job value, computed
// under the same transaction so a concurrent payment cannot skew the figure.
func (s *Service) Deposit(ctx context.Context, profileID int64, depositValue decimal.Decimal) error {
	l := zerolog.Ctx(ctx)

	if !moneypkg.IsPositive(depositValue) {
		return domain.ErrInvalidAmount
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil {
			l.Error().Err(err).Send()
		}
	}()

	profile, err := tx.GetProfileForUpdate(ctx, profileID)
	if err != nil {
		return err
	}

	outstanding, err := tx.SumUnpaidClientJobs(ctx, profileID)
	if err != nil {
		return err
	}

	ceiling := outstanding.Mul(depositCeilingRatio)
	if depositValue.GreaterThan(ceiling) {
		return domain.DepositLimitError{Ceiling: ceiling}
	}

	newBalance := profile.Balance.Add(moneypkg.Round(depositValue))
	if err := tx.SetProfileBalance(ctx, profileID, newBalance); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
