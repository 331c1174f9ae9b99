package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrJobNotFound indicates that the job is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrJobAlreadyPaid indicates an attempt to settle a job a second time.
	ErrJobAlreadyPaid = errors.New("job is already paid")
	// ErrInsufficientFunds indicates that the client balance does not cover the job price.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrPaymentNotAllowed indicates that the requesting profile is neither
	// the client nor the contractor of the job's contract.
	ErrPaymentNotAllowed = errors.New("unable to process the payment")
)

// Job is one billable unit of work with a fixed price, paid at most once.
type Job struct {
	ID          int64           `json:"id"`
	ContractID  int64           `json:"contract_id"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Paid        bool            `json:"paid"`
	PaymentDate *time.Time      `json:"payment_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// JobWithContract is the consistent snapshot of a job and its owning contract
// taken at the start of a settlement.
type JobWithContract struct {
	Job      Job
	Contract Contract
}

// PriceMismatchError indicates a payment that is not exactly equal to the job price.
type PriceMismatchError struct {
	Price decimal.Decimal
}

func (e PriceMismatchError) Error() string {
	return fmt.Sprintf("payment is not equal to job price ($ %s)", e.Price.StringFixed(2))
}

// DepositLimitError indicates a deposit above the allowed share of the
// profile's outstanding unpaid job value.
type DepositLimitError struct {
	Ceiling decimal.Decimal
}

func (e DepositLimitError) Error() string {
	return fmt.Sprintf("deposit value exceeds the maximum allowed: $ %s", e.Ceiling.StringFixed(2))
}
