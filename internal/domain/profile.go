// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrProfileNotFound indicates that the profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidAmount indicates an amount that is not a positive number.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Profile types.
const (
	TypeClient     = "client"
	TypeContractor = "contractor"
)

// Profile holds balance data for one party, either a client or a contractor.
type Profile struct {
	ID         int64           `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Profession string          `json:"profession"`
	Balance    decimal.Decimal `json:"balance"`
	Type       string          `json:"type"`
	CreatedAt  time.Time       `json:"created_at"`
}
