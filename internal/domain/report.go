package domain

import "github.com/shopspring/decimal"

// ProfessionEarnings is one row of the best-professions report.
type ProfessionEarnings struct {
	Profession  string          `json:"profession"`
	TotalEarned decimal.Decimal `json:"total_earned"`
}

// ClientPayments is one row of the best-clients report.
type ClientPayments struct {
	ID        int64           `json:"id"`
	FullName  string          `json:"full_name"`
	TotalPaid decimal.Decimal `json:"total_paid"`
}

// ClientPaymentsRow is the raw aggregate row before name assembly.
type ClientPaymentsRow struct {
	ID        int64
	FirstName string
	LastName  string
	TotalPaid decimal.Decimal
}
