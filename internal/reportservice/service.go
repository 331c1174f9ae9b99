// Package reportservice manages business logic layer of payment reports.
package reportservice

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gigpay/gigpay/internal/domain"
)

// Repo provides data access layer interface needed by report service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reportservice
type Repo interface {
	TotalOutstanding(ctx context.Context, clientID int64) (decimal.Decimal, error)
	BestProfessions(ctx context.Context, start, end time.Time) ([]domain.ProfessionEarnings, error)
	BestClients(ctx context.Context, start, end time.Time, limit int32) ([]domain.ClientPaymentsRow, error)
}

// Service facilitates report service layer logic.
type Service struct {
	repo Repo
}

// New returns report service struct to manage report business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// dayWindow expands calendar dates to an inclusive instant window covering
// both whole days, so same-day filtering works.
func dayWindow(start, end time.Time) (time.Time, time.Time) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, time.UTC)

	return from, to
}

// TotalOutstanding returns the sum of prices of the client's unpaid jobs.
func (s *Service) TotalOutstanding(ctx context.Context, clientID int64) (decimal.Decimal, error) {
	return s.repo.TotalOutstanding(ctx, clientID)
}

// BestProfessions returns professions ranked by money earned between the
// given dates, both inclusive.
func (s *Service) BestProfessions(ctx context.Context, start, end time.Time) ([]domain.ProfessionEarnings, error) {
	from, to := dayWindow(start, end)
	return s.repo.BestProfessions(ctx, from, to)
}

// BestClients returns the top limit clients by money paid between the given
// dates, both inclusive.
func (s *Service) BestClients(ctx context.Context, start, end time.Time, limit int32) ([]domain.ClientPayments, error) {
	from, to := dayWindow(start, end)

	rows, err := s.repo.BestClients(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}

	clients := make([]domain.ClientPayments, 0, len(rows))

	for _, row := range rows {
		clients = append(clients, domain.ClientPayments{
			ID:        row.ID,
			FullName:  strings.TrimSpace(row.FirstName) + " " + strings.TrimSpace(row.LastName),
			TotalPaid: row.TotalPaid,
		})
	}

	return clients, nil
}
