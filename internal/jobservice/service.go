// Package jobservice manages business logic layer of jobs.
package jobservice

import (
	"context"

	"github.com/gigpay/gigpay/internal/domain"
)

// Repo provides data access layer interface needed by job service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package jobservice
type Repo interface {
	ListUnpaid(ctx context.Context, profileID int64) ([]domain.Job, error)
}

// Service facilitates job service layer logic.
type Service struct {
	repo Repo
}

// New returns job service struct to manage job business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// ListUnpaid returns unpaid jobs of the profile's in-progress contracts.
func (s *Service) ListUnpaid(ctx context.Context, profileID int64) ([]domain.Job, error) {
	return s.repo.ListUnpaid(ctx, profileID)
}
