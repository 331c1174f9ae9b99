// Package contractservice manages business logic layer of contracts.
package contractservice

import (
	"context"

	"github.com/gigpay/gigpay/internal/domain"
)

// Repo provides data access layer interface needed by contract service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package contractservice
type Repo interface {
	Get(ctx context.Context, id int64) (domain.Contract, error)
	ListActive(ctx context.Context, profileID int64) ([]domain.Contract, error)
}

// Service facilitates contract service layer logic.
type Service struct {
	repo Repo
}

// New returns contract service struct to manage contract business logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Get returns the contract with the given id if the profile is one of its
// parties. Foreign contracts are reported as not found.
func (s *Service) Get(ctx context.Context, id, profileID int64) (domain.Contract, error) {
	contract, err := s.repo.Get(ctx, id)
	if err != nil {
		return contract, err
	}

	if !contract.IsParticipant(profileID) {
		return domain.Contract{}, domain.ErrContractNotFound
	}

	return contract, nil
}

// ListActive returns the profile's non-terminated contracts.
func (s *Service) ListActive(ctx context.Context, profileID int64) ([]domain.Contract, error) {
	return s.repo.ListActive(ctx, profileID)
}
