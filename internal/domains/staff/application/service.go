package application

import (
	"context"
	"errors"

	"github.com/cornerstore/cornerstore-api/internal/domains/staff/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/staff/ports"
)

// Service orchestrates the staff use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// CreateCashier persists a new cashier after validating the name fields.
func (s *Service) CreateCashier(ctx context.Context, cashier *domain.Cashier) (*domain.Cashier, error) {
	if cashier == nil {
		return nil, errors.New("cashier is nil")
	}
	if err := cashier.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, cashier)
}

// GetCashierByID loads a single cashier.
func (s *Service) GetCashierByID(ctx context.Context, id int64) (*domain.Cashier, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCashiers returns every cashier on record.
func (s *Service) ListCashiers(ctx context.Context) ([]*domain.Cashier, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
