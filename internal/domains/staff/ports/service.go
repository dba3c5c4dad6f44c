package ports

import (
	"context"

	"github.com/cornerstore/cornerstore-api/internal/domains/staff/domain"
)

// Service exposes the staff use cases to adapters (inbound/driving port).
type Service interface {
	CreateCashier(ctx context.Context, cashier *domain.Cashier) (*domain.Cashier, error)
	GetCashierByID(ctx context.Context, id int64) (*domain.Cashier, error)
	ListCashiers(ctx context.Context) ([]*domain.Cashier, error)
}
