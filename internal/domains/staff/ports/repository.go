package ports

import (
	"context"
	"errors"

	"github.com/cornerstore/cornerstore-api/internal/domains/staff/domain"
)

var ErrNotFound = errors.New("cashier not found")

// Repository persists cashiers (outbound/driven port).
type Repository interface {
	Save(ctx context.Context, cashier *domain.Cashier) (*domain.Cashier, error)
	GetByID(ctx context.Context, id int64) (*domain.Cashier, error)
	List(ctx context.Context) ([]*domain.Cashier, error)
}
