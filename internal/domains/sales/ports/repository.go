package ports

import (
	"context"
	"errors"
	"time"

	"github.com/cornerstore/cornerstore-api/internal/domains/sales/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders together with their owned line items
// (outbound/driven port). Create must store the order and all of its
// line items atomically; Delete removes the line items with the order.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Order, error)
	ListByDay(ctx context.Context, day time.Time) ([]*domain.Order, error)
	ListByCashier(ctx context.Context, cashierID int64) ([]*domain.Order, error)
}
