package ports

import (
	"context"
	"time"

	salestypes "github.com/cornerstore/cornerstore-api/internal/domains/sales/application/types"
)

// Service exposes the sales use cases to adapters (inbound/driving port).
// ListOrders filters by calendar date when day is non-nil.
type Service interface {
	PlaceOrder(ctx context.Context, draft salestypes.OrderDraft) (*salestypes.OrderView, error)
	GetOrderDetail(ctx context.Context, id int64) (*salestypes.OrderView, error)
	ListOrders(ctx context.Context, day *time.Time) ([]*salestypes.OrderView, error)
	ListOrdersByCashier(ctx context.Context, cashierID int64) ([]*salestypes.OrderView, error)
	DeleteOrder(ctx context.Context, id int64) error
}
