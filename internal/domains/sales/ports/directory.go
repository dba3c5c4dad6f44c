package ports

import (
	"context"
	"errors"

	salestypes "github.com/cornerstore/cornerstore-api/internal/domains/sales/application/types"
)

var (
	ErrCashierNotFound = errors.New("cashier not found")
	ErrProductNotFound = errors.New("product not found")
)

// CashierDirectory resolves cashier summaries from the staff context.
// Implementations return ErrCashierNotFound for unknown ids.
type CashierDirectory interface {
	GetCashier(ctx context.Context, id int64) (*salestypes.CashierSummary, error)
}

// ProductCatalog resolves product details from the catalog context.
// Implementations return ErrProductNotFound for unknown ids.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id int64) (*salestypes.ProductDetail, error)
}
