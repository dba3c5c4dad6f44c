package ports

import (
	"context"

	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/domain"
	"github.com/shopspring/decimal"
)

// ProductUpdate carries the four writable product fields for the full
// overwrite flow. Everything else on the row is left untouched.
type ProductUpdate struct {
	Name       string
	Price      decimal.Decimal
	Brand      string
	CategoryID int64
}

// Service exposes the catalog use cases to adapters (inbound/driving port).
type Service interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, update ProductUpdate) (*domain.Product, error)
	SearchProducts(ctx context.Context, search string) ([]*domain.Product, error)
}
