package ports

import (
	"context"
	"errors"

	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/domain"
)

var (
	ErrNotFound         = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Repository persists products and their reference categories
// (outbound/driven port). Save upserts; products load with their
// category attached when the category row exists.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Search(ctx context.Context, folded string) ([]*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	SaveCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
}
