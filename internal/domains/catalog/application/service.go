package application

import (
	"context"
	"errors"
	"strings"

	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/ports"
)

// Service orchestrates the catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// CreateProduct persists a new product after validating the invariants.
func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, product)
}

// GetProductByID loads a single product with its category attached.
func (s *Service) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProduct overwrites the four writable fields on an existing row.
// Unknown ids surface ports.ErrNotFound.
func (s *Service) UpdateProduct(ctx context.Context, id int64, update ports.ProductUpdate) (*domain.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := existing.Rename(update.Name); err != nil {
		return nil, mapError(err)
	}
	if err := existing.Reprice(update.Price); err != nil {
		return nil, mapError(err)
	}
	existing.Rebrand(update.Brand)
	if err := existing.Recategorize(update.CategoryID); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, existing)
}

// SearchProducts matches the folded search text against product and
// category names. Blank search text is rejected; the route contract
// requires the parameter and never means "match all".
func (s *Service) SearchProducts(ctx context.Context, search string) ([]*domain.Product, error) {
	folded := strings.ToLower(strings.TrimSpace(search))
	if folded == "" {
		return nil, mapError(ErrBlankSearch)
	}
	return s.repo.Search(ctx, folded)
}

var _ ports.Service = (*Service)(nil)
