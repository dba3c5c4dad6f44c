package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product/category persistence adapter.
type Repository struct {
	mu             sync.RWMutex
	products       map[int64]*domain.Product
	categories     map[int64]*domain.Category
	nextProductID  int64
	nextCategoryID int64
}

func NewRepository() *Repository {
	return &Repository{
		products:   map[int64]*domain.Product{},
		categories: map[int64]*domain.Category{},
	}
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextProductID++
		clone.ID = r.nextProductID
	} else if clone.ID > r.nextProductID {
		r.nextProductID = clone.ID
	}
	stored := clone
	stored.Category = nil
	r.products[stored.ID] = &stored
	return r.attachCategoryLocked(&stored), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return r.attachCategoryLocked(product), nil
}

func (r *Repository) Search(_ context.Context, folded string) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*domain.Product
	for _, product := range r.products {
		enriched := r.attachCategoryLocked(product)
		if enriched.Matches(folded) {
			list = append(list, enriched)
		}
	}
	sortProducts(list)
	return list, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		list = append(list, r.attachCategoryLocked(product))
	}
	sortProducts(list)
	return list, nil
}

func (r *Repository) SaveCategory(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil {
		return nil, errors.New("category is nil")
	}
	clone := *category
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextCategoryID++
		clone.ID = r.nextCategoryID
	} else if clone.ID > r.nextCategoryID {
		r.nextCategoryID = clone.ID
	}
	r.categories[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetCategoryByID(_ context.Context, id int64) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, ports.ErrCategoryNotFound
	}
	clone := *category
	return &clone, nil
}

// attachCategoryLocked clones the product and resolves its category row.
// Callers must hold at least the read lock.
func (r *Repository) attachCategoryLocked(product *domain.Product) *domain.Product {
	clone := *product
	if category, ok := r.categories[clone.CategoryID]; ok {
		categoryClone := *category
		clone.Category = &categoryClone
	} else {
		clone.Category = nil
	}
	return &clone
}

func sortProducts(list []*domain.Product) {
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
}
