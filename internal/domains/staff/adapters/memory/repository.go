package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/cornerstore/cornerstore-api/internal/domains/staff/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/staff/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory cashier persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	cashiers map[int64]*domain.Cashier
	nextID   int64
}

func NewRepository() *Repository {
	return &Repository{cashiers: map[int64]*domain.Cashier{}}
}

func (r *Repository) Save(_ context.Context, cashier *domain.Cashier) (*domain.Cashier, error) {
	if cashier == nil {
		return nil, errors.New("cashier is nil")
	}
	clone := *cashier
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.cashiers[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Cashier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cashier, ok := r.cashiers[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *cashier
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Cashier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Cashier, 0, len(r.cashiers))
	for _, cashier := range r.cashiers {
		clone := *cashier
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
