package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/cornerstore/cornerstore-api/internal/domains/sales/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter. Line items are
// stored inline with their owning order, so deletes cascade naturally.
type Repository struct {
	mu         sync.RWMutex
	orders     map[int64]*domain.Order
	nextID     int64
	nextItemID int64
}

func NewRepository() *Repository {
	return &Repository{orders: map[int64]*domain.Order{}}
}

func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := cloneOrder(order)
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
	for i := range clone.Items {
		if clone.Items[i].ID == 0 {
			r.nextItemID++
			clone.Items[i].ID = r.nextItemID
		} else if clone.Items[i].ID > r.nextItemID {
			r.nextItemID = clone.Items[i].ID
		}
		clone.Items[i].OrderID = clone.ID
	}
	r.orders[clone.ID] = clone
	return cloneOrder(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	return r.filtered(func(*domain.Order) bool { return true })
}

func (r *Repository) ListByDay(_ context.Context, day time.Time) ([]*domain.Order, error) {
	return r.filtered(func(order *domain.Order) bool { return order.PaidOnSameDay(day) })
}

func (r *Repository) ListByCashier(_ context.Context, cashierID int64) ([]*domain.Order, error) {
	return r.filtered(func(order *domain.Order) bool { return order.CashierID == cashierID })
}

func (r *Repository) filtered(keep func(*domain.Order) bool) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*domain.Order
	for _, order := range r.orders {
		if keep(order) {
			list = append(list, cloneOrder(order))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Items = append([]domain.LineItem{}, order.Items...)
	return &clone
}
