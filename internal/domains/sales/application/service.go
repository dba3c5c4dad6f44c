package application

import (
	"context"
	"errors"
	"time"

	salestypes "github.com/cornerstore/cornerstore-api/internal/domains/sales/application/types"
	"github.com/cornerstore/cornerstore-api/internal/domains/sales/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
)

// Service orchestrates the sales use cases. Order views are enriched
// through the cashier and product directories so the persistence layer
// never reaches across bounded contexts.
type Service struct {
	repo     ports.Repository
	cashiers ports.CashierDirectory
	catalog  ports.ProductCatalog
}

func NewService(repo ports.Repository, cashiers ports.CashierDirectory, catalog ports.ProductCatalog) *Service {
	return &Service{repo: repo, cashiers: cashiers, catalog: catalog}
}

// PlaceOrder builds an order from the draft, resolves its cashier, and
// persists the aggregate together with its line items.
func (s *Service) PlaceOrder(ctx context.Context, draft salestypes.OrderDraft) (*salestypes.OrderView, error) {
	order, err := draft.ToOrder()
	if err != nil {
		return nil, mapError(err)
	}
	cashier, err := s.cashiers.GetCashier(ctx, order.CashierID)
	if err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	return s.assembleView(ctx, saved, cashier)
}

// GetOrderDetail loads a single order fully enriched.
func (s *Service) GetOrderDetail(ctx context.Context, id int64) (*salestypes.OrderView, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assembleView(ctx, order, nil)
}

// ListOrders returns all orders, filtered by calendar date when day is set.
func (s *Service) ListOrders(ctx context.Context, day *time.Time) ([]*salestypes.OrderView, error) {
	var (
		orders []*domain.Order
		err    error
	)
	if day != nil {
		orders, err = s.repo.ListByDay(ctx, *day)
	} else {
		orders, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return s.assembleViews(ctx, orders)
}

// ListOrdersByCashier returns the enriched orders recorded by one cashier.
func (s *Service) ListOrdersByCashier(ctx context.Context, cashierID int64) ([]*salestypes.OrderView, error) {
	orders, err := s.repo.ListByCashier(ctx, cashierID)
	if err != nil {
		return nil, err
	}
	return s.assembleViews(ctx, orders)
}

// DeleteOrder removes the order and, by ownership, its line items.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) assembleViews(ctx context.Context, orders []*domain.Order) ([]*salestypes.OrderView, error) {
	views := make([]*salestypes.OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := s.assembleView(ctx, order, nil)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// assembleView resolves the cashier summary and product details for one
// order. Missing products are tolerated: the line stays in the view with
// a nil product. A missing cashier row degrades to an id-only summary
// rather than failing the whole read.
func (s *Service) assembleView(ctx context.Context, order *domain.Order, cashier *salestypes.CashierSummary) (*salestypes.OrderView, error) {
	if cashier == nil {
		resolved, err := s.cashiers.GetCashier(ctx, order.CashierID)
		switch {
		case errors.Is(err, ports.ErrCashierNotFound):
			resolved = &salestypes.CashierSummary{ID: order.CashierID}
		case err != nil:
			return nil, err
		}
		cashier = resolved
	}
	lines := make([]salestypes.LineView, 0, len(order.Items))
	for _, item := range order.Items {
		product, err := s.catalog.GetProduct(ctx, item.ProductID)
		if err != nil && !errors.Is(err, ports.ErrProductNotFound) {
			return nil, err
		}
		lines = append(lines, salestypes.LineView{Item: item, Product: product})
	}
	return &salestypes.OrderView{Order: order, Cashier: *cashier, Lines: lines}, nil
}

var _ ports.Service = (*Service)(nil)
