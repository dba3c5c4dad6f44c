package types

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cornerstore/cornerstore-api/internal/domains/sales/domain"
)

// CashierSummary is the lightweight cashier view attached to order views.
// It deliberately carries no nested orders so the mutual
// cashier/order nesting stays one-directional.
type CashierSummary struct {
	ID        int64
	FirstName string
	LastName  string
}

// FullName derives the display name the same way the staff context
// does. A degraded id-only summary yields an empty string rather than a
// lone separator space.
func (c CashierSummary) FullName() string {
	if c.FirstName == "" && c.LastName == "" {
		return ""
	}
	return c.FirstName + " " + c.LastName
}

// ProductDetail is the catalog view attached to order line views.
type ProductDetail struct {
	ID           int64
	Name         string
	Price        decimal.Decimal
	Brand        string
	CategoryID   int64
	CategoryName string
}

// LineView pairs a persisted line item with its resolved product.
// Product is nil when the referenced product row no longer exists;
// such lines stay in the view and contribute zero to the total.
type LineView struct {
	Item    domain.LineItem
	Product *ProductDetail
}

// OrderView transports an order aggregate enriched with its cashier
// summary and resolved line items.
type OrderView struct {
	Order   *domain.Order
	Cashier CashierSummary
	Lines   []LineView
}

// Total sums price times quantity over the resolved lines. Computed on
// read, never stored; zero when there are no resolvable lines.
func (v *OrderView) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range v.Lines {
		if line.Product == nil {
			continue
		}
		qty := decimal.NewFromInt(int64(line.Item.Quantity))
		total = total.Add(line.Product.Price.Mul(qty))
	}
	return total
}

// DraftLine carries the only writable line item fields on order creation.
type DraftLine struct {
	ProductID int64
	Quantity  int32
}

// OrderDraft carries the writable order fields for the create flow.
type OrderDraft struct {
	CashierID  int64
	PaidOnDate time.Time
	Lines      []DraftLine
}

// ToOrder converts the draft into a new unpersisted aggregate.
func (d OrderDraft) ToOrder() (*domain.Order, error) {
	items := make([]domain.LineItem, 0, len(d.Lines))
	for _, line := range d.Lines {
		items = append(items, domain.LineItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	return domain.NewOrder(0, d.CashierID, d.PaidOnDate, items)
}
