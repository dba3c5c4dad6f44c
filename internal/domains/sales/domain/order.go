package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCashierID = errors.New("cashier id must be greater than zero")
	ErrInvalidProductID = errors.New("product id must be greater than zero")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
)

// LineItem links an order to a product with a purchased quantity.
type LineItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int32
}

// Validate enforces the line item invariants.
func (l *LineItem) Validate() error {
	if l.ProductID <= 0 {
		return ErrInvalidProductID
	}
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Order models a single register transaction tied to one cashier.
// The order exclusively owns its line items; deleting it removes them.
type Order struct {
	ID         int64
	CashierID  int64
	PaidOnDate time.Time
	Items      []LineItem
}

// NewOrder validates and constructs a new Order aggregate.
func NewOrder(id, cashierID int64, paidOn time.Time, items []LineItem) (*Order, error) {
	order := &Order{ID: id, CashierID: cashierID, PaidOnDate: paidOn}
	order.ReplaceItems(items)
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// ReplaceItems swaps the owned line item set.
func (o *Order) ReplaceItems(items []LineItem) {
	o.Items = append([]LineItem{}, items...)
}

// Validate enforces invariants on the aggregate and every owned line item.
func (o *Order) Validate() error {
	if o.CashierID <= 0 {
		return ErrInvalidCashierID
	}
	for i := range o.Items {
		if err := o.Items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PaidOnSameDay reports whether the order was paid on the given calendar
// date. Time-of-day and location offsets are ignored.
func (o *Order) PaidOnSameDay(day time.Time) bool {
	y1, m1, d1 := o.PaidOnDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
