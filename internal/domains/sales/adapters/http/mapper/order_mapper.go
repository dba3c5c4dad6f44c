package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	productmapper "github.com/cornerstore/cornerstore-api/internal/domains/catalog/adapters/http/mapper"
	salestypes "github.com/cornerstore/cornerstore-api/internal/domains/sales/application/types"
)

// CashierSummary is the cashier back-reference embedded in order
// responses. It never nests orders, which keeps the mutual
// cashier/order nesting one-directional.
type CashierSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

// OrderProduct is the HTTP representation of one order line item. The
// nested product is omitted when the referenced row no longer exists.
type OrderProduct struct {
	ID        int64                  `json:"id"`
	ProductID int64                  `json:"productId"`
	Product   *productmapper.Product `json:"product,omitempty"`
	OrderID   int64                  `json:"orderId"`
	Quantity  int32                  `json:"quantity"`
}

// Order is the HTTP representation of an order with its computed total.
type Order struct {
	ID            int64           `json:"id"`
	CashierID     int64           `json:"cashierId"`
	Cashier       CashierSummary  `json:"cashier"`
	OrderProducts []OrderProduct  `json:"orderProducts"`
	Total         decimal.Decimal `json:"total"`
	PaidOnDate    time.Time       `json:"paidOnDate"`
}

// OrderProductMutation keeps the only writable line item fields. Any
// nested product payload sent by the client is discarded.
type OrderProductMutation struct {
	ProductID int64 `json:"productId"`
	Quantity  int32 `json:"quantity"`
}

// OrderMutation captures the inbound payload for the create flow.
type OrderMutation struct {
	CashierID     int64                  `json:"cashierId"`
	PaidOnDate    time.Time              `json:"paidOnDate"`
	OrderProducts []OrderProductMutation `json:"orderProducts"`
}

// FromOrderView maps an enriched order view into its transport shape.
// The total is computed here on every read; it is never stored.
func FromOrderView(view *salestypes.OrderView) Order {
	if view == nil || view.Order == nil {
		return Order{}
	}
	order := Order{
		ID:         view.Order.ID,
		CashierID:  view.Order.CashierID,
		Cashier:    fromCashierSummary(view.Cashier),
		PaidOnDate: view.Order.PaidOnDate,
		Total:      view.Total(),
	}
	order.OrderProducts = make([]OrderProduct, 0, len(view.Lines))
	for _, line := range view.Lines {
		order.OrderProducts = append(order.OrderProducts, fromLineView(line))
	}
	return order
}

// FromOrderViewList maps a slice of enriched order views.
func FromOrderViewList(views []*salestypes.OrderView) []Order {
	result := make([]Order, 0, len(views))
	for _, view := range views {
		result = append(result, FromOrderView(view))
	}
	return result
}

// ToOrderDraft converts an inbound payload into the application draft,
// retaining only the cashier id, paid-on date, and (product id,
// quantity) pairs.
func ToOrderDraft(input OrderMutation) salestypes.OrderDraft {
	draft := salestypes.OrderDraft{
		CashierID:  input.CashierID,
		PaidOnDate: input.PaidOnDate,
	}
	for _, line := range input.OrderProducts {
		draft.Lines = append(draft.Lines, salestypes.DraftLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return draft
}

func fromCashierSummary(summary salestypes.CashierSummary) CashierSummary {
	return CashierSummary{
		ID:        summary.ID,
		FirstName: summary.FirstName,
		LastName:  summary.LastName,
		FullName:  summary.FullName(),
	}
}

func fromLineView(line salestypes.LineView) OrderProduct {
	item := OrderProduct{
		ID:        line.Item.ID,
		ProductID: line.Item.ProductID,
		OrderID:   line.Item.OrderID,
		Quantity:  line.Item.Quantity,
	}
	if line.Product != nil {
		product := productmapper.Product{
			ID:         line.Product.ID,
			Name:       line.Product.Name,
			Price:      line.Product.Price,
			Brand:      line.Product.Brand,
			CategoryID: line.Product.CategoryID,
		}
		if line.Product.CategoryName != "" {
			product.Category = &productmapper.Category{
				ID:   line.Product.CategoryID,
				Name: line.Product.CategoryName,
			}
		}
		item.Product = &product
	}
	return item
}
