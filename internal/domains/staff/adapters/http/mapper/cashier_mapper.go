package mapper

import (
	ordermapper "github.com/cornerstore/cornerstore-api/internal/domains/sales/adapters/http/mapper"
	salestypes "github.com/cornerstore/cornerstore-api/internal/domains/sales/application/types"
	"github.com/cornerstore/cornerstore-api/internal/domains/staff/domain"
)

// Cashier is the HTTP representation of a cashier. Orders are populated
// only on the listing flow; each nested order carries a cashier summary
// without orders of its own.
type Cashier struct {
	ID        int64               `json:"id"`
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	FullName  string              `json:"fullName"`
	Orders    []ordermapper.Order `json:"orders,omitempty"`
}

// CashierMutation captures the inbound payload for the create flow.
type CashierMutation struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FromDomainCashier maps a cashier without its orders.
func FromDomainCashier(c *domain.Cashier) Cashier {
	if c == nil {
		return Cashier{}
	}
	return Cashier{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
	}
}

// FromDomainCashierWithOrders maps a cashier together with its enriched
// orders for the listing flow.
func FromDomainCashierWithOrders(c *domain.Cashier, orders []*salestypes.OrderView) Cashier {
	cashier := FromDomainCashier(c)
	cashier.Orders = ordermapper.FromOrderViewList(orders)
	return cashier
}

// ToDomainCashier builds a new cashier aggregate from a create payload.
func ToDomainCashier(input CashierMutation) (*domain.Cashier, error) {
	return domain.NewCashier(0, input.FirstName, input.LastName)
}
