package cornerstoreserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	salesports "github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
	cashiermapper "github.com/cornerstore/cornerstore-api/internal/domains/staff/adapters/http/mapper"
	staffports "github.com/cornerstore/cornerstore-api/internal/domains/staff/ports"
)

// CashierAPI wires HTTP transport with the staff context. Listing
// composes staff and sales so every cashier carries its fully nested
// orders.
type CashierAPI struct {
	staff staffports.Service
	sales salesports.Service
}

// NewCashierAPI creates a CashierAPI backed by the provided services.
func NewCashierAPI(staff staffports.Service, sales salesports.Service) CashierAPI {
	return CashierAPI{staff: staff, sales: sales}
}

// Post /cashiers
// Adds a cashier
func (api *CashierAPI) CreateCashier(c *gin.Context) {
	var payload cashiermapper.CashierMutation
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	cashier, err := cashiermapper.ToDomainCashier(payload)
	if err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	saved, err := api.staff.CreateCashier(c.Request.Context(), cashier)
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/cashiers/%d", saved.ID))
	c.JSON(http.StatusCreated, cashiermapper.FromDomainCashier(saved))
}

// Get /cashiers
// Lists all cashiers with nested orders, line items, products, and categories
func (api *CashierAPI) ListCashiers(c *gin.Context) {
	cashiers, err := api.staff.ListCashiers(c.Request.Context())
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	result := make([]cashiermapper.Cashier, 0, len(cashiers))
	for _, cashier := range cashiers {
		orders, err := api.sales.ListOrdersByCashier(c.Request.Context(), cashier.ID)
		if err != nil {
			responder.RespondError(c, err)
			return
		}
		result = append(result, cashiermapper.FromDomainCashierWithOrders(cashier, orders))
	}
	c.JSON(http.StatusOK, result)
}
