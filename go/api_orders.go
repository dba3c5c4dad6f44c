package cornerstoreserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/cornerstore/cornerstore-api/internal/domains/sales/adapters/http/mapper"
	salesports "github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
)

// orderDateLayout is the calendar-day format accepted by the orderDate
// query filter.
const orderDateLayout = "2006-01-02"

// OrderAPI wires HTTP transport with the sales context.
type OrderAPI struct {
	sales salesports.Service
}

// NewOrderAPI creates an OrderAPI backed by the sales service.
func NewOrderAPI(sales salesports.Service) OrderAPI {
	return OrderAPI{sales: sales}
}

// Get /orders
// Lists orders, optionally filtered to a single calendar day
func (api *OrderAPI) ListOrders(c *gin.Context) {
	var day *time.Time
	if raw, ok := c.GetQuery("orderDate"); ok {
		parsed, err := time.Parse(orderDateLayout, raw)
		if err != nil {
			responder.BadRequest(c, "invalid orderDate, expected yyyy-MM-dd: "+raw)
			return
		}
		day = &parsed
	}
	orders, err := api.sales.ListOrders(c.Request.Context(), day)
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromOrderViewList(orders))
}

// Get /orderDetail/:id
// Returns the order as a one-element list, or an empty list when absent
func (api *OrderAPI) GetOrderDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := api.sales.GetOrderDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, salesports.ErrNotFound) {
			c.JSON(http.StatusOK, []ordermapper.Order{})
			return
		}
		responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, []ordermapper.Order{ordermapper.FromOrderView(view)})
}

// Post /orders
// Places an order
func (api *OrderAPI) PlaceOrder(c *gin.Context) {
	var payload ordermapper.OrderMutation
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	view, err := api.sales.PlaceOrder(c.Request.Context(), ordermapper.ToOrderDraft(payload))
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/orderDetail/%d", view.Order.ID))
	c.JSON(http.StatusCreated, ordermapper.FromOrderView(view))
}

// Delete /order/:id
// Deletes an order and its line items
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.sales.DeleteOrder(c.Request.Context(), id); err != nil {
		if errors.Is(err, salesports.ErrNotFound) {
			responder.NotFound(c, "order", id)
			return
		}
		responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
