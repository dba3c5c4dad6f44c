package cornerstoreserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}

	return router
}

// Default handler for not yet implemented routes
func defaultFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// ApiHandleFunctions holds the API handler implementations wired into the router.
type ApiHandleFunctions struct {
	CashierAPI CashierAPI
	ProductAPI ProductAPI
	OrderAPI   OrderAPI
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"CreateCashier",
			http.MethodPost,
			"/cashiers",
			handleFunctions.CashierAPI.CreateCashier,
		},
		{
			"ListCashiers",
			http.MethodGet,
			"/cashiers",
			handleFunctions.CashierAPI.ListCashiers,
		},
		{
			"SearchProducts",
			http.MethodGet,
			"/products",
			handleFunctions.ProductAPI.SearchProducts,
		},
		{
			"CreateProduct",
			http.MethodPost,
			"/products",
			handleFunctions.ProductAPI.CreateProduct,
		},
		{
			"UpdateProduct",
			http.MethodPut,
			"/products/:id",
			handleFunctions.ProductAPI.UpdateProduct,
		},
		{
			"ListOrders",
			http.MethodGet,
			"/orders",
			handleFunctions.OrderAPI.ListOrders,
		},
		{
			"GetOrderDetail",
			http.MethodGet,
			"/orderDetail/:id",
			handleFunctions.OrderAPI.GetOrderDetail,
		},
		{
			"PlaceOrder",
			http.MethodPost,
			"/orders",
			handleFunctions.OrderAPI.PlaceOrder,
		},
		{
			"DeleteOrder",
			http.MethodDelete,
			"/order/:id",
			handleFunctions.OrderAPI.DeleteOrder,
		},
	}
}
