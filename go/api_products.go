package cornerstoreserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	productmapper "github.com/cornerstore/cornerstore-api/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/cornerstore/cornerstore-api/internal/domains/catalog/ports"
)

// ProductAPI wires HTTP transport with the catalog context.
type ProductAPI struct {
	catalog catalogports.Service
}

// NewProductAPI creates a ProductAPI backed by the catalog service.
func NewProductAPI(catalog catalogports.Service) ProductAPI {
	return ProductAPI{catalog: catalog}
}

// Get /products
// Searches products by name or category name, case-insensitive
func (api *ProductAPI) SearchProducts(c *gin.Context) {
	search, ok := c.GetQuery("search")
	if !ok {
		responder.BadRequest(c, "missing required query parameter: search")
		return
	}
	products, err := api.catalog.SearchProducts(c.Request.Context(), search)
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainProductList(products))
}

// Post /products
// Adds a product
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	var payload productmapper.ProductMutation
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	product, err := productmapper.ToDomainProduct(payload)
	if err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	saved, err := api.catalog.CreateProduct(c.Request.Context(), product)
	if err != nil {
		responder.RespondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/products/%d", saved.ID))
	c.JSON(http.StatusCreated, productmapper.FromDomainProduct(saved))
}

// Put /products/:id
// Overwrites the writable fields of an existing product
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload productmapper.ProductMutation
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	if _, err := api.catalog.UpdateProduct(c.Request.Context(), id, productmapper.ToProductUpdate(payload)); err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			responder.NotFound(c, "product", id)
			return
		}
		responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
