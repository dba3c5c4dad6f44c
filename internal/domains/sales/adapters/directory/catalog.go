package directory

import (
	"context"
	"errors"

	catalogports "github.com/cornerstore/cornerstore-api/internal/domains/catalog/ports"
	salestypes "github.com/cornerstore/cornerstore-api/internal/domains/sales/application/types"
	salesports "github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
)

var _ salesports.ProductCatalog = (*CatalogDirectory)(nil)

// CatalogDirectory resolves product details through the catalog service.
type CatalogDirectory struct {
	catalog catalogports.Service
}

func NewCatalogDirectory(catalog catalogports.Service) *CatalogDirectory {
	return &CatalogDirectory{catalog: catalog}
}

func (d *CatalogDirectory) GetProduct(ctx context.Context, id int64) (*salestypes.ProductDetail, error) {
	product, err := d.catalog.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return nil, salesports.ErrProductNotFound
		}
		return nil, err
	}
	detail := &salestypes.ProductDetail{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Brand:      product.Brand,
		CategoryID: product.CategoryID,
	}
	if product.Category != nil {
		detail.CategoryName = product.Category.Name
	}
	return detail, nil
}
