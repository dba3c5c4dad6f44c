package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/domain"
	catalogports "github.com/cornerstore/cornerstore-api/internal/domains/catalog/ports"
)

// Category is the HTTP representation of a product category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"categoryName"`
}

// Product is the HTTP representation of a catalog product. The nested
// category is omitted when the reference row is missing.
type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"productName"`
	Price      decimal.Decimal `json:"price"`
	Brand      string          `json:"brand,omitempty"`
	CategoryID int64           `json:"categoryId"`
	Category   *Category       `json:"category,omitempty"`
}

// ProductMutation captures inbound payloads for the create and update flows.
type ProductMutation struct {
	Name       string          `json:"productName"`
	Price      decimal.Decimal `json:"price"`
	Brand      string          `json:"brand"`
	CategoryID int64           `json:"categoryId"`
}

// FromDomainProduct maps a domain product into its transport shape.
func FromDomainProduct(p *domain.Product) Product {
	if p == nil {
		return Product{}
	}
	product := Product{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Brand:      p.Brand,
		CategoryID: p.CategoryID,
	}
	if p.Category != nil {
		product.Category = &Category{ID: p.Category.ID, Name: p.Category.Name}
	}
	return product
}

// FromDomainProductList maps a slice of domain products.
func FromDomainProductList(list []*domain.Product) []Product {
	result := make([]Product, 0, len(list))
	for _, p := range list {
		result = append(result, FromDomainProduct(p))
	}
	return result
}

// ToDomainProduct builds a new product aggregate from a create payload.
func ToDomainProduct(input ProductMutation) (*domain.Product, error) {
	return domain.NewProduct(0, input.Name, input.Price, input.Brand, input.CategoryID)
}

// ToProductUpdate converts the payload into the four writable fields of
// the overwrite flow.
func ToProductUpdate(input ProductMutation) catalogports.ProductUpdate {
	return catalogports.ProductUpdate{
		Name:       input.Name,
		Price:      input.Price,
		Brand:      input.Brand,
		CategoryID: input.CategoryID,
	}
}
