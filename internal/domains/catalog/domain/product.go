package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName         = errors.New("product name is required")
	ErrNegativePrice     = errors.New("price must be greater or equal to zero")
	ErrInvalidCategoryID = errors.New("category id must be greater than zero")
)

// Category groups products in the catalog.
type Category struct {
	ID   int64
	Name string
}

// Product represents a sellable item belonging to one category.
type Product struct {
	ID         int64
	Name       string
	Price      decimal.Decimal
	Brand      string
	CategoryID int64
	Category   *Category
}

// NewProduct validates the invariants and builds a new Product aggregate.
func NewProduct(id int64, name string, price decimal.Decimal, brand string, categoryID int64) (*Product, error) {
	p := &Product{ID: id, Brand: strings.TrimSpace(brand)}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := p.Reprice(price); err != nil {
		return nil, err
	}
	if err := p.Recategorize(categoryID); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename mutates the product name ensuring it stays non-empty.
func (p *Product) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// Reprice stores a new price, rejecting negative values.
func (p *Product) Reprice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	p.Price = price
	return nil
}

// Recategorize moves the product to another category by id.
func (p *Product) Recategorize(categoryID int64) error {
	if categoryID <= 0 {
		return ErrInvalidCategoryID
	}
	if p.Category != nil && p.Category.ID != categoryID {
		p.Category = nil
	}
	p.CategoryID = categoryID
	return nil
}

// Rebrand replaces the brand label. Blank brands are allowed.
func (p *Product) Rebrand(brand string) {
	p.Brand = strings.TrimSpace(brand)
}

// Matches reports whether the folded search text occurs in the product
// name or in its category name.
func (p *Product) Matches(folded string) bool {
	if strings.Contains(strings.ToLower(p.Name), folded) {
		return true
	}
	return p.Category != nil && strings.Contains(strings.ToLower(p.Category.Name), folded)
}

// Validate re-applies core invariants for persistence.
func (p *Product) Validate() error {
	if err := p.Rename(p.Name); err != nil {
		return err
	}
	if err := p.Reprice(p.Price); err != nil {
		return err
	}
	return p.Recategorize(p.CategoryID)
}
