// Package seed builds the corner store demo fixtures. It is invoked
// only by bootstrap code (behind the SEED_DATA flag) and by tests,
// never by the storage layer itself.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	catalogdomain "github.com/cornerstore/cornerstore-api/internal/domains/catalog/domain"
	catalogports "github.com/cornerstore/cornerstore-api/internal/domains/catalog/ports"
	salesdomain "github.com/cornerstore/cornerstore-api/internal/domains/sales/domain"
	salesports "github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
	staffdomain "github.com/cornerstore/cornerstore-api/internal/domains/staff/domain"
	staffports "github.com/cornerstore/cornerstore-api/internal/domains/staff/ports"
)

// Cashiers returns the three demo cashiers.
func Cashiers() []*staffdomain.Cashier {
	return []*staffdomain.Cashier{
		{ID: 1, FirstName: "Ava", LastName: "Dominie"},
		{ID: 2, FirstName: "Rachel", LastName: "Brewer"},
		{ID: 3, FirstName: "Tom", LastName: "Mounth"},
	}
}

// Categories returns the three demo categories.
func Categories() []*catalogdomain.Category {
	return []*catalogdomain.Category{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Drink"},
		{ID: 3, Name: "Candy"},
	}
}

// Products returns the three demo products.
func Products() []*catalogdomain.Product {
	return []*catalogdomain.Product{
		{ID: 1, Name: "Kit-kat", Price: decimal.RequireFromString("1.50"), Brand: "Nestlé", CategoryID: 3},
		{ID: 2, Name: "Pizza Hot Pocket", Price: decimal.RequireFromString("2.75"), Brand: "Hot Pockets", CategoryID: 1},
		{ID: 3, Name: "Tea", Price: decimal.RequireFromString("1.00"), Brand: "lisbon", CategoryID: 2},
	}
}

// Orders returns the three demo orders with their owned line items.
func Orders() []*salesdomain.Order {
	return []*salesdomain.Order{
		{
			ID:         1,
			CashierID:  1,
			PaidOnDate: time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC),
			Items:      []salesdomain.LineItem{{ID: 1, OrderID: 1, ProductID: 2, Quantity: 2}},
		},
		{
			ID:         2,
			CashierID:  2,
			PaidOnDate: time.Date(2023, time.December, 19, 0, 0, 0, 0, time.UTC),
			Items:      []salesdomain.LineItem{{ID: 3, OrderID: 2, ProductID: 1, Quantity: 4}},
		},
		{
			ID:         3,
			CashierID:  3,
			PaidOnDate: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			Items:      []salesdomain.LineItem{{ID: 2, OrderID: 3, ProductID: 2, Quantity: 2}},
		},
	}
}

// Apply inserts the demo fixtures through the repository ports, so it
// works against both the in-memory and the Postgres adapters.
func Apply(ctx context.Context, staff staffports.Repository, catalog catalogports.Repository, sales salesports.Repository) error {
	for _, cashier := range Cashiers() {
		if _, err := staff.Save(ctx, cashier); err != nil {
			return err
		}
	}
	for _, category := range Categories() {
		if _, err := catalog.SaveCategory(ctx, category); err != nil {
			return err
		}
	}
	for _, product := range Products() {
		if _, err := catalog.Save(ctx, product); err != nil {
			return err
		}
	}
	for _, order := range Orders() {
		if _, err := sales.Create(ctx, order); err != nil {
			return err
		}
	}
	return nil
}

// SyncSequences aligns the postgres identity sequences with the highest
// fixture id per table. The fixtures insert explicit primary keys, which
// leaves the sequences at their initial value; without this the next
// default-id insert collides with a seeded row. The in-memory adapters
// track explicit ids themselves and need no equivalent.
func SyncSequences(ctx context.Context, db *gorm.DB) error {
	tables := []string{"cashiers", "categories", "products", "orders", "order_products"}
	for _, table := range tables {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), GREATEST((SELECT COALESCE(MAX(id), 0) FROM %[1]s), 1), (SELECT COALESCE(MAX(id), 0) FROM %[1]s) > 0)",
			table,
		)
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("sync %s id sequence: %w", table, err)
		}
	}
	return nil
}
