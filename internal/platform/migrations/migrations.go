package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&cashierRecord{},
		&categoryRecord{},
		&productRecord{},
		&orderRecord{},
		&lineItemRecord{},
	)
}

// Cashier schema mirrors the staff Postgres adapter.
type cashierRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	FirstName string    `gorm:"column:first_name;not null"`
	LastName  string    `gorm:"column:last_name;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (cashierRecord) TableName() string { return "cashiers" }

// Category schema mirrors the catalog Postgres adapter.
type categoryRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;not null"`
}

func (categoryRecord) TableName() string { return "categories" }

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID         int64           `gorm:"primaryKey;column:id"`
	Name       string          `gorm:"column:name;not null;index"`
	Price      decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null"`
	Brand      string          `gorm:"column:brand"`
	CategoryID int64           `gorm:"column:category_id;index"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Order schema mirrors the sales Postgres adapter.
type orderRecord struct {
	ID         int64            `gorm:"primaryKey;column:id"`
	CashierID  int64            `gorm:"column:cashier_id;index"`
	PaidOnDate time.Time        `gorm:"column:paid_on_date;index"`
	Items      []lineItemRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time        `gorm:"column:created_at"`
	UpdatedAt  time.Time        `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Line item schema mirrors the sales Postgres adapter. Rows are owned
// by their order and removed with it.
type lineItemRecord struct {
	ID        int64 `gorm:"primaryKey;column:id"`
	OrderID   int64 `gorm:"column:order_id;index"`
	ProductID int64 `gorm:"column:product_id;index"`
	Quantity  int32 `gorm:"column:quantity;not null"`
}

func (lineItemRecord) TableName() string { return "order_products" }
