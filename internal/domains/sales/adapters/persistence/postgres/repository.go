package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cornerstore/cornerstore-api/internal/domains/sales/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders and their line items in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps the order aggregate to a relational table. The FK
// constraint cascades deletes to the owned line items.
type orderRecord struct {
	ID         int64            `gorm:"primaryKey;column:id"`
	CashierID  int64            `gorm:"column:cashier_id;index"`
	PaidOnDate time.Time        `gorm:"column:paid_on_date;index"`
	Items      []lineItemRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time        `gorm:"column:created_at"`
	UpdatedAt  time.Time        `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type lineItemRecord struct {
	ID        int64 `gorm:"primaryKey;column:id"`
	OrderID   int64 `gorm:"column:order_id;index"`
	ProductID int64 `gorm:"column:product_id;index"`
	Quantity  int32 `gorm:"column:quantity;not null"`
}

func (lineItemRecord) TableName() string { return "order_products" }

// Create stores the order and its line items inside one transaction.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order with its line items preloaded.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).Preload("Items").First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes an order; the FK constraint cascades to its line items.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&orderRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns all orders with line items preloaded.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	return r.find(ctx, nil)
}

// ListByDay returns the orders paid on the given calendar date.
func (r *Repository) ListByDay(ctx context.Context, day time.Time) ([]*domain.Order, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("paid_on_date >= ? AND paid_on_date < ?", start, end)
	})
}

// ListByCashier returns the orders recorded by one cashier.
func (r *Repository) ListByCashier(ctx context.Context, cashierID int64) ([]*domain.Order, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("cashier_id = ?", cashierID)
	})
}

func (r *Repository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Preload("Items").Order("id")
	if scope != nil {
		query = scope(query)
	}
	var records []orderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	record := orderRecord{
		ID:         order.ID,
		CashierID:  order.CashierID,
		PaidOnDate: order.PaidOnDate,
	}
	for _, item := range order.Items {
		record.Items = append(record.Items, lineItemRecord{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return record
}

func (r orderRecord) toDomain() *domain.Order {
	order := &domain.Order{ID: r.ID, CashierID: r.CashierID, PaidOnDate: r.PaidOnDate}
	for _, item := range r.Items {
		order.Items = append(order.Items, domain.LineItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return order
}
