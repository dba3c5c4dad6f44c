package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cornerstore/cornerstore-api/internal/domains/staff/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/staff/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists cashiers in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// cashierRecord maps the cashier aggregate to a relational table.
type cashierRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	FirstName string    `gorm:"column:first_name;not null"`
	LastName  string    `gorm:"column:last_name;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (cashierRecord) TableName() string { return "cashiers" }

// Save inserts or updates a cashier.
func (r *Repository) Save(ctx context.Context, cashier *domain.Cashier) (*domain.Cashier, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, errors.New("cashier is nil")
	}
	record := cashierRecord{ID: cashier.ID, FirstName: cashier.FirstName, LastName: cashier.LastName}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"first_name": record.FirstName,
				"last_name":  record.LastName,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a cashier by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Cashier, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record cashierRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all cashiers ordered by identifier.
func (r *Repository) List(ctx context.Context) ([]*domain.Cashier, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []cashierRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	cashiers := make([]*domain.Cashier, 0, len(records))
	for i := range records {
		cashiers = append(cashiers, records[i].toDomain())
	}
	return cashiers, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres cashier repository not configured")
	}
	return nil
}

func (r cashierRecord) toDomain() *domain.Cashier {
	return &domain.Cashier{ID: r.ID, FirstName: r.FirstName, LastName: r.LastName}
}
