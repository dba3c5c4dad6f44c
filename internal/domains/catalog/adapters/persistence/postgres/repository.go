package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists products and categories in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// productRecord maps the product aggregate to a relational table.
type productRecord struct {
	ID         int64           `gorm:"primaryKey;column:id"`
	Name       string          `gorm:"column:name;not null;index"`
	Price      decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null"`
	Brand      string          `gorm:"column:brand"`
	CategoryID int64           `gorm:"column:category_id;index"`
	Category   *categoryRecord `gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

type categoryRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;not null"`
}

func (categoryRecord) TableName() string { return "categories" }

// Save inserts or updates a product.
func (r *Repository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := productRecord{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Brand:      product.Brand,
		CategoryID: product.CategoryID,
	}
	if err := r.db.WithContext(ctx).
		Omit("Category").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":        record.Name,
				"price":       record.Price,
				"brand":       record.Brand,
				"category_id": record.CategoryID,
				"updated_at":  gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a product with its category preloaded.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).Preload("Category").First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// likeEscaper neutralizes the LIKE metacharacters so the folded search
// text always matches literally, mirroring the substring semantics of
// the in-memory adapter.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches the folded text against product and category names.
func (r *Repository) Search(ctx context.Context, folded string) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	pattern := "%" + likeEscaper.Replace(folded) + "%"
	var records []productRecord
	err := r.db.WithContext(ctx).
		Preload("Category").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where(`LOWER(products.name) LIKE ? ESCAPE '\' OR LOWER(categories.name) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("products.id").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// List returns all products with categories preloaded.
func (r *Repository) List(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Preload("Category").Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// SaveCategory inserts or updates a category.
func (r *Repository) SaveCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category is nil")
	}
	record := categoryRecord{ID: category.ID, Name: category.Name}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{"name": record.Name}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return &domain.Category{ID: record.ID, Name: record.Name}, nil
}

// GetCategoryByID fetches a category by identifier.
func (r *Repository) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record categoryRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrCategoryNotFound
		}
		return nil, err
	}
	return &domain.Category{ID: record.ID, Name: record.Name}, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func (r productRecord) toDomain() *domain.Product {
	product := &domain.Product{
		ID:         r.ID,
		Name:       r.Name,
		Price:      r.Price,
		Brand:      r.Brand,
		CategoryID: r.CategoryID,
	}
	if r.Category != nil {
		product.Category = &domain.Category{ID: r.Category.ID, Name: r.Category.Name}
	}
	return product
}

func toDomainList(records []productRecord) []*domain.Product {
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products
}
