//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cornerstore/cornerstore-api/internal/domains/sales/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"
	"github.com/cornerstore/cornerstore-api/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("cornerstore_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestPostgresRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	order, err := domain.NewOrder(0, 1,
		time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC),
		[]domain.LineItem{
			{ProductID: 2, Quantity: 2},
			{ProductID: 3, Quantity: 1},
		},
	)
	require.NoError(t, err)

	saved, err := repo.Create(ctx, order)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	require.Len(t, saved.Items, 2)
	for _, item := range saved.Items {
		assert.NotZero(t, item.ID)
		assert.Equal(t, saved.ID, item.OrderID)
	}

	retrieved, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), retrieved.CashierID)
	assert.Len(t, retrieved.Items, 2)
}

func TestPostgresRepository_DeleteCascadesLineItems(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	order, err := domain.NewOrder(0, 1,
		time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC),
		[]domain.LineItem{{ProductID: 1, Quantity: 4}},
	)
	require.NoError(t, err)
	saved, err := repo.Create(ctx, order)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))

	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	var remaining int64
	require.NoError(t, db.Table("order_products").Where("order_id = ?", saved.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), ports.ErrNotFound)
}

func TestPostgresRepository_ListByDay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	days := []time.Time{
		time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 19, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 19, 15, 30, 0, 0, time.UTC),
	}
	for _, day := range days {
		order, err := domain.NewOrder(0, 1, day, []domain.LineItem{{ProductID: 1, Quantity: 1}})
		require.NoError(t, err)
		_, err = repo.Create(ctx, order)
		require.NoError(t, err)
	}

	filtered, err := repo.ListByDay(ctx, time.Date(2023, time.December, 19, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	none, err := repo.ListByDay(ctx, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostgresRepository_ListByCashier(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for _, cashierID := range []int64{1, 2, 1} {
		order, err := domain.NewOrder(0, cashierID,
			time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC),
			[]domain.LineItem{{ProductID: 1, Quantity: 1}},
		)
		require.NoError(t, err)
		_, err = repo.Create(ctx, order)
		require.NoError(t, err)
	}

	orders, err := repo.ListByCashier(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, int64(1), order.CashierID)
	}
}
