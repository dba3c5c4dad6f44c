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

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/catalog/ports"
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

func seedCatalog(t *testing.T, repo *Repository) {
	t.Helper()
	ctx := context.Background()

	categories := []*domain.Category{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Drink"},
		{ID: 3, Name: "Candy"},
	}
	for _, category := range categories {
		_, err := repo.SaveCategory(ctx, category)
		require.NoError(t, err)
	}

	products := []*domain.Product{
		{ID: 1, Name: "Kit-kat", Price: decimal.RequireFromString("1.50"), Brand: "Nestlé", CategoryID: 3},
		{ID: 2, Name: "Pizza Hot Pocket", Price: decimal.RequireFromString("2.75"), Brand: "Hot Pockets", CategoryID: 1},
		{ID: 3, Name: "Tea", Price: decimal.RequireFromString("1.00"), Brand: "lisbon", CategoryID: 2},
	}
	for _, product := range products {
		_, err := repo.Save(ctx, product)
		require.NoError(t, err)
	}
}

func TestPostgresRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	seedCatalog(t, repo)

	retrieved, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Kit-kat", retrieved.Name)
	assert.True(t, retrieved.Price.Equal(decimal.RequireFromString("1.50")))
	require.NotNil(t, retrieved.Category)
	assert.Equal(t, "Candy", retrieved.Category.Name)
}

func TestPostgresRepository_SaveUpsertsExistingRow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	seedCatalog(t, repo)
	ctx := context.Background()

	existing, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, existing.Rename("Green Tea"))
	require.NoError(t, existing.Reprice(decimal.RequireFromString("1.25")))

	updated, err := repo.Save(ctx, existing)
	require.NoError(t, err)
	assert.Equal(t, "Green Tea", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("1.25")))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPostgresRepository_SearchMatchesNameAndCategory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	seedCatalog(t, repo)
	ctx := context.Background()

	byName, err := repo.Search(ctx, "kit")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Kit-kat", byName[0].Name)

	byCategory, err := repo.Search(ctx, "drink")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Tea", byCategory[0].Name)

	none, err := repo.Search(ctx, "sushi")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostgresRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	seedCatalog(t, repo)
	ctx := context.Background()

	// LIKE metacharacters in the search text must match literally, not
	// as wildcards; no fixture name contains them.
	for _, search := range []string{"_", "%", `\`} {
		matches, err := repo.Search(ctx, search)
		require.NoError(t, err)
		assert.Empty(t, matches, "search %q must not act as a wildcard", search)
	}

	_, err := repo.Save(ctx, &domain.Product{
		ID:         4,
		Name:       "100% Juice",
		Price:      decimal.RequireFromString("3.25"),
		Brand:      "Sunny",
		CategoryID: 2,
	})
	require.NoError(t, err)

	matches, err := repo.Search(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "100% Juice", matches[0].Name)
}

func TestPostgresRepository_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	_, err = repo.GetCategoryByID(context.Background(), 42)
	assert.ErrorIs(t, err, ports.ErrCategoryNotFound)
}
