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

	"github.com/cornerstore/cornerstore-api/internal/domains/staff/domain"
	"github.com/cornerstore/cornerstore-api/internal/domains/staff/ports"
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

func TestPostgresRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	cashier, err := domain.NewCashier(1, "Ava", "Dominie")
	require.NoError(t, err)

	saved, err := repo.Save(ctx, cashier)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, "Ava Dominie", saved.FullName())

	retrieved, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ava", retrieved.FirstName)
	assert.Equal(t, "Dominie", retrieved.LastName)
}

func TestPostgresRepository_SaveUpsertsExistingRow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	cashier, err := domain.NewCashier(1, "Ava", "Dominie")
	require.NoError(t, err)
	_, err = repo.Save(ctx, cashier)
	require.NoError(t, err)

	require.NoError(t, cashier.Rename("Ava", "Brewer"))
	updated, err := repo.Save(ctx, cashier)
	require.NoError(t, err)
	assert.Equal(t, "Ava Brewer", updated.FullName())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
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
}

func TestPostgresRepository_ListOrderedByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	names := [][2]string{{"Rachel", "Brewer"}, {"Tom", "Mounth"}, {"Ava", "Dominie"}}
	for i, n := range names {
		cashier, err := domain.NewCashier(int64(i+1), n[0], n[1])
		require.NoError(t, err)
		_, err = repo.Save(ctx, cashier)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[2].ID)
}
