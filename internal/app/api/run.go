package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	cornerstoreserver "github.com/cornerstore/cornerstore-api/go"

	catalogmemory "github.com/cornerstore/cornerstore-api/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/cornerstore/cornerstore-api/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/cornerstore/cornerstore-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/cornerstore/cornerstore-api/internal/domains/catalog/application"
	catalogports "github.com/cornerstore/cornerstore-api/internal/domains/catalog/ports"

	salesdirectory "github.com/cornerstore/cornerstore-api/internal/domains/sales/adapters/directory"
	salesmemory "github.com/cornerstore/cornerstore-api/internal/domains/sales/adapters/memory"
	salesobs "github.com/cornerstore/cornerstore-api/internal/domains/sales/adapters/observability"
	salespostgres "github.com/cornerstore/cornerstore-api/internal/domains/sales/adapters/persistence/postgres"
	salesapp "github.com/cornerstore/cornerstore-api/internal/domains/sales/application"
	salesports "github.com/cornerstore/cornerstore-api/internal/domains/sales/ports"

	staffmemory "github.com/cornerstore/cornerstore-api/internal/domains/staff/adapters/memory"
	staffobs "github.com/cornerstore/cornerstore-api/internal/domains/staff/adapters/observability"
	staffpostgres "github.com/cornerstore/cornerstore-api/internal/domains/staff/adapters/persistence/postgres"
	staffapp "github.com/cornerstore/cornerstore-api/internal/domains/staff/application"
	staffports "github.com/cornerstore/cornerstore-api/internal/domains/staff/ports"

	"github.com/cornerstore/cornerstore-api/internal/platform/migrations"
	platformobservability "github.com/cornerstore/cornerstore-api/internal/platform/observability"
	platformpostgres "github.com/cornerstore/cornerstore-api/internal/platform/postgres"
	"github.com/cornerstore/cornerstore-api/internal/platform/seed"
)

// Run boots the CornerStore HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	const serviceName = "cornerstore-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg := LoadConfig()

	// Money fields serialize as bare JSON numbers, matching the rest of
	// the numeric payload.
	decimal.MarshalJSONWithoutQuotes = true

	staffRepo, catalogRepo, salesRepo, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	staffService := staffobs.New(
		staffapp.NewService(staffRepo),
		staffobs.WithLogger(logger),
		staffobs.WithTracer(instruments.Tracer("internal.staff.application")),
		staffobs.WithMeter(instruments.Meter("internal.staff.application")),
	)
	catalogService := catalogobs.New(
		catalogapp.NewService(catalogRepo),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	salesService := salesobs.New(
		salesapp.NewService(
			salesRepo,
			salesdirectory.NewStaffDirectory(staffService),
			salesdirectory.NewCatalogDirectory(catalogService),
		),
		salesobs.WithLogger(logger),
		salesobs.WithTracer(instruments.Tracer("internal.sales.application")),
		salesobs.WithMeter(instruments.Meter("internal.sales.application")),
	)

	handlers := cornerstoreserver.ApiHandleFunctions{
		CashierAPI: cornerstoreserver.NewCashierAPI(staffService, salesService),
		ProductAPI: cornerstoreserver.NewProductAPI(catalogService),
		OrderAPI:   cornerstoreserver.NewOrderAPI(salesService),
	}

	router := cornerstoreserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("CornerStore API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("CornerStore API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildRepositories(ctx context.Context, cfg Config, logger *slog.Logger) (staffports.Repository, catalogports.Repository, salesports.Repository, func(), error) {
	db, cleanup := platformpostgres.ConnectOrFallback(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		staffRepo := staffmemory.NewRepository()
		catalogRepo := catalogmemory.NewRepository()
		salesRepo := salesmemory.NewRepository()
		if cfg.SeedData {
			if err := seed.Apply(ctx, staffRepo, catalogRepo, salesRepo); err != nil {
				return nil, nil, nil, nil, fmt.Errorf("failed to seed in-memory repositories: %w", err)
			}
			logger.Info("in-memory repositories seeded with demo fixtures")
		}
		return staffRepo, catalogRepo, salesRepo, cleanup, nil
	}

	if err := migrations.Run(db); err != nil {
		cleanup()
		return nil, nil, nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	staffRepo := staffpostgres.NewRepository(db)
	catalogRepo := catalogpostgres.NewRepository(db)
	salesRepo := salespostgres.NewRepository(db)
	if cfg.SeedData {
		if err := seed.Apply(ctx, staffRepo, catalogRepo, salesRepo); err != nil {
			cleanup()
			return nil, nil, nil, nil, fmt.Errorf("failed to seed postgres repositories: %w", err)
		}
		if err := seed.SyncSequences(ctx, db); err != nil {
			cleanup()
			return nil, nil, nil, nil, fmt.Errorf("failed to sync id sequences after seeding: %w", err)
		}
		logger.Info("postgres repositories seeded with demo fixtures")
	}
	logger.Info("repositories configured with postgres")
	return staffRepo, catalogRepo, salesRepo, cleanup, nil
}
