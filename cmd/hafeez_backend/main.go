package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/handlers"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/abdulhafizu/HafeezVentures2/internal/platform/config"
	"github.com/abdulhafizu/HafeezVentures2/internal/repositories/database/pgsql"
	"github.com/abdulhafizu/HafeezVentures2/internal/scheduler"
	"github.com/abdulhafizu/HafeezVentures2/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Hafeez Ventures Recycling API
// @version 1.0
// @description Record keeping for a plastics recycling plant: intakes, recycling operations, metering, payroll, payables, costing and the expense ledger.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	repos := pgsql.NewRepositoryProvider(dbPool)

	handle, err := services.ResolveLedgerHandle(ctx, repos.LedgerRepo, cfg.LedgerAccountName)
	if err != nil {
		logger.Error("Failed to resolve ledger account", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Ledger account resolved", slog.String("account_id", handle.AccountID), slog.String("name", handle.Name))

	serviceContainer := services.NewServiceContainer(repos, handle)

	jobs := scheduler.NewScheduler(cfg.IntegrityCheckSchedule, serviceContainer.Ledger, logger)
	if err := jobs.Start(); err != nil {
		logger.Error("Failed to start scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer jobs.Stop()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Warn("Invalid RATE_LIMIT, rate limiting disabled", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
