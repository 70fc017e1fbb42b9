// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	ProductsRepo           repository.ProductsRepositoryInterface
	LoggingService         service.LoggingService
	ProductsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	productsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-products",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	productsRepo := repository.NewProductsRepository(db)
	productsRepoWithCB := repository.NewProductsRepositoryWithCircuitBreaker(productsRepo, productsCB)

	// Seed the built-in catalog when the products collection is empty
	if err := seedDefaultCatalog(productsRepoWithCB); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default catalog")
	}

	return &DatabaseComponents{
		ProductsRepo:           productsRepoWithCB,
		LoggingService:         loggingService,
		ProductsCircuitBreaker: productsCB,
		LogsCircuitBreaker:     logsCB,
	}
}

// seedDefaultCatalog stores the built-in product list when no products exist yet.
func seedDefaultCatalog(repo repository.ProductsRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		if err := repo.Seed(ctx, service.DefaultCatalog); err != nil {
			return err
		}
		log.Info().Int("products", len(service.DefaultCatalog)).Msg("Seeded default catalog")
	}

	return nil
}
