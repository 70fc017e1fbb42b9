//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg)

		require.NotNil(t, components)
		assert.NotNil(t, components.ProductsRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.ProductsCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
	})

	t.Run("initialize with disabled database", func(t *testing.T) {
		t.Parallel()
		cfg := config.DatabaseConfig{
			Enabled: false,
		}

		components := InitializeDatabase(cfg)
		assert.Nil(t, components)
	})

	t.Run("built-in catalog is seeded", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)

		products, err := components.ProductsRepo.All(ctx)
		require.NoError(t, err)
		require.Len(t, products, len(service.DefaultCatalog))
		assert.Equal(t, service.DefaultCatalog[0].ID, products[0].ID)
	})

	t.Run("circuit breaker integration", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 2,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          100 * time.Millisecond,
		}

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)

		stats := components.ProductsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)

		logsStats := components.LogsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", logsStats.State)
		assert.True(t, logsStats.IsHealthy)
	})
}
