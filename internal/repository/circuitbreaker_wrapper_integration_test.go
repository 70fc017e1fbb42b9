//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsRepositoryWithCircuitBreaker_SeedAndAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewProductsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewProductsRepositoryWithCircuitBreaker(repo, cb)

	seed := []model.Product{
		{ID: "chocolate-cake", Name: "Chocolate Cake", Price: 100},
		{ID: "fruit-tart", Name: "Fruit Tart", Price: 80},
	}
	err := wrappedRepo.Seed(ctx, seed)
	require.NoError(t, err)

	// Seeding twice must not duplicate products
	err = wrappedRepo.Seed(ctx, seed)
	require.NoError(t, err)

	products, err := wrappedRepo.All(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "chocolate-cake", products[0].ID)
	assert.Equal(t, "fruit-tart", products[1].ID)
}

func TestProductsRepositoryWithCircuitBreaker_GetByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewProductsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewProductsRepositoryWithCircuitBreaker(repo, cb)

	seed := []model.Product{
		{
			ID:    "almond-brownie",
			Name:  "Almond Brownie",
			Price: 60,
			Weights: []model.WeightOption{
				{Weight: model.TierQuarterKilo, Price: 15},
				{Weight: model.TierHalfKilo, Price: 30},
				{Weight: model.TierFullKilo, Price: 60},
			},
		},
	}
	require.NoError(t, wrappedRepo.Seed(ctx, seed))

	product, err := wrappedRepo.GetByID(ctx, "almond-brownie")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Almond Brownie", product.Name)
	assert.Len(t, product.Weights, 3)

	missing, err := wrappedRepo.GetByID(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductsRepositoryWithCircuitBreaker_Count(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewProductsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewProductsRepositoryWithCircuitBreaker(repo, cb)

	count, err := wrappedRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, wrappedRepo.Seed(ctx, []model.Product{
		{ID: "p1", Name: "One", Price: 10},
		{ID: "p2", Name: "Two", Price: 20},
	}))

	count, err = wrappedRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestProductsRepositoryWithCircuitBreaker_GetCircuitBreaker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewProductsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewProductsRepositoryWithCircuitBreaker(repo, cb)

	// Get circuit breaker
	returnedCB := wrappedRepo.GetCircuitBreaker()
	assert.NotNil(t, returnedCB)
	assert.Equal(t, cb, returnedCB)

	// Verify stats
	stats := returnedCB.GetStats()
	assert.Equal(t, "closed", stats.State)
}

func TestLogsRepositoryWithCircuitBreaker_CreateMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	entries := []*LogEntryDocument{
		{
			Level:     "info",
			Message:   "Entry 1",
			RequestID: "req-1",
			Timestamp: time.Now(),
		},
		{
			Level:     "error",
			Message:   "Entry 2",
			RequestID: "req-2",
			Timestamp: time.Now(),
		},
	}

	err := wrappedRepo.CreateMany(ctx, entries)
	assert.NoError(t, err)
}

func TestLogsRepositoryWithCircuitBreaker_Query(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Create test entries
	entry := &LogEntryDocument{
		Level:     "info",
		Message:   "Test query",
		RequestID: "query-test-id",
		Timestamp: time.Now(),
	}
	_ = wrappedRepo.Create(ctx, entry)

	// Query via circuit breaker wrapper
	opts := LogQueryOptions{
		RequestID: "query-test-id",
	}
	entries, err := wrappedRepo.Query(ctx, opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 1)
}

func TestLogsRepositoryWithCircuitBreaker_Count(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Create test entries
	_ = wrappedRepo.Create(ctx, &LogEntryDocument{
		Level:     "info",
		Message:   "Count test 1",
		Timestamp: time.Now(),
	})
	_ = wrappedRepo.Create(ctx, &LogEntryDocument{
		Level:     "error",
		Message:   "Count test 2",
		Timestamp: time.Now(),
	})

	// Count via circuit breaker wrapper
	count, err := wrappedRepo.Count(ctx, LogQueryOptions{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(2))

	// Count with filter
	opts := LogQueryOptions{
		Level: "info",
	}
	countFiltered, err := wrappedRepo.Count(ctx, opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, countFiltered, int64(1))
}

func TestLogsRepositoryWithCircuitBreaker_GetCircuitBreaker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	// Get circuit breaker
	returnedCB := wrappedRepo.GetCircuitBreaker()
	assert.NotNil(t, returnedCB)
	assert.Equal(t, cb, returnedCB)

	// Verify stats
	stats := returnedCB.GetStats()
	assert.Equal(t, "closed", stats.State)
}
