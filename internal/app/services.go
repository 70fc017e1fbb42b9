// Package app provides service initialization.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/notify"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/guttosm/storefront-service/internal/storage"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog    service.Catalog
	Cart       service.Cart
	Selections service.Selections
	Badge      *service.CartBadge
	Toasts     *notify.ToastCenter
	Broker     *notify.Broker
}

// InitializeServices initializes business logic services. When database
// components are available the catalog is loaded from MongoDB, otherwise
// the built-in catalog is used.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	products := loadCatalog(cfg, dbComponents)

	var catalogOpts []service.CatalogOption
	if cfg.Catalog.CacheSize > 0 {
		catalogOpts = append(catalogOpts, service.WithSearchCache(cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL))
	}
	catalog := service.NewCatalogService(products, catalogOpts...)

	broker := notify.NewBroker()
	cart := service.NewCartService(newCartStore(cfg), broker)
	badge := service.NewCartBadge(cart, broker)

	var toastOpts []notify.ToastOption
	if cfg.Cart.ToastTTL > 0 {
		toastOpts = append(toastOpts, notify.WithToastDuration(cfg.Cart.ToastTTL))
	}
	toasts := notify.NewToastCenter(toastOpts...)

	selections := service.NewSelectionManager(catalog, cart, toasts)

	return &ServiceComponents{
		Catalog:    catalog,
		Cart:       cart,
		Selections: selections,
		Badge:      badge,
		Toasts:     toasts,
		Broker:     broker,
	}
}

// loadCatalog resolves the product catalog in priority order: the database,
// a JSON catalog file, then the built-in default.
func loadCatalog(cfg config.Config, dbComponents *DatabaseComponents) []model.Product {
	if products := loadCatalogFromDatabase(dbComponents); len(products) > 0 {
		return products
	}
	if products := loadCatalogFromFile(cfg.Catalog.File); len(products) > 0 {
		return products
	}
	return service.DefaultCatalog
}

func loadCatalogFromDatabase(dbComponents *DatabaseComponents) []model.Product {
	if dbComponents == nil || dbComponents.ProductsRepo == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	products, err := dbComponents.ProductsRepo.All(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load catalog from database")
		return nil
	}
	if len(products) > 0 {
		log.Info().Int("products", len(products)).Msg("Loaded catalog from database")
	}
	return products
}

func loadCatalogFromFile(path string) []model.Product {
	if path == "" {
		return nil
	}

	products, err := service.LoadCatalogFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to load catalog file - using built-in catalog")
		return nil
	}

	log.Info().Int("products", len(products)).Str("path", path).Msg("Loaded catalog from file")
	return products
}

// newCartStore selects the cart key-value backend from configuration.
// Falls back to the in-memory store when Redis is unreachable.
func newCartStore(cfg config.Config) storage.KVStore {
	if cfg.Cart.Backend != "redis" {
		return storage.NewMemoryStore()
	}

	store, err := storage.NewRedisStore(storage.RedisConfig{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis - using in-memory cart store")
		return storage.NewMemoryStore()
	}

	log.Info().Str("addr", cfg.Redis.Addr).Msg("Cart store backed by Redis")
	return store
}
