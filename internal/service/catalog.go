package service

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/service/cache"
)

// DefaultCatalog is the built-in product list used when neither the database
// nor a catalog file supplies one.
var DefaultCatalog = []model.Product{
	{
		ID:          "chocolate-cake",
		Name:        "Chocolate Cake",
		Description: "Rich dark chocolate cake with ganache",
		Image:       "/images/chocolate-cake.png",
		Price:       400,
		Offer:       300,
		Weights: []model.WeightOption{
			{Weight: "1/4 KG", Price: 120},
			{Weight: "1/2 KG", Price: 220},
			{Weight: "1 KG", Price: 400},
		},
	},
	{
		ID:          "butterscotch-cake",
		Name:        "Butterscotch Cake",
		Description: "Caramel crunch with butterscotch cream",
		Image:       "/images/butterscotch-cake.png",
		Price:       360,
		Offer:       280,
		Weights: []model.WeightOption{
			{Weight: "1/2 KG", Price: 200},
			{Weight: "1 KG", Price: 360},
		},
	},
	{
		ID:          "fruit-tart",
		Name:        "Fruit Tart",
		Description: "Seasonal fruits on vanilla custard",
		Image:       "/images/fruit-tart.png",
		Price:       250,
		Offer:       200,
	},
	{
		ID:          "almond-brownie",
		Name:        "Almond Brownie",
		Description: "Fudgy brownie topped with roasted almonds",
		Image:       "/images/almond-brownie.png",
		Price:       180,
		Offer:       150,
	},
}

// LoadCatalogFile reads a JSON-encoded product list from path. Entries
// without an id or a name are rejected so a malformed file never produces a
// partially usable catalog.
func LoadCatalogFile(path string) ([]model.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	for i, p := range products {
		if p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("catalog file entry %d: missing id or name", i)
		}
	}
	return products, nil
}

// Filter returns the products whose name contains the query, matched
// case-insensitively. The empty query matches everything. Ordering follows
// the input catalog and there is no result limit.
func Filter(products []model.Product, query string) []model.Product {
	if query == "" {
		return products
	}

	needle := strings.ToLower(query)
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Catalog defines read access to the product catalog. The catalog is loaded
// once at startup and is immutable afterwards.
type Catalog interface {
	// Products returns the full catalog in source order.
	Products() []model.Product
	// Search returns the products matching the query, preserving order.
	Search(query string) []model.Product
	// GetByID returns the product with the given id.
	GetByID(id string) (model.Product, bool)
}

// CatalogOption configures a CatalogService.
type CatalogOption func(*CatalogService)

// WithSearchCache enables search-result caching with the given capacity and TTL.
func WithSearchCache(capacity int, ttl time.Duration) CatalogOption {
	return func(s *CatalogService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithSearchCacheInterface allows injecting a custom cache implementation.
func WithSearchCacheInterface(c cache.Cache) CatalogOption {
	return func(s *CatalogService) {
		s.cache = c
	}
}

// CatalogService implements Catalog over an in-memory product snapshot.
type CatalogService struct {
	products []model.Product
	byID     map[string]int
	cache    cache.Cache
}

// NewCatalogService creates a catalog service over the given products.
// A nil or empty product list falls back to DefaultCatalog.
func NewCatalogService(products []model.Product, opts ...CatalogOption) *CatalogService {
	if len(products) == 0 {
		products = DefaultCatalog
	}

	snapshot := make([]model.Product, len(products))
	copy(snapshot, products)

	byID := make(map[string]int, len(snapshot))
	for i, p := range snapshot {
		if _, exists := byID[p.ID]; !exists {
			byID[p.ID] = i
		}
	}

	s := &CatalogService{
		products: snapshot,
		byID:     byID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Products returns the full catalog in source order.
func (s *CatalogService) Products() []model.Product {
	return s.products
}

// Search returns the products whose name contains the query case-insensitively.
func (s *CatalogService) Search(query string) []model.Product {
	metrics.RecordCatalogSearch(query != "")

	if query == "" {
		return s.products
	}

	key := strings.ToLower(query)
	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			return result
		}
	}

	result := Filter(s.products, query)

	if s.cache != nil {
		s.cache.Set(key, result)
	}

	return result
}

// GetByID returns the product with the given id.
func (s *CatalogService) GetByID(id string) (model.Product, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return s.products[idx], true
}

// Stop releases catalog resources (the search cache, when enabled).
func (s *CatalogService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}
