package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/notify"
	"github.com/guttosm/storefront-service/internal/storage"
	"github.com/rs/zerolog/log"
)

// CartKey is the storage key holding the serialized cart.
const CartKey = "cart"

// ErrCorruptCart indicates the persisted cart value failed to parse as a
// list of line items. The service recovers by resetting to an empty list.
var ErrCorruptCart = errors.New("corrupt cart state")

// Cart defines the persisted cart operations.
type Cart interface {
	// Add appends a line item to the persisted cart and publishes a
	// cart-changed signal.
	Add(ctx context.Context, item model.CartItem) error
	// Items returns the persisted line items in insertion order.
	Items(ctx context.Context) ([]model.CartItem, error)
	// Count returns the number of persisted line items.
	Count(ctx context.Context) (int, error)
	// Clear resets the persisted cart to an empty list.
	Clear(ctx context.Context) error
}

// CartService implements Cart over an injected KVStore. Every mutation is a
// read-modify-write of the serialized list; a service-level mutex serializes
// them because the store itself offers no transaction discipline.
type CartService struct {
	mu     sync.Mutex
	store  storage.KVStore
	broker *notify.Broker
}

// NewCartService creates a cart service over the given store and broker.
// The broker may be nil, in which case no change signals are published.
func NewCartService(store storage.KVStore, broker *notify.Broker) *CartService {
	return &CartService{
		store:  store,
		broker: broker,
	}
}

// Add appends item to the persisted list. An absent key is treated as an
// empty cart; a corrupt value is reset to an empty list with a warning
// before the append. Entries are never merged: two additions of the same
// product produce two distinct entries.
func (s *CartService) Add(ctx context.Context, item model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if errors.Is(err, ErrCorruptCart) {
		log.Warn().Msg("Persisted cart is corrupt, resetting to empty list")
		metrics.RecordCartCorruptionReset()
		metrics.RecordCartAddition("corrupt_reset")
		items = nil
	} else if err != nil {
		metrics.RecordCartAddition("storage_error")
		return err
	}

	items = append(items, item)

	encoded, err := json.Marshal(items)
	if err != nil {
		metrics.RecordCartAddition("encode_error")
		return fmt.Errorf("encoding cart: %w", err)
	}

	if err := s.store.Set(ctx, CartKey, string(encoded)); err != nil {
		metrics.RecordCartAddition("storage_error")
		return err
	}

	metrics.RecordCartAddition("success")
	metrics.UpdateCartItems(len(items))

	if s.broker != nil {
		s.broker.Publish()
	}
	return nil
}

// Items returns the persisted line items. A corrupt value is reset to an
// empty list with a warning rather than propagated as a failure.
func (s *CartService) Items(ctx context.Context) ([]model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if errors.Is(err, ErrCorruptCart) {
		log.Warn().Msg("Persisted cart is corrupt, resetting to empty list")
		metrics.RecordCartCorruptionReset()
		if resetErr := s.reset(ctx); resetErr != nil {
			return nil, resetErr
		}
		return []model.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of persisted line items.
func (s *CartService) Count(ctx context.Context) (int, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Clear resets the persisted cart to an empty list and publishes a
// cart-changed signal.
func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reset(ctx); err != nil {
		return err
	}

	metrics.UpdateCartItems(0)
	if s.broker != nil {
		s.broker.Publish()
	}
	return nil
}

// load reads and decodes the persisted cart. An absent key yields an empty
// list; an unparseable value yields ErrCorruptCart.
func (s *CartService) load(ctx context.Context) ([]model.CartItem, error) {
	raw, err := s.store.Get(ctx, CartKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []model.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items, nil
}

// reset writes an empty list under the cart key.
func (s *CartService) reset(ctx context.Context) error {
	return s.store.Set(ctx, CartKey, "[]")
}
