package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/notify"
)

var (
	// ErrNoActiveSelection is returned when an operation targets a selection
	// that is not open.
	ErrNoActiveSelection = errors.New("no active selection")
	// ErrProductNotFound is returned when activation names an unknown product.
	ErrProductNotFound = errors.New("product not found")
)

// SuccessMessageKey is the i18n key of the message pushed after a confirmed
// add-to-cart.
const SuccessMessageKey = "success.item_added"

// Selections defines the overlay selection state machine. A selection is
// open between Activate and Close/Confirm; every other operation on an
// absent selection fails with ErrNoActiveSelection.
type Selections interface {
	// Activate opens a selection on the product, resetting quantity to 1 and
	// the tier to the default. Passing the id of an open selection resets it
	// in place; passing an empty id creates a new one.
	Activate(selectionID, productID string) (model.Selection, error)
	// Get returns the open selection with the given id.
	Get(selectionID string) (model.Selection, error)
	// Close discards an open selection. Closing an absent selection is a no-op.
	Close(selectionID string)
	// ChangeQuantity adds delta to the quantity, clamping at 1.
	ChangeQuantity(selectionID string, delta int) (model.Selection, error)
	// SetTier replaces the selection's weight tier.
	SetTier(selectionID string, tier model.WeightTier) (model.Selection, error)
	// Confirm prices the selection, appends it to the cart, closes the
	// selection, and pushes a success toast.
	Confirm(ctx context.Context, selectionID string) (model.CartItem, error)
}

// SelectionManager implements Selections over an in-memory session table.
type SelectionManager struct {
	mu         sync.RWMutex
	selections map[string]*model.Selection
	catalog    Catalog
	cart       Cart
	toasts     *notify.ToastCenter
	message    string
}

// SelectionOption configures a SelectionManager.
type SelectionOption func(*SelectionManager)

// WithSuccessMessage overrides the toast message pushed on confirmation.
func WithSuccessMessage(message string) SelectionOption {
	return func(m *SelectionManager) {
		if message != "" {
			m.message = message
		}
	}
}

// NewSelectionManager creates a selection manager. The toast center may be
// nil, in which case confirmations skip the visible notification.
func NewSelectionManager(catalog Catalog, cart Cart, toasts *notify.ToastCenter, opts ...SelectionOption) *SelectionManager {
	m := &SelectionManager{
		selections: make(map[string]*model.Selection),
		catalog:    catalog,
		cart:       cart,
		toasts:     toasts,
		message:    "Item added successfully!",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Activate opens (or resets) a selection on the given product with
// quantity 1 and the default tier.
func (m *SelectionManager) Activate(selectionID, productID string) (model.Selection, error) {
	product, ok := m.catalog.GetByID(productID)
	if !ok {
		return model.Selection{}, ErrProductNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	sel, exists := m.selections[selectionID]
	if selectionID == "" || !exists {
		sel = &model.Selection{
			ID:        uuid.New().String(),
			CreatedAt: now,
		}
		m.selections[sel.ID] = sel
	}

	// Re-activation always resets the transient state, regardless of what
	// the selection held before.
	sel.Product = product
	sel.Quantity = 1
	sel.Tier = model.DefaultTier
	sel.UpdatedAt = now

	metrics.SelectionsActive.Set(float64(len(m.selections)))
	return *sel, nil
}

// Get returns the open selection with the given id.
func (m *SelectionManager) Get(selectionID string) (model.Selection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sel, ok := m.selections[selectionID]
	if !ok {
		return model.Selection{}, ErrNoActiveSelection
	}
	return *sel, nil
}

// Close discards an open selection.
func (m *SelectionManager) Close(selectionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.selections, selectionID)
	metrics.SelectionsActive.Set(float64(len(m.selections)))
}

// ChangeQuantity adds delta to the quantity. The result never drops below 1.
func (m *SelectionManager) ChangeQuantity(selectionID string, delta int) (model.Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sel, ok := m.selections[selectionID]
	if !ok {
		return model.Selection{}, ErrNoActiveSelection
	}

	sel.Quantity += delta
	if sel.Quantity < 1 {
		sel.Quantity = 1
	}
	sel.UpdatedAt = time.Now()
	return *sel, nil
}

// SetTier replaces the selection's weight tier.
func (m *SelectionManager) SetTier(selectionID string, tier model.WeightTier) (model.Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sel, ok := m.selections[selectionID]
	if !ok {
		return model.Selection{}, ErrNoActiveSelection
	}

	sel.Tier = tier
	sel.UpdatedAt = time.Now()
	return *sel, nil
}

// Confirm snapshots the selection into a line item, appends it to the cart,
// closes the selection, and pushes a fresh success toast. The selection
// stays open if the cart append fails.
func (m *SelectionManager) Confirm(ctx context.Context, selectionID string) (model.CartItem, error) {
	m.mu.Lock()
	sel, ok := m.selections[selectionID]
	if !ok {
		m.mu.Unlock()
		return model.CartItem{}, ErrNoActiveSelection
	}
	item := BuildLineItem(sel.Product, sel.Tier, sel.Quantity)
	m.mu.Unlock()

	if err := m.cart.Add(ctx, item); err != nil {
		return model.CartItem{}, err
	}

	m.mu.Lock()
	delete(m.selections, selectionID)
	metrics.SelectionsActive.Set(float64(len(m.selections)))
	m.mu.Unlock()

	if m.toasts != nil {
		m.toasts.Push(m.message)
		metrics.RecordToastPushed()
	}

	return item, nil
}
