package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/guttosm/storefront-service/internal/notify"
	"github.com/rs/zerolog/log"
)

// CartBadge maintains a cached cart count for display. It subscribes to the
// cart-changed broadcast and re-reads the store on every signal, so it never
// needs to know what changed.
type CartBadge struct {
	cart   Cart
	count  atomic.Int64
	cancel func()
	done   chan struct{}
}

// NewCartBadge creates a badge, primes the count, and starts listening for
// cart-changed signals until Stop is called.
func NewCartBadge(cart Cart, broker *notify.Broker) *CartBadge {
	b := &CartBadge{
		cart: cart,
		done: make(chan struct{}),
	}

	b.refresh()

	ch, cancel := broker.Subscribe()
	b.cancel = cancel

	go func() {
		defer close(b.done)
		for range ch {
			b.refresh()
		}
	}()

	return b
}

// Count returns the cached number of cart line items.
func (b *CartBadge) Count() int {
	return int(b.count.Load())
}

// Stop unsubscribes from the broker and waits for the listener to exit.
func (b *CartBadge) Stop() {
	b.cancel()
	<-b.done
}

// refresh re-reads the cart count from the store.
func (b *CartBadge) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	count, err := b.cart.Count(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to refresh cart badge count")
		return
	}
	b.count.Store(int64(count))
}
