// Package notify provides in-process change broadcasting and transient
// user-facing notifications for the storefront service.
package notify

import "sync"

// Broker broadcasts a zero-payload "cart changed" signal to all subscribers.
// Subscribers are expected to re-read the cart store on every signal; the
// signal itself carries no state.
type Broker struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan struct{}
}

// NewBroker creates a broker with no subscribers.
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[int]chan struct{}),
	}
}

// Subscribe registers a subscriber and returns its signal channel along with
// a cancel function that must be called to release the subscription.
// The channel has a buffer of one; signals arriving while a previous signal
// is still pending are coalesced rather than queued, which is safe because
// subscribers re-read the store rather than consume payloads.
func (b *Broker) Subscribe() (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan struct{}, 1)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Publish signals all current subscribers without blocking.
func (b *Broker) Publish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
			// Subscriber already has a pending signal; coalesce.
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (b *Broker) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
