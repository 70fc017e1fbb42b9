package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultToastDuration is how long a toast stays visible before it retires.
const DefaultToastDuration = 1000 * time.Millisecond

// Toast is a transient user-visible notification. Every push creates a fresh
// instance with its own ID, so a rapid second push re-triggers the visible
// feedback instead of being suppressed as a duplicate.
//
// @Description Transient success notification
type Toast struct {
	// ID uniquely identifies this notification instance
	ID string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Message is the display text
	Message string `json:"message" example:"Item added successfully!"`
	// CreatedAt is when the toast was pushed
	CreatedAt time.Time `json:"created_at"`
	// ExpiresAt is when the toast retires
	ExpiresAt time.Time `json:"expires_at"`
}

// ToastCenter holds the currently visible toasts and retires each one after
// a fixed duration. Retirement has no side effect beyond hiding the message.
type ToastCenter struct {
	mu       sync.Mutex
	duration time.Duration
	active   map[string]Toast
	timers   map[string]*time.Timer
}

// ToastOption configures a ToastCenter.
type ToastOption func(*ToastCenter)

// WithToastDuration overrides the default toast lifetime.
func WithToastDuration(d time.Duration) ToastOption {
	return func(tc *ToastCenter) {
		if d > 0 {
			tc.duration = d
		}
	}
}

// NewToastCenter creates a toast center with the given options.
func NewToastCenter(opts ...ToastOption) *ToastCenter {
	tc := &ToastCenter{
		duration: DefaultToastDuration,
		active:   make(map[string]Toast),
		timers:   make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(tc)
	}
	return tc
}

// Push creates and returns a new toast, scheduling its retirement.
func (tc *ToastCenter) Push(message string) Toast {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	now := time.Now()
	toast := Toast{
		ID:        uuid.New().String(),
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(tc.duration),
	}

	tc.active[toast.ID] = toast
	tc.timers[toast.ID] = time.AfterFunc(tc.duration, func() {
		tc.retire(toast.ID)
	})

	return toast
}

// Active returns the currently visible toasts, oldest first.
func (tc *ToastCenter) Active() []Toast {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	toasts := make([]Toast, 0, len(tc.active))
	for _, toast := range tc.active {
		toasts = append(toasts, toast)
	}
	sortToasts(toasts)
	return toasts
}

// Stop cancels all pending retirement timers and clears the center.
func (tc *ToastCenter) Stop() {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	for id, timer := range tc.timers {
		timer.Stop()
		delete(tc.timers, id)
	}
	tc.active = make(map[string]Toast)
}

// retire removes a toast once its duration elapses.
func (tc *ToastCenter) retire(id string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	delete(tc.active, id)
	delete(tc.timers, id)
}

// sortToasts orders toasts by creation time, then ID for stability.
func sortToasts(toasts []Toast) {
	sort.Slice(toasts, func(i, j int) bool {
		if !toasts[i].CreatedAt.Equal(toasts[j].CreatedAt) {
			return toasts[i].CreatedAt.Before(toasts[j].CreatedAt)
		}
		return toasts[i].ID < toasts[j].ID
	})
}
