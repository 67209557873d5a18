package event

import "sync/atomic"

// SubscriptionState represents the state of a subscription.
type SubscriptionState int32

const (
	// SubscriptionStateActive means the subscription is receiving notifications.
	SubscriptionStateActive SubscriptionState = iota

	// SubscriptionStatePaused means delivery is temporarily suspended.
	SubscriptionStatePaused

	// SubscriptionStateCancelled means the subscription is permanently cancelled.
	SubscriptionStateCancelled
)

// String returns a human-readable state name.
func (s SubscriptionState) String() string {
	switch s {
	case SubscriptionStateActive:
		return "active"
	case SubscriptionStatePaused:
		return "paused"
	case SubscriptionStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Subscription represents an active change subscription.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// Kind returns the subscribed notification kind.
	Kind() Kind

	// State returns the current subscription state.
	State() SubscriptionState

	// IsActive returns true if the subscription can receive notifications.
	IsActive() bool

	// IsPaused returns true if the subscription is paused.
	IsPaused() bool

	// Pause temporarily stops delivery to this subscription.
	Pause()

	// Resume restarts delivery after a pause.
	Resume()

	// Cancel permanently cancels the subscription.
	// After cancellation, the subscription cannot be resumed.
	Cancel()
}

// SubscriptionConfig contains configuration for a subscription.
type SubscriptionConfig struct {
	// Filter is an optional predicate; when set, changes are only
	// delivered if Filter returns true.
	Filter FilterFunc

	// Once indicates the subscription auto-cancels after the first delivery.
	Once bool
}

// SubscriptionOption is a function that configures a subscription.
type SubscriptionOption func(*SubscriptionConfig)

// WithFilter sets a filter predicate.
func WithFilter(f FilterFunc) SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Filter = f
	}
}

// WithOnce sets the subscription to auto-cancel after the first delivery.
func WithOnce() SubscriptionOption {
	return func(c *SubscriptionConfig) {
		c.Once = true
	}
}

// subscription is the internal Subscription implementation.
type subscription struct {
	id      string
	kind    Kind
	handler Handler
	config  SubscriptionConfig
	state   atomic.Int32
}

func newSubscription(id string, kind Kind, handler Handler, opts ...SubscriptionOption) *subscription {
	var config SubscriptionConfig
	for _, opt := range opts {
		opt(&config)
	}
	return &subscription{
		id:      id,
		kind:    kind,
		handler: handler,
		config:  config,
	}
}

// ID returns the unique subscription identifier.
func (s *subscription) ID() string { return s.id }

// Kind returns the subscribed notification kind.
func (s *subscription) Kind() Kind { return s.kind }

// Config returns the subscription's configuration.
func (s *subscription) Config() SubscriptionConfig { return s.config }

// State returns the current subscription state.
func (s *subscription) State() SubscriptionState {
	return SubscriptionState(s.state.Load())
}

// IsActive returns true if the subscription can receive notifications.
func (s *subscription) IsActive() bool {
	return s.State() == SubscriptionStateActive
}

// IsPaused returns true if the subscription is paused.
func (s *subscription) IsPaused() bool {
	return s.State() == SubscriptionStatePaused
}

// IsCancelled returns true if the subscription is cancelled.
func (s *subscription) IsCancelled() bool {
	return s.State() == SubscriptionStateCancelled
}

// Pause temporarily stops delivery. Cancelled subscriptions stay cancelled.
func (s *subscription) Pause() {
	s.state.CompareAndSwap(int32(SubscriptionStateActive), int32(SubscriptionStatePaused))
}

// Resume restarts delivery after a pause.
func (s *subscription) Resume() {
	s.state.CompareAndSwap(int32(SubscriptionStatePaused), int32(SubscriptionStateActive))
}

// Cancel permanently cancels the subscription.
func (s *subscription) Cancel() {
	s.state.Store(int32(SubscriptionStateCancelled))
}

// ShouldDeliver reports whether the change passes the subscription's filter.
func (s *subscription) ShouldDeliver(ch Change) bool {
	if s.config.Filter == nil {
		return true
	}
	return s.config.Filter(ch)
}
