package event

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// Notifier is a synchronous multicast registry of change subscriptions,
// organized by notification kind. It is safe for concurrent use.
type Notifier struct {
	mu   sync.RWMutex
	subs map[Kind][]*subscription
	byID map[string]*subscription

	published     atomic.Uint64
	delivered     atomic.Uint64
	handlerErrors atomic.Uint64
	handlerPanics atomic.Uint64
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[Kind][]*subscription),
		byID: make(map[string]*subscription),
	}
}

// Subscribe registers a handler for the given notification kind.
// Handlers for a kind are invoked in subscription order.
func (n *Notifier) Subscribe(kind Kind, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	sub := newSubscription(generateID(), kind, handler, opts...)

	n.mu.Lock()
	n.subs[kind] = append(n.subs[kind], sub)
	n.byID[sub.id] = sub
	n.mu.Unlock()

	return sub, nil
}

// SubscribeFunc is a convenience method for subscribing with a function handler.
func (n *Notifier) SubscribeFunc(kind Kind, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	return n.Subscribe(kind, fn, opts...)
}

// Unsubscribe removes a subscription.
func (n *Notifier) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}

	sub.Cancel()

	n.mu.Lock()
	defer n.mu.Unlock()

	s, exists := n.byID[sub.ID()]
	if !exists {
		return ErrSubscriptionNotFound
	}

	kind := s.kind
	subs := n.subs[kind]
	for i, candidate := range subs {
		if candidate.id == s.id {
			n.subs[kind] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(n.subs[kind]) == 0 {
		delete(n.subs, kind)
	}
	delete(n.byID, s.id)

	return nil
}

// Publish delivers a change to every active subscription for the kind,
// in subscription order. Delivery is synchronous: Publish returns after
// the last handler has run. A panicking handler is recovered and counted.
func (n *Notifier) Publish(kind Kind, ch Change) {
	n.mu.RLock()
	subs := n.subs[kind]
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)
	n.mu.RUnlock()

	n.published.Add(1)

	for _, sub := range snapshot {
		if !sub.IsActive() || !sub.ShouldDeliver(ch) {
			continue
		}

		err := n.dispatch(sub, kind, ch)
		switch {
		case err == nil:
			n.delivered.Add(1)
		case errors.Is(err, ErrHandlerPanic):
			// Counted in dispatch.
		default:
			n.handlerErrors.Add(1)
		}

		if sub.Config().Once {
			_ = n.Unsubscribe(sub)
		}
	}
}

// dispatch runs one handler with panic isolation.
func (n *Notifier) dispatch(sub *subscription, kind Kind, ch Change) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			n.handlerPanics.Add(1)
			err = &PanicError{
				SubscriptionID: sub.id,
				Kind:           kind,
				Value:          recovered,
			}
		}
	}()
	return sub.handler.Handle(ch)
}

// Count returns the total number of subscriptions.
func (n *Notifier) Count() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.byID)
}

// CountActive returns the number of active subscriptions.
func (n *Notifier) CountActive() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := 0
	for _, sub := range n.byID {
		if sub.IsActive() {
			count++
		}
	}
	return count
}

// Clear removes all subscriptions.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, sub := range n.byID {
		sub.Cancel()
	}
	n.subs = make(map[Kind][]*subscription)
	n.byID = make(map[string]*subscription)
}

// Stats returns current notifier counters.
func (n *Notifier) Stats() Stats {
	return Stats{
		Published:         n.published.Load(),
		Delivered:         n.delivered.Load(),
		HandlerErrors:     n.handlerErrors.Load(),
		HandlerPanics:     n.handlerPanics.Load(),
		ActiveSubscribers: n.CountActive(),
	}
}

// generateID generates a unique subscription ID.
func generateID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// Fallback to timestamp-based ID if crypto/rand fails
		return hex.EncodeToString([]byte(time.Now().String()))
	}
	return hex.EncodeToString(b)
}
