// Package event provides change notification for palette collections.
//
// A Notifier maintains a registry of subscriptions keyed by notification
// kind (inserted, removed, replaced, cleared, changed). Delivery is
// synchronous and in subscription order; every structural edit publishes
// its specific kind first, then the generic changed kind. A panicking
// handler is recovered and counted so one misbehaving subscriber cannot
// take down the publisher.
//
// Subscriptions support pause/resume/cancel, an optional filter predicate,
// and one-shot delivery:
//
//	sub, _ := n.SubscribeFunc(event.KindInserted, func(ch event.Change) error {
//		fmt.Println("inserted", ch.Value, "at", ch.Index)
//		return nil
//	})
//	defer n.Unsubscribe(sub)
package event
