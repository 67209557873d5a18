package event

import "testing"

func TestSubscriptionState_String(t *testing.T) {
	tests := []struct {
		state    SubscriptionState
		expected string
	}{
		{SubscriptionStateActive, "active"},
		{SubscriptionStatePaused, "paused"},
		{SubscriptionStateCancelled, "cancelled"},
		{SubscriptionState(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.state.String(); got != tt.expected {
				t.Errorf("SubscriptionState.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKind_Valid(t *testing.T) {
	valid := []Kind{KindInserted, KindRemoved, KindReplaced, KindCleared, KindChanged}
	for _, k := range valid {
		if !k.Valid() {
			t.Errorf("%q should be valid", k)
		}
	}
	if Kind("palette.exploded").Valid() {
		t.Error("unknown kind should not be valid")
	}
}

func TestSubscription_CancelIsFinal(t *testing.T) {
	sub := newSubscription("id", KindInserted, HandlerFunc(func(Change) error { return nil }))

	sub.Cancel()
	sub.Resume()

	if sub.State() != SubscriptionStateCancelled {
		t.Errorf("state = %v after Cancel+Resume, want cancelled", sub.State())
	}
	if sub.IsActive() {
		t.Error("cancelled subscription should not be active")
	}
}

func TestSubscription_PauseOnlyPausesActive(t *testing.T) {
	sub := newSubscription("id", KindInserted, HandlerFunc(func(Change) error { return nil }))

	sub.Cancel()
	sub.Pause()

	if sub.State() != SubscriptionStateCancelled {
		t.Errorf("state = %v, want cancelled", sub.State())
	}
}

func TestSubscription_ShouldDeliver(t *testing.T) {
	noFilter := newSubscription("a", KindInserted, HandlerFunc(func(Change) error { return nil }))
	if !noFilter.ShouldDeliver(Change{Index: 7}) {
		t.Error("subscription without filter should always deliver")
	}

	filtered := newSubscription("b", KindInserted, HandlerFunc(func(Change) error { return nil }),
		WithFilter(func(ch Change) bool { return ch.Index == 0 }))
	if !filtered.ShouldDeliver(Change{Index: 0}) {
		t.Error("filter should allow index 0")
	}
	if filtered.ShouldDeliver(Change{Index: 1}) {
		t.Error("filter should reject index 1")
	}
}
