package log

import (
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		SessionID: "session",
		Category:  CategorySubscription,
	}
	logger.Log(event)

	event.Subscription = &SubscriptionEvent{Action: SubscriptionAttach}
	logger.Log(event)

	event.Subscription = nil
	event.Relay = &RelayEvent{Chain: []string{"a", "b"}}
	logger.Log(event)

	event.Relay = nil
	event.Collection = &CollectionEvent{Action: CollectionClear, Index: -1}
	logger.Log(event)

	event.Collection = nil
	event.Error = &ErrorEventData{Message: "test error"}
	logger.Log(event)
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{CategorySubscription.String(), "SUBSCRIPTION"},
		{CategoryRelay.String(), "RELAY"},
		{CategoryCollection.String(), "COLLECTION"},
		{CategoryError.String(), "ERROR"},
		{Category(99).String(), "UNKNOWN"},
		{SubscriptionAttach.String(), "ATTACH"},
		{SubscriptionDetach.String(), "DETACH"},
		{SubscriptionAction(9).String(), "UNKNOWN"},
		{CollectionAdd.String(), "ADD"},
		{CollectionRemove.String(), "REMOVE"},
		{CollectionReplace.String(), "REPLACE"},
		{CollectionMove.String(), "MOVE"},
		{CollectionClear.String(), "CLEAR"},
		{CollectionAction(9).String(), "UNKNOWN"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
