package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/graphwatch/graphwatch-go/pkg/log"
)

func TestStatsCountsByCategory(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, Category: log.CategorySubscription, Subscription: &log.SubscriptionEvent{}},
		{Timestamp: ts, Category: log.CategoryRelay, Field: "Cost", Relay: &log.RelayEvent{}},
		{Timestamp: ts, Category: log.CategoryCollection, Collection: &log.CollectionEvent{}},
		{Timestamp: ts, Category: log.CategoryError, Error: &log.ErrorEventData{Message: "test"}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"SUBSCRIPTION:", "RELAY:", "COLLECTION:", "ERROR:", "Total Events: 4", "Errors: 1"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestStatsPerSession(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, SessionID: "sess-aaaa-1111", Category: log.CategorySubscription,
			Subscription: &log.SubscriptionEvent{Action: log.SubscriptionAttach}},
		{Timestamp: ts, SessionID: "sess-aaaa-1111", Category: log.CategorySubscription,
			Subscription: &log.SubscriptionEvent{Action: log.SubscriptionAttach}},
		{Timestamp: ts.Add(time.Second), SessionID: "sess-aaaa-1111", Category: log.CategorySubscription,
			Subscription: &log.SubscriptionEvent{Action: log.SubscriptionDetach}},
		{Timestamp: ts.Add(time.Second), SessionID: "sess-aaaa-1111", Category: log.CategoryCollection,
			Collection: &log.CollectionEvent{Subscribed: 2}},
		{Timestamp: ts, SessionID: "sess-bbbb-2222", Category: log.CategoryRelay, Field: "Item",
			Relay: &log.RelayEvent{Rewalk: true}},
	}

	reader := openTestLog(t, events)
	stats, err := CollectStats(reader)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	if len(stats.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(stats.Sessions))
	}
	a := stats.Sessions["sess-aaaa-1111"]
	if a.Attached != 2 || a.Detached != 1 || a.MaxSubscribed != 2 {
		t.Errorf("unexpected session stats: %+v", a)
	}
	if a.LastSeen.Sub(a.FirstSeen) != time.Second {
		t.Errorf("expected 1s session duration, got %s", a.LastSeen.Sub(a.FirstSeen))
	}
	if stats.Rewalks != 1 || stats.FieldChanges["Item"] != 1 {
		t.Errorf("expected one rewalk relay of Item, got rewalks=%d fields=%v", stats.Rewalks, stats.FieldChanges)
	}
}

func TestStatsEmptyLog(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
