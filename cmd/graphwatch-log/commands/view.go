// Package commands implements the graphwatch-log CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/graphwatch/graphwatch-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category  *log.Category
	SessionID string
	EntityID  string
	Field     string
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{
		Category:  f.Category,
		SessionID: f.SessionID,
		EntityID:  f.EntityID,
		Field:     f.Field,
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] CATEGORY Label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := shortenID(event.SessionID)

	var label string
	switch {
	case event.Subscription != nil:
		label = event.Subscription.Action.String()
	case event.Relay != nil:
		label = "CHANGE"
	case event.Collection != nil:
		label = event.Collection.Action.String()
	case event.Error != nil:
		label = "FAULT"
	default:
		label = "Unknown"
	}

	fmt.Fprintf(w, "%s [session:%s] %s %s\n", ts, session, event.Category.String(), label)

	if event.EntityID != "" {
		fmt.Fprintf(w, "  Entity: %s (%s)\n", event.EntityType, shortenID(event.EntityID))
	}
	if event.Field != "" {
		fmt.Fprintf(w, "  Field: %s\n", event.Field)
	}

	switch {
	case event.Subscription != nil:
		formatSubscriptionDetails(w, event.Subscription)
	case event.Relay != nil:
		formatRelayDetails(w, event.Relay)
	case event.Collection != nil:
		formatCollectionDetails(w, event.Collection)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of an ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatSubscriptionDetails writes attach/detach details.
func formatSubscriptionDetails(w io.Writer, sub *log.SubscriptionEvent) {
	if sub.Action == log.SubscriptionAttach {
		fmt.Fprintf(w, "  Depth: %d\n", sub.Depth)
	}
	if sub.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sub.Reason)
	}
}

// formatRelayDetails writes the provenance chain of a relayed change.
func formatRelayDetails(w io.Writer, relay *log.RelayEvent) {
	if len(relay.Chain) > 0 {
		short := make([]string, len(relay.Chain))
		for i, id := range relay.Chain {
			short[i] = shortenID(id)
		}
		fmt.Fprintf(w, "  Chain: %s\n", strings.Join(short, " <- "))
	}
	if relay.Rewalk {
		fmt.Fprintln(w, "  Rewalk: yes")
	}
}

// formatCollectionDetails writes membership change details.
func formatCollectionDetails(w io.Writer, c *log.CollectionEvent) {
	if c.Index >= 0 {
		fmt.Fprintf(w, "  Index: %d\n", c.Index)
	}
	fmt.Fprintf(w, "  Members: %d  Subscribed: %d\n", c.Members, c.Subscribed)
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "subscription":
		return log.CategorySubscription, nil
	case "relay":
		return log.CategoryRelay, nil
	case "collection":
		return log.CategoryCollection, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be subscription, relay, collection, or error)", s)
	}
}

// parseTime parses an RFC3339 time flag.
func parseTime(name, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format: %w", name, err)
	}
	return &t, nil
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
