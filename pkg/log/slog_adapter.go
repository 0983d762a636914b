package log

import (
	"context"
	"log/slog"
	"strings"
)

// SlogAdapter writes collection events to an slog.Logger.
// Useful for development when you want to see subscription traffic in console.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger
// at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter that logs at level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", shortID(event.SessionID)),
		slog.String("category", event.Category.String()),
	}

	if event.EntityID != "" {
		attrs = append(attrs, slog.String("entity", shortID(event.EntityID)))
	}
	if event.EntityType != "" {
		attrs = append(attrs, slog.String("type", event.EntityType))
	}
	if event.Field != "" {
		attrs = append(attrs, slog.String("field", event.Field))
	}

	level := a.level
	switch {
	case event.Subscription != nil:
		attrs = append(attrs, slog.String("action", event.Subscription.Action.String()))
		if event.Subscription.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Subscription.Reason))
		}
		if event.Subscription.Action == SubscriptionAttach {
			attrs = append(attrs, slog.Int("depth", event.Subscription.Depth))
		}
	case event.Relay != nil:
		chain := make([]string, len(event.Relay.Chain))
		for i, id := range event.Relay.Chain {
			chain[i] = shortID(id)
		}
		attrs = append(attrs,
			slog.String("chain", strings.Join(chain, "<")),
			slog.Bool("rewalk", event.Relay.Rewalk),
		)
	case event.Collection != nil:
		attrs = append(attrs,
			slog.String("action", event.Collection.Action.String()),
			slog.Int("index", event.Collection.Index),
			slog.Int("members", event.Collection.Members),
			slog.Int("subscribed", event.Collection.Subscribed),
		)
	case event.Error != nil:
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "graphwatch", attrs...)
}

// shortID returns the first 8 characters of a UUID label.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
