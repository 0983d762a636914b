package log

// Logger is the interface applications implement to receive collection log events.
// Pass nil or NoopLogger to disable logging.
type Logger interface {
	// Log records an event. Events are produced synchronously on the
	// goroutine mutating the collection, so implementations should not block.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
