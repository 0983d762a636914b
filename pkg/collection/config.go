package collection

import (
	"errors"
	"log/slog"

	"github.com/graphwatch/graphwatch-go/pkg/log"
)

// Collection errors.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNilEntity       = errors.New("nil entity")
)

// Config holds collection configuration.
type Config struct {
	// SessionID labels every event the collection logs.
	// A random UUID is assigned when empty.
	SessionID string

	// Logger receives the subscription event trace. Nil disables it.
	Logger log.Logger

	// Slog receives operational warnings, such as fields skipped while
	// walking. Nil uses slog.Default().
	Slog *slog.Logger
}

// DefaultConfig returns the default collection configuration.
func DefaultConfig() Config {
	return Config{
		Logger: log.NoopLogger{},
		Slog:   slog.Default(),
	}
}
