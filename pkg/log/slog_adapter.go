package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger. Useful for
// development when you want to see negotiation events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given
// slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("exchange_id", event.ExchangeID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}

	if event.LocalVersion != "" {
		attrs = append(attrs, slog.String("local_version", event.LocalVersion))
	}
	if event.PeerVersion != "" {
		attrs = append(attrs, slog.String("peer_version", event.PeerVersion))
	}
	if event.Feature != "" {
		attrs = append(attrs, slog.String("feature", event.Feature))
	}
	if event.Category == CategoryVerdict {
		attrs = append(attrs, slog.Bool("compatible", event.Compatible))
	}
	if event.Error != "" {
		attrs = append(attrs, slog.String("error", event.Error))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "negotiation event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
