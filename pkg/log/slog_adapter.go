package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes database events to an slog.Logger.
// Useful for development when you want to see events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("source", event.Source.String()),
		slog.String("category", event.Category.String()),
	}

	// Add optional identifiers
	if event.AID != 0 {
		attrs = append(attrs, slog.Uint64("aid", event.AID))
	}
	if event.IID != 0 {
		attrs = append(attrs, slog.Uint64("iid", event.IID))
	}

	// Add type-specific attributes
	switch {
	case event.Mutation != nil:
		attrs = append(attrs, slog.String("mutation", event.Mutation.Kind.String()))
		if event.Mutation.Type != "" {
			attrs = append(attrs, slog.String("type", event.Mutation.Type))
		}
		if event.Mutation.Value != nil {
			attrs = append(attrs, slog.Any("value", event.Mutation.Value))
		}
	case event.Snapshot != nil:
		attrs = append(attrs,
			slog.String("op", event.Snapshot.Kind.String()),
			slog.String("path", event.Snapshot.Path),
			slog.Int("accessories", event.Snapshot.Accessories),
		)
		if event.Snapshot.Bytes != 0 {
			attrs = append(attrs, slog.Int("bytes", event.Snapshot.Bytes))
		}
		if event.Snapshot.Hash != "" {
			attrs = append(attrs, slog.String("hash", event.Snapshot.Hash))
		}
	case event.Browse != nil:
		attrs = append(attrs,
			slog.String("browse", event.Browse.Kind.String()),
			slog.String("instance", event.Browse.Instance),
		)
		if event.Browse.Host != "" {
			attrs = append(attrs, slog.String("host", event.Browse.Host))
		}
		if event.Browse.Port != 0 {
			attrs = append(attrs, slog.Int("port", event.Browse.Port))
		}
		if event.Browse.DeviceID != "" {
			attrs = append(attrs, slog.String("device_id", event.Browse.DeviceID))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_source", event.Error.Source.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	level := slog.LevelDebug
	if event.Category == CategoryError {
		level = slog.LevelError
	}
	a.logger.LogAttrs(context.Background(), level, "accessorydb", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
