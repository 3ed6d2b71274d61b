package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes bridge events to an slog.Logger.
// Useful for development when you want to see bridge events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Errors and unclaimed discovery
// decisions log at Warn level, everything else at Debug.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("category", event.Category.String()),
	}

	// Add optional identifiers
	if event.DeviceName != "" {
		attrs = append(attrs, slog.String("device_name", event.DeviceName))
	}
	if event.DeviceType != "" {
		attrs = append(attrs, slog.String("device_type", event.DeviceType))
	}
	if event.EntityID != "" {
		attrs = append(attrs, slog.String("entity_id", event.EntityID))
	}

	level := slog.LevelDebug

	// Add type-specific attributes
	switch {
	case event.Discovery != nil:
		attrs = append(attrs, slog.Bool("claimed", event.Discovery.Claimed))
		if event.Discovery.Topic != "" {
			attrs = append(attrs, slog.String("topic", event.Discovery.Topic))
		}
		if event.Discovery.Classification != "" {
			attrs = append(attrs, slog.String("classification", event.Discovery.Classification))
		}
		if event.Discovery.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Discovery.Reason))
			level = slog.LevelWarn
		}
	case event.Command != nil:
		attrs = append(attrs, slog.String("command", event.Command.Name))
		if event.Command.Argument != "" {
			attrs = append(attrs, slog.String("argument", event.Command.Argument))
		}
	case event.StateRefresh != nil:
		attrs = append(attrs,
			slog.String("state", event.StateRefresh.State),
			slog.String("mode", event.StateRefresh.Mode),
			slog.Int("target_humidity", event.StateRefresh.TargetHumidity),
		)
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
		level = slog.LevelWarn
	}

	a.logger.LogAttrs(context.Background(), level, "bridge event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
