package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func withStr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}

// WithComponent tags every line with the subsystem that wrote it. `floatdesk
// logs` prints the tag in brackets.
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithPanelID tags lines about a single panel.
func WithPanelID(ctx context.Context, id entity.PanelID) context.Context {
	return withStr(ctx, "panel_id", string(id))
}

// WithSlot tags lines about a stored layout slot.
func WithSlot(ctx context.Context, slot string) context.Context {
	return withStr(ctx, "slot", slot)
}
