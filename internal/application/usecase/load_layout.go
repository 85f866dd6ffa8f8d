package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/domain/repository"
	"github.com/bnema/floatdesk/internal/domain/validation"
	"github.com/bnema/floatdesk/internal/logging"
)

// LoadLayoutUseCase reads and validates the stored layout and applies it to
// an empty desk.
type LoadLayoutUseCase struct {
	store     repository.LayoutStore
	notifier  port.Notification
	slot      string
	enabled   bool
	maxPanels int
}

// NewLoadLayoutUseCase creates a new LoadLayoutUseCase. notifier may be nil.
func NewLoadLayoutUseCase(
	store repository.LayoutStore,
	notifier port.Notification,
	slot string,
	enabled bool,
	maxPanels int,
) *LoadLayoutUseCase {
	if slot == "" {
		slot = DefaultLayoutSlot
	}
	if maxPanels <= 0 {
		maxPanels = validation.DefaultMaxPanels
	}
	return &LoadLayoutUseCase{
		store:     store,
		notifier:  notifier,
		slot:      slot,
		enabled:   enabled,
		maxPanels: maxPanels,
	}
}

// LoadLayoutOutput describes what Execute found and did.
type LoadLayoutOutput struct {
	// Layout is nil when nothing was stored.
	Layout *entity.Layout
	// Applied is true when the layout replaced the (empty) desk.
	Applied bool
}

// Execute loads the stored layout. When desk is non-nil and has no panels the
// layout is applied to it. A stored layout that fails validation is reported
// to the user and nothing is applied.
func (uc *LoadLayoutUseCase) Execute(ctx context.Context, desk port.LayoutApplier) (*LoadLayoutOutput, error) {
	ctx = logging.WithSlot(ctx, uc.slot)
	log := logging.FromContext(ctx)
	out := &LoadLayoutOutput{}

	if !uc.enabled || uc.store == nil {
		log.Debug().Msg("layout persistence disabled, skipping load")
		return out, nil
	}

	data, err := uc.store.Get(ctx, repository.LayoutKey(uc.slot))
	if err != nil {
		uc.notify(ctx, "Could not read the saved layout", port.NotificationError)
		return out, fmt.Errorf("load layout %q: %w", uc.slot, err)
	}
	if data == nil {
		log.Debug().Msg("no stored layout")
		return out, nil
	}

	layout, err := validation.ParseLayout(data, uc.maxPanels)
	if err != nil {
		log.Warn().Err(err).Msg("stored layout rejected")
		uc.notify(ctx, "Saved layout is invalid and was not restored", port.NotificationError)
		return out, fmt.Errorf("load layout %q: %w", uc.slot, err)
	}
	out.Layout = layout

	if desk == nil {
		return out, nil
	}
	if n := desk.PanelCount(); n > 0 {
		log.Debug().Int("panels", n).Msg("desk already populated, stored layout not applied")
		return out, nil
	}
	if err := desk.ApplyLayout(ctx, layout); err != nil {
		uc.notify(ctx, "Could not restore the saved layout", port.NotificationError)
		return out, fmt.Errorf("apply layout %q: %w", uc.slot, err)
	}
	out.Applied = true

	log.Info().Int("panels", layout.PanelCount()).Msg("layout restored")
	return out, nil
}

func (uc *LoadLayoutUseCase) notify(ctx context.Context, msg string, kind port.NotificationType) {
	if uc.notifier != nil {
		uc.notifier.Show(ctx, msg, kind, 0)
	}
}
