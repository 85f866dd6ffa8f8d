package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/domain/repository"
	"github.com/bnema/floatdesk/internal/logging"
)

// DefaultLayoutSlot is the store slot used when none is configured.
const DefaultLayoutSlot = "default"

// SaveLayoutUseCase writes the desk snapshot to the durable store.
type SaveLayoutUseCase struct {
	store   repository.LayoutStore
	slot    string
	enabled bool
}

// NewSaveLayoutUseCase creates a new SaveLayoutUseCase.
// When enabled is false every Execute is a no-op.
func NewSaveLayoutUseCase(store repository.LayoutStore, slot string, enabled bool) *SaveLayoutUseCase {
	if slot == "" {
		slot = DefaultLayoutSlot
	}
	return &SaveLayoutUseCase{store: store, slot: slot, enabled: enabled}
}

// Slot returns the store slot written by this use case.
func (uc *SaveLayoutUseCase) Slot() string {
	return uc.slot
}

// Enabled reports whether saves reach the store.
func (uc *SaveLayoutUseCase) Enabled() bool {
	return uc.enabled && uc.store != nil
}

// Execute replaces the stored layout for the slot with layout.
func (uc *SaveLayoutUseCase) Execute(ctx context.Context, layout *entity.Layout) error {
	log := logging.FromContext(ctx)
	if !uc.Enabled() {
		log.Debug().Msg("layout persistence disabled, skipping save")
		return nil
	}
	if layout == nil {
		return errors.New("layout cannot be nil")
	}

	data, err := json.Marshal(layout)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := uc.store.Put(ctx, repository.LayoutKey(uc.slot), data); err != nil {
		return fmt.Errorf("save layout %q: %w", uc.slot, err)
	}

	log.Debug().
		Str("slot", uc.slot).
		Int("panels", layout.PanelCount()).
		Int("bytes", len(data)).
		Msg("layout saved")
	return nil
}
