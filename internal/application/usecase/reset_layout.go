package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/floatdesk/internal/domain/repository"
	"github.com/bnema/floatdesk/internal/logging"
)

// ResetLayoutUseCase deletes the stored layout so the next start is empty.
type ResetLayoutUseCase struct {
	store repository.LayoutStore
	slot  string
}

// NewResetLayoutUseCase creates a new ResetLayoutUseCase.
func NewResetLayoutUseCase(store repository.LayoutStore, slot string) *ResetLayoutUseCase {
	if slot == "" {
		slot = DefaultLayoutSlot
	}
	return &ResetLayoutUseCase{store: store, slot: slot}
}

// Execute removes the slot. A missing slot is not an error.
func (uc *ResetLayoutUseCase) Execute(ctx context.Context) error {
	if err := uc.store.Delete(ctx, repository.LayoutKey(uc.slot)); err != nil {
		return fmt.Errorf("reset layout %q: %w", uc.slot, err)
	}
	logging.FromContext(ctx).Info().Str("slot", uc.slot).Msg("stored layout cleared")
	return nil
}
