package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/domain/repository"
	"github.com/bnema/floatdesk/internal/domain/validation"
	"github.com/bnema/floatdesk/internal/logging"
)

// ListLayoutsUseCase summarizes every stored layout slot.
type ListLayoutsUseCase struct {
	store     repository.LayoutStore
	maxPanels int
}

// NewListLayoutsUseCase creates a new ListLayoutsUseCase.
func NewListLayoutsUseCase(store repository.LayoutStore, maxPanels int) *ListLayoutsUseCase {
	return &ListLayoutsUseCase{store: store, maxPanels: maxPanels}
}

// Execute returns one entry per valid stored slot. Corrupted slots are skipped.
func (uc *ListLayoutsUseCase) Execute(ctx context.Context) ([]entity.LayoutInfo, error) {
	values, err := uc.store.List(ctx, repository.LayoutKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}

	infos := make([]entity.LayoutInfo, 0, len(values))
	for _, v := range values {
		slot := repository.SlotFromKey(v.Key)
		layout, err := validation.ParseLayout(v.Value, uc.maxPanels)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("slot", slot).Msg("skipping corrupted layout")
			continue
		}
		infos = append(infos, entity.LayoutInfo{
			Slot:       slot,
			Layout:     layout,
			PanelCount: layout.PanelCount(),
			Minimized:  layout.CountByState(entity.PanelMinimized),
			UpdatedAt:  v.UpdatedAt,
		})
	}
	return infos, nil
}
