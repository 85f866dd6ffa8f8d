package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/domain/validation"
	"github.com/bnema/floatdesk/internal/logging"
)

// ImportLayoutUseCase errors.
var (
	ErrVersionMismatch = errors.New("layout version mismatch")
	ErrImportCanceled  = errors.New("import canceled")
)

// ImportLayoutUseCase validates a layout file, asks for confirmation, then
// replaces the live and stored layout with it.
type ImportLayoutUseCase struct {
	save      *SaveLayoutUseCase
	confirmer port.Confirmer
	notifier  port.Notification
	maxPanels int
}

// NewImportLayoutUseCase creates a new ImportLayoutUseCase.
// confirmer and notifier may be nil; without a confirmer only AssumeYes
// imports go through.
func NewImportLayoutUseCase(
	save *SaveLayoutUseCase,
	confirmer port.Confirmer,
	notifier port.Notification,
	maxPanels int,
) *ImportLayoutUseCase {
	if maxPanels <= 0 {
		maxPanels = validation.DefaultMaxPanels
	}
	return &ImportLayoutUseCase{
		save:      save,
		confirmer: confirmer,
		notifier:  notifier,
		maxPanels: maxPanels,
	}
}

// ImportDesk is the live desk an import replaces.
type ImportDesk interface {
	port.LayoutApplier
	port.LayoutProvider
}

// ImportLayoutInput contains the parameters for an import.
type ImportLayoutInput struct {
	// Path is read when Data is nil.
	Path string
	Data []byte
	// AssumeYes skips the confirmation prompt.
	AssumeYes bool
	// Desk is replaced when set; otherwise only the store is written.
	Desk ImportDesk
}

// ImportLayoutOutput describes the imported layout.
type ImportLayoutOutput struct {
	Layout  *entity.Layout
	Applied bool
}

// Execute runs the import. Nothing changes unless the file is valid, has the
// current version and the user confirms.
func (uc *ImportLayoutUseCase) Execute(ctx context.Context, input ImportLayoutInput) (*ImportLayoutOutput, error) {
	log := logging.FromContext(ctx)

	layout, err := uc.parse(input)
	if err != nil {
		log.Warn().Err(err).Str("path", input.Path).Msg("layout import rejected")
		uc.notify(ctx, "Import failed: "+err.Error(), port.NotificationError)
		return nil, err
	}

	if !input.AssumeYes {
		if err := uc.confirm(ctx, layout); err != nil {
			return nil, err
		}
	}

	out := &ImportLayoutOutput{Layout: layout}
	toSave := layout
	if input.Desk != nil {
		if err := input.Desk.ApplyLayout(ctx, layout); err != nil {
			uc.notify(ctx, "Import failed: "+err.Error(), port.NotificationError)
			return nil, fmt.Errorf("apply imported layout: %w", err)
		}
		out.Applied = true
		toSave = input.Desk.LayoutSnapshot()
	}

	if uc.save != nil {
		if err := uc.save.Execute(ctx, toSave); err != nil {
			// the live desk already shows the import; the debounced save retries
			log.Error().Err(err).Msg("failed to persist imported layout")
			uc.notify(ctx, "Layout imported but not saved", port.NotificationWarning)
			return out, err
		}
	}

	log.Info().Int("panels", layout.PanelCount()).Bool("applied", out.Applied).Msg("layout imported")
	uc.notify(ctx, fmt.Sprintf("Imported %d panels", layout.PanelCount()), port.NotificationSuccess)
	return out, nil
}

func (uc *ImportLayoutUseCase) parse(input ImportLayoutInput) (*entity.Layout, error) {
	data := input.Data
	if data == nil {
		raw, err := os.ReadFile(input.Path)
		if err != nil {
			return nil, fmt.Errorf("read layout file: %w", err)
		}
		data = raw
	}

	// A probe that fails to decode is left to ParseLayout, which reports why.
	var probe struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err == nil {
		if probe.Version == nil {
			return nil, fmt.Errorf("%w: version is missing", ErrVersionMismatch)
		}
		if *probe.Version != entity.LayoutVersion {
			return nil, fmt.Errorf("%w: file has %d, expected %d", ErrVersionMismatch, *probe.Version, entity.LayoutVersion)
		}
	}

	layout, err := validation.ParseLayout(data, uc.maxPanels)
	if err != nil {
		return nil, err
	}
	return layout, nil
}

func (uc *ImportLayoutUseCase) confirm(ctx context.Context, layout *entity.Layout) error {
	if uc.confirmer == nil {
		return fmt.Errorf("%w: no confirmation available", ErrImportCanceled)
	}
	prompt := fmt.Sprintf("Replace the current layout with %d imported panels?", layout.PanelCount())
	ok, err := uc.confirmer.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("confirm import: %w", err)
	}
	if !ok {
		logging.FromContext(ctx).Info().Msg("layout import declined")
		return ErrImportCanceled
	}
	return nil
}

func (uc *ImportLayoutUseCase) notify(ctx context.Context, msg string, kind port.NotificationType) {
	if uc.notifier != nil {
		uc.notifier.Show(ctx, msg, kind, 0)
	}
}
