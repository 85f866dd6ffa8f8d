package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/logging"
)

const exportFilePerm = 0o600

// ExportLayoutUseCase writes a layout as an indented JSON file.
type ExportLayoutUseCase struct {
	notifier port.Notification
	now      func() time.Time
}

// NewExportLayoutUseCase creates a new ExportLayoutUseCase. notifier may be nil.
func NewExportLayoutUseCase(notifier port.Notification) *ExportLayoutUseCase {
	return &ExportLayoutUseCase{notifier: notifier, now: time.Now}
}

// ExportLayoutInput contains the parameters for an export.
type ExportLayoutInput struct {
	Layout *entity.Layout
	// Path is the target file. Empty or a directory means a dated file name
	// inside it (the working directory when empty).
	Path string
}

// ExportLayoutOutput reports where the file went.
type ExportLayoutOutput struct {
	Path   string
	Panels int
}

// ExportFileName returns the default export file name for t.
func ExportFileName(t time.Time) string {
	return "floatdesk-layout-" + t.Format("2006-01-02") + ".json"
}

// Execute writes the layout file.
func (uc *ExportLayoutUseCase) Execute(ctx context.Context, input ExportLayoutInput) (*ExportLayoutOutput, error) {
	if input.Layout == nil {
		return nil, errors.New("nothing to export")
	}

	path := input.Path
	if path == "" {
		path = ExportFileName(uc.now())
	} else if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ExportFileName(uc.now()))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, exportFilePerm)
	if err != nil {
		return nil, fmt.Errorf("create export file: %w", err)
	}
	if err := EncodeLayout(f, input.Layout); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close export file: %w", err)
	}

	logging.FromContext(ctx).Info().
		Str("path", path).
		Int("panels", input.Layout.PanelCount()).
		Msg("layout exported")
	if uc.notifier != nil {
		uc.notifier.Show(ctx, "Layout exported to "+filepath.Base(path), port.NotificationSuccess, 0)
	}
	return &ExportLayoutOutput{Path: path, Panels: input.Layout.PanelCount()}, nil
}

// EncodeLayout writes layout as indented JSON.
func EncodeLayout(w io.Writer, layout *entity.Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(layout); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}
