package port

import (
	"context"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// LayoutProvider provides access to the live desk arrangement.
// Implemented by the panel manager so the snapshot service can read state.
type LayoutProvider interface {
	// LayoutSnapshot returns a snapshot of every panel on the desk.
	LayoutSnapshot() *entity.Layout
}

// LayoutApplier replaces the live desk arrangement.
type LayoutApplier interface {
	// PanelCount returns how many panels are currently on the desk.
	PanelCount() int
	// ApplyLayout removes every panel and rebuilds the desk from layout.
	ApplyLayout(ctx context.Context, layout *entity.Layout) error
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	// Confirm returns true when the user accepts the prompt.
	Confirm(ctx context.Context, prompt string) (bool, error)
}
