package entity

import (
	"errors"
	"fmt"
	"strings"
)

// PanelID uniquely identifies a panel on the desk.
type PanelID string

// PanelState is the display state of a panel.
type PanelState int

const (
	PanelNormal    PanelState = iota // Floating at its own geometry
	PanelMinimized                   // Hidden, listed in the tray
	PanelMaximized                   // Covers the area between header and footer
)

// ErrInvalidTransition is returned when a state change is not allowed.
var ErrInvalidTransition = errors.New("invalid panel state transition")

// ErrUnknownPanelState is returned when parsing an unknown state name.
var ErrUnknownPanelState = errors.New("unknown panel state")

// String returns the persisted name of the state.
func (s PanelState) String() string {
	switch s {
	case PanelNormal:
		return "normal"
	case PanelMinimized:
		return "minimized"
	case PanelMaximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// ParsePanelState converts a persisted name back into a PanelState.
func ParsePanelState(name string) (PanelState, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal":
		return PanelNormal, nil
	case "minimized":
		return PanelMinimized, nil
	case "maximized":
		return PanelMaximized, nil
	default:
		return PanelNormal, fmt.Errorf("%w: %q", ErrUnknownPanelState, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s PanelState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PanelState) UnmarshalText(text []byte) error {
	parsed, err := ParsePanelState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// CanTransitionTo reports whether a panel may go from s to next.
// Staying in the same state is never a transition.
func (s PanelState) CanTransitionTo(next PanelState) bool {
	switch s {
	case PanelNormal:
		return next == PanelMinimized || next == PanelMaximized
	case PanelMaximized:
		return next == PanelNormal || next == PanelMinimized
	case PanelMinimized:
		return next == PanelNormal || next == PanelMaximized
	default:
		return false
	}
}

// Transition returns next when the change is allowed.
func (s PanelState) Transition(next PanelState) (PanelState, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}

// PreMinimizeState captures what a panel looked like before it was minimized
// so restore can put it back exactly.
type PreMinimizeState struct {
	Position      Point      `json:"position"`
	Size          Size       `json:"size"`
	PreviousState PanelState `json:"previousState"`
}

// ResizeHandle names the edge a resize grabs.
type ResizeHandle int

const (
	HandleNone   ResizeHandle = iota
	HandleRight                // Right edge, width only
	HandleBottom               // Bottom edge, height only
	HandleCorner               // Bottom-right corner, both
)

// String returns the handle name.
func (h ResizeHandle) String() string {
	switch h {
	case HandleRight:
		return "right"
	case HandleBottom:
		return "bottom"
	case HandleCorner:
		return "corner"
	default:
		return "none"
	}
}
