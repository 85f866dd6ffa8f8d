package entity

import "time"

// LayoutVersion is the current schema version for persisted layouts.
// Increment when making breaking changes to the serialization format.
const LayoutVersion = 1

// Layout is a complete snapshot of the desk arrangement.
// It is serialized to JSON for the durable store and for export files.
type Layout struct {
	Version   int           `json:"version"`
	Timestamp time.Time     `json:"timestamp"`
	Panels    []PanelRecord `json:"panels"`
}

// PanelRecord captures the persisted state of a single panel.
// Geometry fields are optional so hand-written import files may omit them.
type PanelRecord struct {
	ID          PanelID           `json:"id"`
	Title       string            `json:"title"`
	Position    *Point            `json:"position,omitempty"`
	Size        *Size             `json:"size,omitempty"`
	State       PanelState        `json:"state"`
	ActiveTab   int               `json:"activeTab"`
	ContentType string            `json:"contentType,omitempty"`
	ContentData map[string]any    `json:"contentData,omitempty"`
	PreMinimize *PreMinimizeState `json:"preMinimizeState,omitempty"`
}

// NewLayout wraps panel records in a versioned, timestamped layout.
func NewLayout(records []PanelRecord) *Layout {
	if records == nil {
		records = []PanelRecord{}
	}
	return &Layout{
		Version:   LayoutVersion,
		Timestamp: time.Now().UTC(),
		Panels:    records,
	}
}

// PanelCount returns the number of panels in the layout.
func (l *Layout) PanelCount() int {
	if l == nil {
		return 0
	}
	return len(l.Panels)
}

// CountByState returns how many panels are in the given state.
func (l *Layout) CountByState(state PanelState) int {
	if l == nil {
		return 0
	}
	count := 0
	for _, p := range l.Panels {
		if p.State == state {
			count++
		}
	}
	return count
}

// LayoutInfo summarizes a stored layout for listings.
type LayoutInfo struct {
	Slot       string
	Layout     *Layout
	PanelCount int
	Minimized  int
	UpdatedAt  time.Time
}
