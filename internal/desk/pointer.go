package desk

import (
	"github.com/bnema/floatdesk/internal/domain/entity"
)

// PointerDown hit-tests the topmost panel under the pointer, focuses it and
// starts whatever the region calls for: a drag from the header, a resize
// from an edge, or a control button action. It returns the region hit.
func (m *Manager) PointerDown(x, y int) Region {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.listening || m.inFlight != nil {
		return RegionNone
	}

	p, region := m.stack.PanelAt(m.list(), x, y)
	if p == nil {
		return RegionNone
	}
	m.activate(p)

	ptr := Pointer{X: x, Y: y, Target: region}
	switch region {
	case RegionHeader:
		p.startDrag(ptr)
	case RegionResizeRight, RegionResizeBottom, RegionResizeCorner:
		p.startResize(region.Handle(), ptr)
	case RegionMinimizeButton:
		p.minimize()
	case RegionMaximizeButton:
		p.maximize()
	case RegionCloseButton:
		p.close()
	}
	return region
}

// PointerMove routes the pointer to the panel being dragged or resized.
// It reports whether a panel consumed the move.
func (m *Manager) PointerMove(x, y int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.inFlight
	if !m.listening || p == nil {
		return false
	}
	switch {
	case p.interaction.kind == interactionDrag:
		p.dragTo(x, y)
	case p.interaction.kind == interactionResize:
		p.resizeTo(x, y)
	default:
		m.inFlight = nil
		return false
	}
	return true
}

// PointerUp ends the in-flight drag or resize at the release point.
func (m *Manager) PointerUp(x, y int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.inFlight
	if !m.listening || p == nil {
		return false
	}
	switch p.interaction.kind {
	case interactionDrag:
		p.dragTo(x, y)
		p.endDrag()
	case interactionResize:
		p.resizeTo(x, y)
		p.endResize()
	default:
		m.inFlight = nil
	}
	return true
}

// InFlight returns the panel being dragged or resized, or nil.
func (m *Manager) InFlight() *Panel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight
}

// RestoreTrayAt restores the tray entry at index.
func (m *Manager) RestoreTrayAt(index int) (entity.PanelID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.tray.entries) {
		return "", false
	}
	id := m.tray.entries[index].ID
	if p, ok := m.panels[id]; ok {
		p.restore()
	}
	return id, true
}
