package desk

import (
	"fmt"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// TrayEntry is one minimized panel listed in the tray.
type TrayEntry struct {
	ID    entity.PanelID
	Title string
}

type trayState struct {
	entries []TrayEntry
	// refreshes counts rebuilds; hosts compare it to skip redraws.
	refreshes int
}

func (m *Manager) refreshTray() {
	if m.batch > 0 {
		m.trayPending = true
		return
	}
	entries := make([]TrayEntry, 0, len(m.tray.entries))
	for _, p := range m.list() {
		if p.state == entity.PanelMinimized && !p.closing {
			entries = append(entries, TrayEntry{ID: p.id, Title: p.title})
		}
	}
	m.tray.entries = entries
	m.tray.refreshes++
}

// Tray lists the minimized panels in creation order.
func (m *Manager) Tray() []TrayEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]TrayEntry(nil), m.tray.entries...)
}

// TrayRefreshes returns how many times the tray was rebuilt.
func (m *Manager) TrayRefreshes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tray.refreshes
}

// RestoreFromTray restores a minimized panel.
func (m *Manager) RestoreFromTray(id entity.PanelID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.panels[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}
	p.restore()
	return nil
}
