package desk

import (
	"github.com/bnema/floatdesk/internal/domain/entity"
)

// FitAllToScreen tiles every non-minimized panel on a grid over the usable
// area. Maximized panels are demoted first. Cells are inset by the fit gap
// and panel sizes are capped at FitMaxSize.
func (m *Manager) FitAllToScreen() entity.Grid {
	m.mu.Lock()
	defer m.mu.Unlock()

	var targets []*Panel
	for _, p := range m.list() {
		if p.state == entity.PanelMinimized || p.closing {
			continue
		}
		if p.state == entity.PanelMaximized {
			p.cancelInteraction()
			p.state = entity.PanelNormal
			m.stack.BringToFront(p, m.list())
		}
		targets = append(targets, p)
	}

	grid := entity.GridLayout(len(targets), m.vp, m.opts.Bands)
	for i, p := range targets {
		cell := grid.Cells[i].Inset(m.opts.FitGap / 2)
		cell.Width = min(cell.Width, m.opts.FitMaxSize.Width)
		cell.Height = min(cell.Height, m.opts.FitMaxSize.Height)
		p.cancelInteraction()
		p.place(entity.ClampRect(cell, m.opts.MinSize, m.vp, m.opts.Bands))
		p.restoreRect = p.rect
	}
	if m.active != nil && m.active.state != entity.PanelMinimized {
		m.stack.BringToFront(m.active, m.list())
	}
	if len(targets) > 0 {
		m.markDirty("fit")
	}
	return grid
}

// MinimizeAll minimizes every visible panel, refreshing the tray once.
func (m *Manager) MinimizeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.beginBatch()
	defer m.endBatch()
	for _, p := range m.list() {
		if p.state != entity.PanelMinimized && !p.closing {
			p.minimize()
		}
	}
}
