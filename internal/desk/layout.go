package desk

import (
	"context"
	"errors"

	"github.com/bnema/floatdesk/internal/domain/entity"
	"github.com/bnema/floatdesk/internal/logging"
)

// LayoutSnapshot captures every live panel in creation order.
func (m *Manager) LayoutSnapshot() *entity.Layout {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]entity.PanelRecord, 0, len(m.order))
	for _, p := range m.list() {
		if p.closing {
			continue
		}
		var pre *entity.PreMinimizeState
		if snap, ok := m.preMin[p.id]; ok {
			pre = &snap
		}
		records = append(records, p.record(pre))
	}
	return entity.NewLayout(records)
}

type resolvedRecord struct {
	record      entity.PanelRecord
	content     entity.Content
	contentType string
	data        map[string]any
}

// ApplyLayout replaces every panel with the panels of a validated layout.
// A record whose content cannot be built is skipped; the rest still load.
func (m *Manager) ApplyLayout(ctx context.Context, layout *entity.Layout) error {
	if layout == nil {
		return errors.New("apply layout: nil layout")
	}
	log := logging.FromContext(ctx)

	resolved := make([]resolvedRecord, 0, len(layout.Panels))
	for _, rec := range layout.Panels {
		content, contentType, data, err := m.resolveContent(ctx, PanelSpec{
			ContentType: rec.ContentType,
			ContentData: rec.ContentData,
		})
		if err != nil {
			log.Warn().Err(err).Str("panel_id", string(rec.ID)).Str("title", rec.Title).Msg("skipping panel")
			continue
		}
		resolved = append(resolved, resolvedRecord{record: rec, content: content, contentType: contentType, data: data})
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrManagerClosed
	}

	m.beginBatch()
	defer m.endBatch()

	m.clear()
	for _, r := range resolved {
		rec := r.record
		p := m.register(PanelSpec{
			ID:        rec.ID,
			Title:     rec.Title,
			Position:  rec.Position,
			Size:      rec.Size,
			ActiveTab: rec.ActiveTab,
		}, r.content, r.contentType, r.data)
		m.applyState(p, rec)
	}

	var focus *Panel
	if m.mobile.enabled {
		focus = m.focusFallback(nil, 0)
	} else {
		focus = m.stack.TopMost(m.list())
	}
	if focus != nil {
		m.activate(focus)
	}
	m.markDirty("apply")

	log.Info().Int("panels", len(m.order)).Int("skipped", len(layout.Panels)-len(resolved)).Msg("layout applied")
	return nil
}

func (m *Manager) applyState(p *Panel, rec entity.PanelRecord) {
	switch rec.State {
	case entity.PanelMaximized:
		p.restoreRect = p.rect
		p.state = entity.PanelMaximized
		p.rect = entity.MaximizedRect(m.vp, m.opts.Bands)
		m.stack.BringToFront(p, m.list())
	case entity.PanelMinimized:
		pre := entity.PreMinimizeState{Position: p.rect.Point, Size: p.rect.Size, PreviousState: entity.PanelNormal}
		if rec.PreMinimize != nil {
			pre = *rec.PreMinimize
		}
		if pre.PreviousState == entity.PanelMinimized {
			pre.PreviousState = entity.PanelNormal
		}
		m.preMin[p.id] = pre
		p.state = entity.PanelMinimized
		p.rect.Point = offscreen
		m.refreshTray()
	}
}
