package desk

import (
	"fmt"
	"strings"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// MobileTab is one button of the narrow-viewport tab strip.
type MobileTab struct {
	ID     entity.PanelID
	Title  string
	Icon   string
	Active bool
}

type mobileAdapter struct {
	enabled bool
	tabs    []MobileTab
}

// GenericIcon is used when no keyword matches a panel title.
const GenericIcon = "▣"

var iconKeywords = []struct {
	keywords []string
	icon     string
}{
	{[]string{"dice", "roll"}, "⚄"},
	{[]string{"rule", "reference", "book"}, "§"},
	{[]string{"npc", "character", "person"}, "☺"},
	{[]string{"location", "map", "city"}, "⌂"},
	{[]string{"loot", "item", "gear", "shop"}, "$"},
	{[]string{"net", "hack", "cyber"}, "⌁"},
	{[]string{"generator", "random"}, "✱"},
	{[]string{"debug", "console", "log"}, "⚙"},
	{[]string{"note", "journal"}, "✎"},
}

// IconFor infers a tab icon from title keywords.
func IconFor(title string) string {
	lower := strings.ToLower(title)
	for _, entry := range iconKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.icon
			}
		}
	}
	return GenericIcon
}

// Mobile reports whether the desk is in single-panel mode.
func (m *Manager) Mobile() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mobile.enabled
}

// MobileTabs returns the tab strip, empty outside mobile mode.
func (m *Manager) MobileTabs() []MobileTab {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MobileTab(nil), m.mobile.tabs...)
}

// ActivateTab shows the panel behind a tab. A minimized panel is restored.
func (m *Manager) ActivateTab(id entity.PanelID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.panels[id]
	if !ok || p.closing {
		return fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}
	if p.state == entity.PanelMinimized {
		p.restore()
		return nil
	}
	m.activate(p)
	return nil
}

// HandleSwipe moves to the next or previous panel on a horizontal swipe
// longer than the threshold. Swiping left goes forward. Short or mostly
// vertical swipes are ignored, as is everything outside mobile mode.
func (m *Manager) HandleSwipe(from, to entity.Point) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.mobile.enabled || !m.listening {
		return false
	}
	dx := to.X - from.X
	dy := to.Y - from.Y
	if abs(dx) < m.opts.SwipeThreshold || abs(dy) >= abs(dx) {
		return false
	}
	if dx < 0 {
		m.cycle(1)
	} else {
		m.cycle(-1)
	}
	return true
}

func (m *Manager) syncMobile() {
	narrow := m.isNarrow(m.vp)
	switch {
	case narrow && !m.mobile.enabled:
		m.enterMobile()
	case !narrow && m.mobile.enabled:
		m.leaveMobile()
	}
}

func (m *Manager) enterMobile() {
	m.mobile.enabled = true
	for _, p := range m.list() {
		p.cancelInteraction()
		p.draggable, p.resizable = false, false
	}
	target := m.active
	if target == nil || target.state == entity.PanelMinimized {
		target = m.focusFallback(nil, 0)
	}
	for _, p := range m.list() {
		p.hidden = p != target
	}
	m.rebuildTabs()
	if target != nil {
		m.activate(target)
	}
	m.log().Debug().Int("width", m.vp.Width).Msg("mobile mode on")
}

func (m *Manager) leaveMobile() {
	m.mobile.enabled = false
	m.mobile.tabs = nil
	for _, p := range m.list() {
		p.draggable, p.resizable = true, true
		p.hidden = false
	}
	m.log().Debug().Int("width", m.vp.Width).Msg("mobile mode off")
}

func (m *Manager) rebuildTabs() {
	tabs := make([]MobileTab, 0, len(m.order))
	for _, p := range m.list() {
		if p.closing {
			continue
		}
		tabs = append(tabs, MobileTab{
			ID:     p.id,
			Title:  p.title,
			Icon:   IconFor(p.title),
			Active: p == m.active,
		})
	}
	m.mobile.tabs = tabs
}

// showOnly hides every panel but p and syncs the tab buttons.
func (m *Manager) showOnly(p *Panel) {
	for _, q := range m.list() {
		q.hidden = q != p
	}
	for i := range m.mobile.tabs {
		m.mobile.tabs[i].Active = m.mobile.tabs[i].ID == p.id
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
