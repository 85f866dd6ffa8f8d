package desk

import (
	"slices"
	"strconv"
	"strings"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// Keymap binds the desk shortcuts. Keys use bubbletea's key string form,
// for example "alt+shift+up".
type Keymap struct {
	Cycle          []string
	CyclePrev      []string
	MinimizeToggle []string
	NudgeUp        []string
	NudgeDown      []string
	NudgeLeft      []string
	NudgeRight     []string
	FastNudgeUp    []string
	FastNudgeDown  []string
	FastNudgeLeft  []string
	FastNudgeRight []string
	// QuickSelectPrefix is prepended to the digits 1-9 ("alt+" gives "alt+1").
	QuickSelectPrefix string
}

// DefaultKeymap returns the default shortcut bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Cycle:             []string{"alt+tab", "alt+n"},
		CyclePrev:         []string{"alt+shift+tab", "alt+p"},
		MinimizeToggle:    []string{"alt+m"},
		NudgeUp:           []string{"alt+up"},
		NudgeDown:         []string{"alt+down"},
		NudgeLeft:         []string{"alt+left"},
		NudgeRight:        []string{"alt+right"},
		FastNudgeUp:       []string{"alt+shift+up"},
		FastNudgeDown:     []string{"alt+shift+down"},
		FastNudgeLeft:     []string{"alt+shift+left"},
		FastNudgeRight:    []string{"alt+shift+right"},
		QuickSelectPrefix: "alt+",
	}
}

func (k Keymap) empty() bool {
	return len(k.Cycle) == 0 && len(k.CyclePrev) == 0 && len(k.MinimizeToggle) == 0 &&
		len(k.NudgeUp) == 0 && len(k.NudgeDown) == 0 && len(k.NudgeLeft) == 0 && len(k.NudgeRight) == 0 &&
		len(k.FastNudgeUp) == 0 && len(k.FastNudgeDown) == 0 && len(k.FastNudgeLeft) == 0 &&
		len(k.FastNudgeRight) == 0 && k.QuickSelectPrefix == ""
}

// Action is what a key press resolved to.
type Action int

const (
	ActionNone Action = iota
	ActionCycleNext
	ActionCyclePrev
	ActionMinimizeToggle
	ActionNudge
	ActionQuickSelect
)

// KeyAction is a resolved shortcut with its arguments.
type KeyAction struct {
	Action Action
	DX, DY int
	// Index is zero-based for quick select.
	Index int
}

// Resolve maps a key string to a desk action.
func (k Keymap) Resolve(key string, step, fastStep int) KeyAction {
	key = strings.ToLower(key)
	switch {
	case slices.Contains(k.Cycle, key):
		return KeyAction{Action: ActionCycleNext}
	case slices.Contains(k.CyclePrev, key):
		return KeyAction{Action: ActionCyclePrev}
	case slices.Contains(k.MinimizeToggle, key):
		return KeyAction{Action: ActionMinimizeToggle}
	case slices.Contains(k.NudgeUp, key):
		return KeyAction{Action: ActionNudge, DY: -step}
	case slices.Contains(k.NudgeDown, key):
		return KeyAction{Action: ActionNudge, DY: step}
	case slices.Contains(k.NudgeLeft, key):
		return KeyAction{Action: ActionNudge, DX: -step}
	case slices.Contains(k.NudgeRight, key):
		return KeyAction{Action: ActionNudge, DX: step}
	case slices.Contains(k.FastNudgeUp, key):
		return KeyAction{Action: ActionNudge, DY: -fastStep}
	case slices.Contains(k.FastNudgeDown, key):
		return KeyAction{Action: ActionNudge, DY: fastStep}
	case slices.Contains(k.FastNudgeLeft, key):
		return KeyAction{Action: ActionNudge, DX: -fastStep}
	case slices.Contains(k.FastNudgeRight, key):
		return KeyAction{Action: ActionNudge, DX: fastStep}
	}

	if k.QuickSelectPrefix != "" && strings.HasPrefix(key, k.QuickSelectPrefix) {
		digit := strings.TrimPrefix(key, k.QuickSelectPrefix)
		if n, err := strconv.Atoi(digit); err == nil && len(digit) == 1 && n >= 1 && n <= 9 {
			return KeyAction{Action: ActionQuickSelect, Index: n - 1}
		}
	}
	return KeyAction{}
}

// HandleKey runs the shortcut bound to key. It returns false when the key
// is not a desk shortcut or the listeners are not installed.
func (m *Manager) HandleKey(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.listening {
		return false
	}
	act := m.opts.Keymap.Resolve(key, m.opts.NudgeStep, m.opts.FastNudgeStep)
	switch act.Action {
	case ActionCycleNext:
		m.cycle(1)
	case ActionCyclePrev:
		m.cycle(-1)
	case ActionMinimizeToggle:
		m.toggleMinimizeFocused()
	case ActionNudge:
		if p := m.active; p != nil && !m.mobile.enabled {
			p.nudge(act.DX, act.DY)
		}
	case ActionQuickSelect:
		m.quickSelect(act.Index)
	default:
		return false
	}
	return true
}

func (m *Manager) toggleMinimizeFocused() {
	if p := m.active; p != nil {
		p.minimize()
		return
	}
	// Nothing focused: bring back the newest minimized panel.
	for i := len(m.order) - 1; i >= 0; i-- {
		if p := m.panels[m.order[i]]; p.state == entity.PanelMinimized {
			p.restore()
			return
		}
	}
}

// quickSelect focuses the index-th panel in creation order, restoring it if
// it is minimized.
func (m *Manager) quickSelect(index int) {
	if index < 0 || index >= len(m.order) {
		return
	}
	p := m.panels[m.order[index]]
	if p.closing {
		return
	}
	if p.state == entity.PanelMinimized {
		p.restore()
		return
	}
	m.activate(p)
}
