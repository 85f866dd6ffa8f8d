package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/floatdesk/internal/desk"
	"github.com/bnema/floatdesk/internal/domain/entity"
)

// HelpProvider shows the active key bindings and mouse gestures. It takes
// no data.
type HelpProvider struct {
	keymap desk.Keymap
}

// NewHelpProvider describes keymap.
func NewHelpProvider(keymap desk.Keymap) *HelpProvider {
	return &HelpProvider{keymap: keymap}
}

// Provide implements port.ContentProvider.
func (p *HelpProvider) Provide(context.Context, map[string]any) (entity.Content, error) {
	k := p.keymap
	var keys strings.Builder
	rows := []struct {
		what     string
		bindings []string
	}{
		{"next panel", k.Cycle},
		{"previous panel", k.CyclePrev},
		{"minimize / restore", k.MinimizeToggle},
		{"move up", k.NudgeUp},
		{"move down", k.NudgeDown},
		{"move left", k.NudgeLeft},
		{"move right", k.NudgeRight},
		{"move up (fast)", k.FastNudgeUp},
		{"move down (fast)", k.FastNudgeDown},
		{"move left (fast)", k.FastNudgeLeft},
		{"move right (fast)", k.FastNudgeRight},
	}
	for _, r := range rows {
		if len(r.bindings) == 0 {
			continue
		}
		fmt.Fprintf(&keys, "%-20s %s\n", r.what, strings.Join(r.bindings, ", "))
	}
	if k.QuickSelectPrefix != "" {
		fmt.Fprintf(&keys, "%-20s %s1 .. %s9\n", "focus panel n", k.QuickSelectPrefix, k.QuickSelectPrefix)
	}

	mouse := strings.Join([]string{
		"drag title bar        move",
		"drag right / bottom   resize",
		"drag corner           resize both",
		"_  []  x              minimize, maximize, close",
		"click tray entry      restore",
	}, "\n")

	return entity.Content{Tabs: []entity.ContentTab{
		{Title: "Keys", Content: strings.TrimRight(keys.String(), "\n")},
		{Title: "Mouse", Content: mouse},
	}}, nil
}
