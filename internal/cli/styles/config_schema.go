package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// ConfigSchemaRenderer prints the config key reference.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render draws one box per section, sections in the order they first appear
// in keys.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	var order []string
	bySection := make(map[string][]entity.ConfigKeyInfo)
	for _, k := range keys {
		if _, seen := bySection[k.Section]; !seen {
			order = append(order, k.Section)
		}
		bySection[k.Section] = append(bySection[k.Section], k)
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n\n", icon, r.theme.Title.Render("Config keys"),
		r.theme.Subtle.Render(fmt.Sprintf("%d keys", len(keys))))
	for _, section := range order {
		b.WriteString(r.renderSection(section, bySection[section]))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderJSON renders the keys as indented JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal config keys: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	rows := make([]string, 0, len(keys)+1)
	rows = append(rows, r.theme.Highlight.Render(name))
	for _, k := range keys {
		rows = append(rows, r.renderKey(k))
	}
	return r.theme.Box.PaddingTop(0).Render(strings.Join(rows, "\n"))
}

func (r *ConfigSchemaRenderer) renderKey(k entity.ConfigKeyInfo) string {
	def := k.Default
	if def == "" {
		def = `""`
	}
	head := fmt.Sprintf("%s  %s  %s",
		r.theme.Normal.Bold(true).Render(k.Key),
		r.theme.Subtle.Render(k.Type),
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(def),
	)
	out := head + "\n  " + r.theme.Subtle.Render(k.Description)
	if c := k.Constraint(); c != "" {
		out += "\n  " + r.theme.Normal.Render(c)
	}
	return out
}
