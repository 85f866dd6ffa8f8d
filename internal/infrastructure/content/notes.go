package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

const defaultNotesWrap = 60

// NotesProvider renders markdown notes. Data:
//
//	{"text": "# Markdown", "wrap": 60}
//
// or a tab per note:
//
//	{"notes": [{"title": "...", "text": "..."}]}
type NotesProvider struct {
	style string
}

// NewNotesProvider renders with the given glamour standard style; empty
// means "dark".
func NewNotesProvider(style string) *NotesProvider {
	if style == "" {
		style = "dark"
	}
	return &NotesProvider{style: style}
}

// Provide implements port.ContentProvider.
func (p *NotesProvider) Provide(_ context.Context, data map[string]any) (entity.Content, error) {
	wrap := defaultNotesWrap
	if w, ok := number(data["wrap"]); ok && w > 0 {
		wrap = w
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(p.style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return entity.Content{}, fmt.Errorf("notes renderer: %w", err)
	}

	if raw, ok := data["notes"]; ok {
		notes, ok := raw.([]any)
		if !ok {
			return entity.Content{}, errors.New("notes must be an array")
		}
		var c entity.Content
		for i, n := range notes {
			note, ok := n.(map[string]any)
			if !ok {
				return entity.Content{}, fmt.Errorf("notes[%d] must be an object", i)
			}
			title, _ := note["title"].(string)
			text, _ := note["text"].(string)
			body, err := renderer.Render(text)
			if err != nil {
				return entity.Content{}, fmt.Errorf("render notes[%d]: %w", i, err)
			}
			if title == "" {
				title = fmt.Sprintf("Note %d", i+1)
			}
			c.Tabs = append(c.Tabs, entity.ContentTab{Title: title, Content: trimRendered(body)})
		}
		return c, nil
	}

	text, _ := data["text"].(string)
	body, err := renderer.Render(text)
	if err != nil {
		return entity.Content{}, fmt.Errorf("render notes: %w", err)
	}
	return entity.Content{Markup: trimRendered(body)}, nil
}

// trimRendered drops the blank margin lines glamour puts around documents.
func trimRendered(s string) string {
	return strings.Trim(s, "\n")
}

// number reads an int from decoded JSON or a Go caller.
func number(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
