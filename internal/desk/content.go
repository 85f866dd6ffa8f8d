package desk

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/domain/entity"
)

// InlineContentType is the built-in content type whose data carries the
// markup or tab set itself.
const InlineContentType = "inline"

// ErrUnknownContentType is returned when no provider is registered for a type.
var ErrUnknownContentType = errors.New("unknown content type")

// ContentRegistry maps content-type keys to providers. Providers are resolved
// at panel creation only.
type ContentRegistry struct {
	mu        sync.RWMutex
	providers map[string]port.ContentProvider
}

// NewContentRegistry returns a registry with the inline provider registered.
func NewContentRegistry() *ContentRegistry {
	r := &ContentRegistry{providers: make(map[string]port.ContentProvider)}
	r.Register(InlineContentType, port.ContentProviderFunc(InlineContent))
	return r
}

// Register adds or replaces the provider for a content type.
func (r *ContentRegistry) Register(contentType string, provider port.ContentProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[contentType] = provider
}

// Types lists the registered content types, sorted.
func (r *ContentRegistry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.providers))
	for k := range r.providers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Provide builds content for the given type.
func (r *ContentRegistry) Provide(ctx context.Context, contentType string, data map[string]any) (entity.Content, error) {
	r.mu.RLock()
	provider, ok := r.providers[contentType]
	r.mu.RUnlock()
	if !ok {
		return entity.Content{}, fmt.Errorf("%w: %q", ErrUnknownContentType, contentType)
	}
	content, err := provider.Provide(ctx, data)
	if err != nil {
		return entity.Content{}, fmt.Errorf("provide %s content: %w", contentType, err)
	}
	return content, nil
}

// InlineContent reads content straight from its data:
// {"markup": "..."} or {"tabs": [{"title": "...", "content": "..."}]}.
func InlineContent(_ context.Context, data map[string]any) (entity.Content, error) {
	var c entity.Content
	if markup, ok := data["markup"].(string); ok {
		c.Markup = markup
	}
	rawTabs, present := data["tabs"]
	if !present || rawTabs == nil {
		return c, nil
	}
	tabs, ok := rawTabs.([]any)
	if !ok {
		return entity.Content{}, errors.New("tabs must be an array")
	}
	for i, raw := range tabs {
		tab, ok := raw.(map[string]any)
		if !ok {
			return entity.Content{}, fmt.Errorf("tabs[%d] must be an object", i)
		}
		title, _ := tab["title"].(string)
		body, _ := tab["content"].(string)
		c.Tabs = append(c.Tabs, entity.ContentTab{Title: title, Content: body})
	}
	return c, nil
}

// InlineData is the inverse of InlineContent.
func InlineData(c entity.Content) map[string]any {
	data := map[string]any{}
	if c.Markup != "" {
		data["markup"] = c.Markup
	}
	if len(c.Tabs) > 0 {
		tabs := make([]any, 0, len(c.Tabs))
		for _, t := range c.Tabs {
			tabs = append(tabs, map[string]any{"title": t.Title, "content": t.Content})
		}
		data["tabs"] = tabs
	}
	return data
}
