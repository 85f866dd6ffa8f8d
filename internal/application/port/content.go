package port

import (
	"context"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// ContentProvider fills a panel body.
// Providers are resolved by content-type key when a panel is created and are
// inert afterwards. data is the panel's persisted content data; providers may
// add keys to it so the same content can be rebuilt on restore.
type ContentProvider interface {
	Provide(ctx context.Context, data map[string]any) (entity.Content, error)
}

// ContentProviderFunc adapts a function to ContentProvider.
type ContentProviderFunc func(ctx context.Context, data map[string]any) (entity.Content, error)

// Provide implements ContentProvider.
func (f ContentProviderFunc) Provide(ctx context.Context, data map[string]any) (entity.Content, error) {
	return f(ctx, data)
}
