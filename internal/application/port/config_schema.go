package port

import "github.com/bnema/floatdesk/internal/domain/entity"

// ConfigSchemaProvider documents the configuration file.
type ConfigSchemaProvider interface {
	// GetSchema lists every key, grouped by section in display order.
	GetSchema() []entity.ConfigKeyInfo
}
