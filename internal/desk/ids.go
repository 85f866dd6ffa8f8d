package desk

import (
	"github.com/google/uuid"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// IDGenerator produces panel ids.
type IDGenerator func() entity.PanelID

// NewIDGenerator returns a generator of short random panel ids.
func NewIDGenerator() IDGenerator {
	return func() entity.PanelID {
		return entity.PanelID("panel-" + uuid.NewString()[:8])
	}
}
