package usecase

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

const layoutSchemaID = "https://github.com/bnema/floatdesk/layout.schema.json"

var panelStateType = reflect.TypeOf(entity.PanelState(0))

// LayoutSchema returns the JSON schema of layout export files.
func LayoutSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t != panelStateType {
				return nil
			}
			return &jsonschema.Schema{
				Type: "string",
				Enum: []any{
					entity.PanelNormal.String(),
					entity.PanelMinimized.String(),
					entity.PanelMaximized.String(),
				},
			}
		},
	}
	schema := r.Reflect(&entity.Layout{})
	schema.ID = layoutSchemaID
	schema.Title = "floatdesk layout"
	schema.Description = "Panel arrangement exported by floatdesk"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layout schema: %w", err)
	}
	return data, nil
}
