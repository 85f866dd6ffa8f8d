package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/floatdesk/internal/application/port"
	"github.com/bnema/floatdesk/internal/domain/entity"
)

// ErrUnknownConfigSection is returned when a section filter matches nothing.
var ErrUnknownConfigSection = errors.New("unknown config section")

// GetConfigSchemaUseCase lists the documented configuration keys.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{provider: provider}
}

// GetConfigSchemaInput narrows the listing. Empty fields match everything.
type GetConfigSchemaInput struct {
	Section string // case-insensitive section name, e.g. "keyboard"
	Prefix  string // dotted key prefix, e.g. "layout.fit"
}

// GetConfigSchemaOutput holds the matching keys in provider order.
type GetConfigSchemaOutput struct {
	Keys     []entity.ConfigKeyInfo
	Sections []string
}

// Execute filters the provider's keys by section and prefix.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	out := &GetConfigSchemaOutput{Keys: make([]entity.ConfigKeyInfo, 0, len(all))}
	sectionKnown := input.Section == ""
	seen := make(map[string]bool)
	for _, k := range all {
		if !seen[k.Section] {
			seen[k.Section] = true
			out.Sections = append(out.Sections, k.Section)
		}
		if input.Section != "" && !strings.EqualFold(k.Section, input.Section) {
			continue
		}
		sectionKnown = true
		if !strings.HasPrefix(k.Key, input.Prefix) {
			continue
		}
		out.Keys = append(out.Keys, k)
	}
	if !sectionKnown {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownConfigSection, input.Section, strings.Join(out.Sections, ", "))
	}
	return out, nil
}
