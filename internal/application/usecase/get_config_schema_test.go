package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatdesk/internal/application/port/mocks"
	"github.com/bnema/floatdesk/internal/application/usecase"
	"github.com/bnema/floatdesk/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "layout.header_height", Type: "int", Default: "60", Range: ">=0", Section: "Layout"},
		{Key: "layout.fit_max_width", Type: "int", Default: "600", Range: ">=1", Section: "Layout"},
		{Key: "mobile.breakpoint", Type: "int", Default: "768", Section: "Mobile"},
		{
			Key:     "logging.level",
			Type:    "string",
			Default: "info",
			Values:  []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section: "Logging",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		input    usecase.GetConfigSchemaInput
		wantKeys []string
	}{
		{
			name:     "no filter returns every key",
			wantKeys: []string{"layout.header_height", "layout.fit_max_width", "mobile.breakpoint", "logging.level"},
		},
		{
			name:     "section is case insensitive",
			input:    usecase.GetConfigSchemaInput{Section: "layout"},
			wantKeys: []string{"layout.header_height", "layout.fit_max_width"},
		},
		{
			name:     "prefix narrows further",
			input:    usecase.GetConfigSchemaInput{Section: "Layout", Prefix: "layout.fit"},
			wantKeys: []string{"layout.fit_max_width"},
		},
		{
			name:  "prefix without matches is empty, not an error",
			input: usecase.GetConfigSchemaInput{Prefix: "stacking."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewMockConfigSchemaProvider(t)
			provider.EXPECT().GetSchema().Return(schemaKeys())

			out, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(context.Background(), tt.input)
			require.NoError(t, err)

			got := make([]string, 0, len(out.Keys))
			for _, k := range out.Keys {
				got = append(got, k.Key)
			}
			assert.ElementsMatch(t, tt.wantKeys, got)
			assert.Equal(t, []string{"Layout", "Mobile", "Logging"}, out.Sections)
		})
	}
}

func TestGetConfigSchemaUseCase_UnknownSection(t *testing.T) {
	provider := mocks.NewMockConfigSchemaProvider(t)
	provider.EXPECT().GetSchema().Return(schemaKeys())

	out, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(context.Background(),
		usecase.GetConfigSchemaInput{Section: "webkit"})
	assert.Nil(t, out)
	require.ErrorIs(t, err, usecase.ErrUnknownConfigSection)
	assert.Contains(t, err.Error(), "Layout, Mobile, Logging")
}

func TestConfigKeyInfo_Constraint(t *testing.T) {
	keys := schemaKeys()
	assert.Equal(t, "range >=0", keys[0].Constraint())
	assert.Equal(t, "", keys[2].Constraint())
	assert.Equal(t, "one of trace, debug, info, warn, error, fatal", keys[3].Constraint())
}
