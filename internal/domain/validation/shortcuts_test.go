package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateKeyBinding(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"alt+m", nil},
		{"ctrl+shift+up", nil},
		{"  Alt+F12 ", nil},
		{"alt+`", nil},
		{"", []string{"keys.x cannot be empty"}},
		{"super+m", []string{`keys.x: unknown modifier "super"`}},
		{"alt+alt+m", []string{`keys.x: modifier "alt" repeated`}},
		{"alt+banana", []string{`keys.x: unknown key "banana"`}},
		{"alt+", []string{`keys.x: unknown key ""`}},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateKeyBinding("keys.x", tt.value))
		})
	}
}

func TestValidateKeyBindings(t *testing.T) {
	assert.Equal(t, []string{"keys.fit must have at least one binding"}, ValidateKeyBindings("keys.fit", nil))
	assert.Nil(t, ValidateKeyBindings("keys.fit", []string{"alt+f", "f2"}))
	assert.Len(t, ValidateKeyBindings("keys.fit", []string{"hyper+f", "alt+zz"}), 2)
}

func TestValidatePaletteHex(t *testing.T) {
	assert.True(t, IsHexColor("#1a2B3c"))
	assert.False(t, IsHexColor("1a2b3c"))
	assert.False(t, IsHexColor("#abc"))

	assert.Empty(t, ValidatePaletteHex("dark",
		ColorField{Name: "background", Value: "#000000"},
		ColorField{Name: "text", Value: "#FFFFFF"},
	))

	errs := ValidatePaletteHex("light",
		ColorField{Name: "background", Value: "#000000"},
		ColorField{Name: "surface", Value: "red"},
		ColorField{Name: "accent", Value: "#00ff00"},
		ColorField{Name: "border", Value: "#33"},
	)
	assert.Equal(t, []string{
		"light.surface must be a hex color like #RRGGBB",
		"light.border must be a hex color like #RRGGBB",
	}, errs)
}
