package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ColorField is one named palette entry.
type ColorField struct {
	Name  string
	Value string
}

// ValidatePaletteHex returns one message per entry that is not #RRGGBB, in
// the order given.
func ValidatePaletteHex(prefix string, fields ...ColorField) []string {
	var errs []string
	for _, f := range fields {
		if !IsHexColor(f.Value) {
			errs = append(errs, prefix+"."+f.Name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
