package validation

import (
	"regexp"
	"strings"
)

var keyNameRE = regexp.MustCompile(`^([a-z0-9]|f[0-9]{1,2}|tab|enter|space|esc|up|down|left|right|home|end|pgup|pgdown|` + "`" + `|\[|\]|,|\.|-|=)$`)

var modifierNames = map[string]struct{}{
	"ctrl":  {},
	"alt":   {},
	"shift": {},
}

// ValidateKeyBinding checks a key binding such as "alt+shift+up".
// Modifiers come first, each at most once, followed by exactly one key name.
func ValidateKeyBinding(field, value string) []string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return []string{field + " cannot be empty"}
	}

	parts := strings.Split(value, "+")
	keyName := parts[len(parts)-1]
	seen := make(map[string]bool, len(parts))

	var errs []string
	for _, mod := range parts[:len(parts)-1] {
		if _, ok := modifierNames[mod]; !ok {
			errs = append(errs, field+": unknown modifier "+quote(mod))
			continue
		}
		if seen[mod] {
			errs = append(errs, field+": modifier "+quote(mod)+" repeated")
		}
		seen[mod] = true
	}
	if !keyNameRE.MatchString(keyName) {
		errs = append(errs, field+": unknown key "+quote(keyName))
	}
	return errs
}

// ValidateKeyBindings validates every binding in a list.
func ValidateKeyBindings(field string, values []string) []string {
	if len(values) == 0 {
		return []string{field + " must have at least one binding"}
	}
	var errs []string
	for _, v := range values {
		errs = append(errs, ValidateKeyBinding(field, v)...)
	}
	return errs
}

func quote(s string) string {
	return `"` + s + `"`
}
