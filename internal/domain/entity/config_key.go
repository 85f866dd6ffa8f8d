package entity

import "strings"

// ConfigKeyInfo documents one configuration key for `floatdesk config keys`.
type ConfigKeyInfo struct {
	Key         string   `json:"key"` // dotted path, e.g. "layout.header_height"
	Type        string   `json:"type"`
	Default     string   `json:"default"`
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"` // allowed values of a string enum
	Range       string   `json:"range,omitempty"`  // numeric bound such as ">=0" or "0-100"
	Section     string   `json:"section"`
}

// Constraint describes the accepted values, or "" when any value of the
// type goes.
func (k ConfigKeyInfo) Constraint() string {
	switch {
	case len(k.Values) > 0:
		return "one of " + strings.Join(k.Values, ", ")
	case k.Range != "":
		return "range " + k.Range
	default:
		return ""
	}
}
