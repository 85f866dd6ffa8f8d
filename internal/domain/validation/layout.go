package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/bnema/floatdesk/internal/domain/entity"
)

// DefaultMaxPanels caps how many panels a layout may carry.
const DefaultMaxPanels = 100

// ErrInvalidLayout is the sentinel wrapped by every layout validation failure.
var ErrInvalidLayout = errors.New("invalid layout")

// ErrUnsupportedLayoutVersion is returned for layouts written by a newer format.
var ErrUnsupportedLayoutVersion = errors.New("unsupported layout version")

// LayoutError lists every problem found in an untrusted layout.
type LayoutError struct {
	Problems []string
}

func (e *LayoutError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid layout: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid layout:\n  - %s", strings.Join(e.Problems, "\n  - "))
}

func (e *LayoutError) Unwrap() error {
	return ErrInvalidLayout
}

// ParseLayout validates raw layout JSON and decodes it.
// The input is treated as untrusted: nothing is returned unless every check
// passes, so callers never apply a partially valid layout.
func ParseLayout(data []byte, maxPanels int) (*entity.Layout, error) {
	if maxPanels <= 0 {
		maxPanels = DefaultMaxPanels
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LayoutError{Problems: []string{"not valid JSON: " + err.Error()}}
	}

	if err := ValidateLayoutValue(raw, maxPanels); err != nil {
		return nil, err
	}

	var layout entity.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, &LayoutError{Problems: []string{err.Error()}}
	}
	if layout.Version == 0 {
		layout.Version = entity.LayoutVersion
	}
	return &layout, nil
}

// ValidateLayoutValue checks a generically decoded JSON value.
func ValidateLayoutValue(raw any, maxPanels int) error {
	root, ok := raw.(map[string]any)
	if !ok {
		return &LayoutError{Problems: []string{"layout must be an object"}}
	}

	if v, present := root["version"]; present {
		version, isInt := asInt(v)
		if !isInt {
			return &LayoutError{Problems: []string{"version must be an integer"}}
		}
		if version > entity.LayoutVersion {
			return fmt.Errorf("%w: %d (supported: %d)", ErrUnsupportedLayoutVersion, version, entity.LayoutVersion)
		}
	}

	panelsRaw, present := root["panels"]
	if !present {
		return &LayoutError{Problems: []string{"panels is missing"}}
	}
	panels, ok := panelsRaw.([]any)
	if !ok {
		return &LayoutError{Problems: []string{"panels must be an array"}}
	}
	if len(panels) > maxPanels {
		return &LayoutError{Problems: []string{
			fmt.Sprintf("too many panels: %d (max %d)", len(panels), maxPanels),
		}}
	}

	var problems []string
	for i, p := range panels {
		problems = append(problems, validatePanelValue(fmt.Sprintf("panels[%d]", i), p)...)
	}
	if len(problems) > 0 {
		return &LayoutError{Problems: problems}
	}
	return nil
}

func validatePanelValue(prefix string, raw any) []string {
	panel, ok := raw.(map[string]any)
	if !ok {
		return []string{prefix + " must be an object"}
	}

	var problems []string
	title, present := panel["title"]
	if !present {
		problems = append(problems, prefix+".title is missing")
	} else if _, isString := title.(string); !isString {
		problems = append(problems, prefix+".title must be a string")
	}

	problems = append(problems, optionalString(prefix, panel, "id")...)
	problems = append(problems, optionalString(prefix, panel, "contentType")...)
	problems = append(problems, optionalPoint(prefix+".position", panel["position"])...)
	problems = append(problems, optionalSize(prefix+".size", panel["size"])...)

	if v, present := panel["state"]; present {
		name, isString := v.(string)
		if !isString {
			problems = append(problems, prefix+".state must be a string")
		} else if _, err := entity.ParsePanelState(name); err != nil {
			problems = append(problems, fmt.Sprintf("%s.state %q is not a known state", prefix, name))
		}
	}

	if v, present := panel["activeTab"]; present {
		if n, isInt := asInt(v); !isInt || n < 0 {
			problems = append(problems, prefix+".activeTab must be a non-negative integer")
		}
	}

	if v, present := panel["contentData"]; present && v != nil {
		if _, isObject := v.(map[string]any); !isObject {
			problems = append(problems, prefix+".contentData must be an object")
		}
	}

	if v, present := panel["preMinimizeState"]; present && v != nil {
		pre, isObject := v.(map[string]any)
		if !isObject {
			problems = append(problems, prefix+".preMinimizeState must be an object")
		} else {
			problems = append(problems, optionalPoint(prefix+".preMinimizeState.position", pre["position"])...)
			problems = append(problems, optionalSize(prefix+".preMinimizeState.size", pre["size"])...)
			if s, present := pre["previousState"]; present {
				name, isString := s.(string)
				if !isString {
					problems = append(problems, prefix+".preMinimizeState.previousState must be a string")
				} else if _, err := entity.ParsePanelState(name); err != nil {
					problems = append(problems, fmt.Sprintf("%s.preMinimizeState.previousState %q is not a known state", prefix, name))
				}
			}
		}
	}

	return problems
}

func optionalString(prefix string, obj map[string]any, key string) []string {
	v, present := obj[key]
	if !present || v == nil {
		return nil
	}
	if _, ok := v.(string); !ok {
		return []string{prefix + "." + key + " must be a string"}
	}
	return nil
}

func optionalPoint(field string, raw any) []string {
	if raw == nil {
		return nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return []string{field + " must be an object"}
	}
	var problems []string
	for _, key := range []string{"x", "y"} {
		if _, isInt := asInt(obj[key]); !isInt {
			problems = append(problems, field+"."+key+" must be an integer")
		}
	}
	return problems
}

func optionalSize(field string, raw any) []string {
	if raw == nil {
		return nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return []string{field + " must be an object"}
	}
	var problems []string
	for _, key := range []string{"width", "height"} {
		if n, isInt := asInt(obj[key]); !isInt || n <= 0 {
			problems = append(problems, field+"."+key+" must be a positive integer")
		}
	}
	return problems
}

// asInt accepts JSON numbers that hold an integral value.
func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
