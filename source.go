package validated

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/mgreenw/validated/i18n"
)

// JSONValue decodes raw JSON into the any-tree shape consumed by
// NewContext: map[string]any, []any, string, float64, bool, nil.
func JSONValue(data []byte) (any, error) {
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ValidateJSON decodes a JSON document and validates it against n.
// Malformed input is reported as a ValidationError with a parse-error
// diagnostic rather than a raw decoder error.
func ValidateJSON(n Node, data []byte) (any, error) {
	v, err := JSONValue(data)
	if err != nil {
		return nil, &ValidationError{Chain: []Message{
			&Leaf{Text: i18n.T(CodeParseError, map[string]string{"error": err.Error()})},
		}}
	}
	return Validate(n, v)
}

// YAMLValue decodes a YAML document into the any-tree shape. Mapping
// keys are normalized to strings so the same schema validates YAML and
// JSON input alike.
func YAMLValue(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

// ValidateYAML decodes a YAML document and validates it against n.
func ValidateYAML(n Node, data []byte) (any, error) {
	v, err := YAMLValue(data)
	if err != nil {
		return nil, &ValidationError{Chain: []Message{
			&Leaf{Text: i18n.T(CodeParseError, map[string]string{"error": err.Error()})},
		}}
	}
	return Validate(n, v)
}

// normalizeYAML rewrites yaml.v3 output into map[string]any/[]any trees,
// stringifying non-string mapping keys.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	default:
		return v
	}
}
