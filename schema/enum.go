package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	validated "github.com/mgreenw/validated"
	"github.com/mgreenw/validated/i18n"
)

// Enum matches a value equal to one entry of a fixed ordered set of
// scalars. Numeric entries compare by value across int, int64 and
// float64. The failure diagnostic lists the full allowed set.
func Enum(values ...any) validated.Node {
	if len(values) == 0 {
		panic(&validated.SchemaError{Reason: "enum requires at least one value"})
	}
	vs := make([]any, len(values))
	copy(vs, values)
	return enumNode{values: vs, allowed: renderScalars(vs)}
}

type enumNode struct {
	values  []any
	allowed string
}

func (e enumNode) Validate(ctx validated.Context) (any, error) {
	return ctx.Unwrap(func(raw any) (any, error) {
		for _, v := range e.values {
			if scalarEqual(v, raw) {
				return raw, nil
			}
		}
		return nil, ctx.Error(&validated.Leaf{Text: i18n.T(validated.CodeExpectedEnum, map[string]string{
			"allowed": e.allowed,
			"got":     renderScalar(raw),
		})})
	})
}

// scalarEqual compares scalars, bridging the numeric representations
// different decoders produce.
func scalarEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	switch bv := b.(type) {
	case string:
		av, ok := a.(string)
		return ok && av == bv
	case bool:
		av, ok := a.(bool)
		return ok && av == bv
	case nil:
		return a == nil
	default:
		return false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// renderScalar prints a scalar in the stable textual form used by enum
// diagnostics: strings quoted, numbers bare, null/nothing spelled out.
func renderScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(t)
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case json.Number:
		return t.String()
	case map[string]any, []any:
		return validated.TypeName(t)
	default:
		if validated.IsMissing(v) {
			return "nothing"
		}
		if f, ok := toFloat(v); ok {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return fmt.Sprintf("%v", v)
	}
}

func renderScalars(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = renderScalar(v)
	}
	return strings.Join(parts, ", ")
}
