package schema

import (
	"encoding/json"

	validated "github.com/mgreenw/validated"
	"github.com/mgreenw/validated/i18n"
)

// expectType raises the standard type-mismatch diagnostic at ctx.
func expectType(ctx validated.Context, expected string, raw any) error {
	return ctx.Error(&validated.Leaf{Text: i18n.T(validated.CodeExpectedType, map[string]string{
		"expected": expected,
		"got":      validated.TypeName(raw),
	})})
}

// String matches string scalars.
func String() validated.Node { return stringNode{} }

type stringNode struct{}

func (stringNode) Validate(ctx validated.Context) (any, error) {
	return ctx.Unwrap(func(raw any) (any, error) {
		if s, ok := raw.(string); ok {
			return s, nil
		}
		return nil, expectType(ctx, "a string", raw)
	})
}

// Boolean matches boolean scalars.
func Boolean() validated.Node { return booleanNode{} }

type booleanNode struct{}

func (booleanNode) Validate(ctx validated.Context) (any, error) {
	return ctx.Unwrap(func(raw any) (any, error) {
		if b, ok := raw.(bool); ok {
			return b, nil
		}
		return nil, expectType(ctx, "a boolean", raw)
	})
}

// Number matches numeric scalars. The decoded value is returned
// verbatim: float64 for JSON input, int for YAML integers, and so on.
func Number() validated.Node { return numberNode{} }

type numberNode struct{}

func (numberNode) Validate(ctx validated.Context) (any, error) {
	return ctx.Unwrap(func(raw any) (any, error) {
		if isNumber(raw) {
			return raw, nil
		}
		return nil, expectType(ctx, "a number", raw)
	})
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return true
	default:
		return false
	}
}

// Any matches every present value and fails only on null or absence,
// distinguishing the two in the diagnostic.
func Any() validated.Node { return anyNode{} }

type anyNode struct{}

func (anyNode) Validate(ctx validated.Context) (any, error) {
	return ctx.Unwrap(func(raw any) (any, error) {
		if raw == nil || validated.IsMissing(raw) {
			return nil, ctx.Error(&validated.Leaf{Text: i18n.T(validated.CodeExpectedValue, map[string]string{
				"got": validated.TypeName(raw),
			})})
		}
		return raw, nil
	})
}

// Maybe matches null or absence as null, and otherwise delegates to
// elem.
func Maybe(elem validated.Node) validated.Node {
	if elem == nil {
		panic(&validated.SchemaError{Reason: "maybe requires a node"})
	}
	return maybeNode{elem: elem}
}

type maybeNode struct{ elem validated.Node }

func (m maybeNode) Validate(ctx validated.Context) (any, error) {
	raw, err := ctx.Unwrap(func(raw any) (any, error) { return raw, nil })
	if err != nil {
		return nil, err
	}
	if raw == nil || validated.IsMissing(raw) {
		return nil, nil
	}
	return m.elem.Validate(ctx)
}
