package schema

import (
	"strconv"

	validated "github.com/mgreenw/validated"
	"github.com/mgreenw/validated/i18n"
)

// ObjectBuilder declares the fields, defaults and unknown-key policy of
// an object node. Declaration order is retained: defaulting and the
// suggestion tie-break both follow the order fields were declared in.
type ObjectBuilder struct {
	names      []string
	fields     map[string]validated.Node
	defaults   map[string]any
	allowExtra bool
}

// Object creates a new object builder. Unknown keys are rejected unless
// AllowExtra is set.
func Object() *ObjectBuilder {
	return &ObjectBuilder{fields: map[string]validated.Node{}, defaults: map[string]any{}}
}

// Field declares a field validated by n. Redeclaring a field is schema
// misuse.
func (b *ObjectBuilder) Field(name string, n validated.Node) *ObjectBuilder {
	if n == nil {
		panic(&validated.SchemaError{Reason: "field " + strconv.Quote(name) + " requires a node"})
	}
	if _, dup := b.fields[name]; dup {
		panic(&validated.SchemaError{Reason: "field " + strconv.Quote(name) + " declared twice"})
	}
	b.names = append(b.names, name)
	b.fields[name] = n
	return b
}

// Default sets the value assigned when name is absent from the input.
// The default is copied into the result verbatim without being
// re-validated against the field's node; that trust boundary is
// deliberate.
func (b *ObjectBuilder) Default(name string, v any) *ObjectBuilder {
	if _, ok := b.fields[name]; !ok {
		panic(&validated.SchemaError{Reason: "default for undeclared field " + strconv.Quote(name)})
	}
	b.defaults[name] = v
	return b
}

// AllowExtra passes undeclared keys through unchanged and untyped
// instead of rejecting them.
func (b *ObjectBuilder) AllowExtra() *ObjectBuilder {
	b.allowExtra = true
	return b
}

// Build returns the immutable object node.
func (b *ObjectBuilder) Build() validated.Node {
	names := make([]string, len(b.names))
	copy(names, b.names)
	fields := make(map[string]validated.Node, len(b.fields))
	for k, v := range b.fields {
		fields[k] = v
	}
	defaults := make(map[string]any, len(b.defaults))
	for k, v := range b.defaults {
		defaults[k] = v
	}
	return &objectNode{names: names, fields: fields, defaults: defaults, allowExtra: b.allowExtra}
}

type objectNode struct {
	names      []string
	fields     map[string]validated.Node
	defaults   map[string]any
	allowExtra bool
}

func (o *objectNode) Validate(ctx validated.Context) (any, error) {
	out, err := ctx.BuildMapping(func(value validated.Context, key string, keyCtx validated.Context) (any, error) {
		node, declared := o.fields[key]
		if !declared {
			if o.allowExtra {
				return value.Unwrap(func(raw any) (any, error) { return raw, nil })
			}
			return nil, keyCtx.Error(o.unknownKey(key))
		}
		return node.Validate(value)
	})
	if err != nil {
		return nil, err
	}
	// Absent declared fields, in declared order: defaults win; otherwise
	// the field's node decides against the absent-value context.
	for _, name := range o.names {
		if _, present := out[name]; present {
			continue
		}
		if dv, ok := o.defaults[name]; ok {
			out[name] = dv
			continue
		}
		pv, err := o.fields[name].Validate(validated.AbsentContext(ctx, name))
		if err != nil {
			return nil, err
		}
		if !validated.IsMissing(pv) {
			out[name] = pv
		}
	}
	return out, nil
}

// unknownKey builds the unexpected-key diagnostic, attaching the
// nearest declared name when it is close enough to look like a typo.
func (o *objectNode) unknownKey(key string) validated.Message {
	if s, ok := suggest(key, o.names); ok {
		return &validated.Leaf{Text: i18n.T(validated.CodeUnknownKeySuggest, map[string]string{
			"key":        strconv.Quote(key),
			"suggestion": strconv.Quote(s),
		})}
	}
	return &validated.Leaf{Text: i18n.T(validated.CodeUnknownKey, map[string]string{
		"key": strconv.Quote(key),
	})}
}
