package validated

import (
	"sort"
	"strconv"

	"github.com/mgreenw/validated/i18n"
)

// Context pairs the value currently being validated with the diagnostic
// path that leads to it. Node implementations traverse exclusively
// through this contract and never touch the underlying representation
// directly. The method set is closed: the tree-value context, the key
// context and the absent-value context are the only implementations.
type Context interface {
	// BuildMapping iterates the keyed entries of the underlying value in
	// sorted key order, handing each entry's value context and key context
	// to visit, and collects the results into a fresh mapping. It fails
	// when the underlying value is not mapping-shaped.
	BuildMapping(visit func(value Context, key string, keyCtx Context) (any, error)) (map[string]any, error)
	// BuildSequence is the ordered analogue of BuildMapping.
	BuildSequence(visit func(elem Context, index int) (any, error)) ([]any, error)
	// Unwrap hands the raw underlying value to check, which asserts its
	// shape and may raise through the context's Error.
	Unwrap(check func(raw any) (any, error)) (any, error)
	// Error raises a *ValidationError for msg at the current path,
	// prefixing every ancestor's locally attached frame.
	Error(msg Message) error

	frame() Message
	augment(msg Message) Message
	parentContext() Context
}

// missingType marks "no value present", as opposed to an explicit null.
type missingType struct{}

// Missing is the placeholder the absent-value context hands to Unwrap
// checks. Nodes that tolerate absence (for example Maybe) treat it like
// null; everything else reports it as "nothing".
var Missing missingType

// IsMissing reports whether v is the absence placeholder.
func IsMissing(v any) bool {
	_, ok := v.(missingType)
	return ok
}

// TypeName names v the way diagnostics phrase it: "a string", "a
// number", "a mapping", "null", "nothing", and so on.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case missingType:
		return "nothing"
	case bool:
		return "a boolean"
	case string:
		return "a string"
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "a number"
	case map[string]any:
		return "a mapping"
	case []any:
		return "an array"
	default:
		return "an unsupported value"
	}
}

// NewContext wraps an in-memory tree value (map[string]any, []any,
// scalars, nil) as the root Context of one validation call. Contexts are
// created fresh per call and must not be shared across calls.
func NewContext(v any) Context {
	return &valueContext{value: v}
}

// AbsentContext derives a context representing the declared key being
// absent from parent's value. It exists to probe whether a field's node
// tolerates absence without any real input value.
func AbsentContext(parent Context, key string) Context {
	return &absentContext{parent: parent, key: key}
}

// raise builds the diagnostic chain for msg at ctx: the context's
// augmentation hook is applied to msg, then every ancestor frame is
// prefixed, outermost-first.
func raise(ctx Context, msg Message) error {
	chain := []Message{ctx.augment(msg)}
	for c := ctx; c != nil; c = c.parentContext() {
		if f := c.frame(); f != nil {
			chain = append([]Message{f}, chain...)
		}
	}
	return &ValidationError{Chain: chain}
}

// ---- tree-value context ----

type valueContext struct {
	parent Context
	value  any
	local  Message // path frame; nil at the root
}

func (c *valueContext) frame() Message              { return c.local }
func (c *valueContext) augment(msg Message) Message { return msg }
func (c *valueContext) parentContext() Context      { return c.parent }

func (c *valueContext) Error(msg Message) error { return raise(c, msg) }

func (c *valueContext) BuildMapping(visit func(value Context, key string, keyCtx Context) (any, error)) (map[string]any, error) {
	m, ok := c.value.(map[string]any)
	if !ok {
		return nil, c.Error(&Leaf{Text: i18n.T(CodeExpectedMapping, map[string]string{"got": TypeName(c.value)})})
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]any, len(m))
	for _, k := range keys {
		child := &valueContext{
			parent: c,
			value:  m[k],
			local:  &Leaf{Text: i18n.T(CodeAtKey, map[string]string{"key": strconv.Quote(k)})},
		}
		kc := &keyContext{parent: c, key: k}
		v, err := visit(child, k, kc)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func (c *valueContext) BuildSequence(visit func(elem Context, index int) (any, error)) ([]any, error) {
	s, ok := c.value.([]any)
	if !ok {
		return nil, c.Error(&Leaf{Text: i18n.T(CodeExpectedSequence, map[string]string{"got": TypeName(c.value)})})
	}
	out := make([]any, 0, len(s))
	for i, ev := range s {
		child := &valueContext{
			parent: c,
			value:  ev,
			local:  &Leaf{Text: i18n.T(CodeAtIndex, map[string]string{"index": strconv.Itoa(i)})},
		}
		v, err := visit(child, i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *valueContext) Unwrap(check func(raw any) (any, error)) (any, error) {
	return check(c.value)
}

// ---- key context ----

// keyContext addresses a mapping key itself rather than its value, so a
// node can attach unknown-key complaints to the key. It carries no frame
// of its own; the raised message already names the key.
type keyContext struct {
	parent Context
	key    string
}

func (c *keyContext) frame() Message              { return nil }
func (c *keyContext) augment(msg Message) Message { return msg }
func (c *keyContext) parentContext() Context      { return c.parent }

func (c *keyContext) Error(msg Message) error { return raise(c, msg) }

func (c *keyContext) BuildMapping(func(value Context, key string, keyCtx Context) (any, error)) (map[string]any, error) {
	return nil, c.Error(&Leaf{Text: i18n.T(CodeExpectedMapping, map[string]string{"got": TypeName(c.key)})})
}

func (c *keyContext) BuildSequence(func(elem Context, index int) (any, error)) ([]any, error) {
	return nil, c.Error(&Leaf{Text: i18n.T(CodeExpectedSequence, map[string]string{"got": TypeName(c.key)})})
}

func (c *keyContext) Unwrap(check func(raw any) (any, error)) (any, error) {
	return check(c.key)
}

// ---- absent-value context ----

type absentContext struct {
	parent Context
	key    string
}

// frame suppresses the missing-key framing when an ancestor already
// carries one, so nested probes do not repeat it.
func (c *absentContext) frame() Message {
	for p := c.parent; p != nil; p = p.parentContext() {
		if _, ok := p.(*absentContext); ok {
			return nil
		}
	}
	return &Leaf{Text: i18n.T(CodeAtMissingKey, map[string]string{"key": strconv.Quote(c.key)})}
}

func (c *absentContext) augment(msg Message) Message {
	if c.parent != nil {
		return c.parent.augment(msg)
	}
	return msg
}

func (c *absentContext) parentContext() Context { return c.parent }

func (c *absentContext) Error(msg Message) error { return raise(c, msg) }

func (c *absentContext) BuildMapping(func(value Context, key string, keyCtx Context) (any, error)) (map[string]any, error) {
	return nil, c.Error(&Leaf{Text: i18n.T(CodeExpectedMapping, map[string]string{"got": TypeName(Missing)})})
}

func (c *absentContext) BuildSequence(func(elem Context, index int) (any, error)) ([]any, error) {
	return nil, c.Error(&Leaf{Text: i18n.T(CodeExpectedSequence, map[string]string{"got": TypeName(Missing)})})
}

// Unwrap hands the absence placeholder to check so that nodes tolerant
// of absence can succeed with no real value present.
func (c *absentContext) Unwrap(check func(raw any) (any, error)) (any, error) {
	return check(Missing)
}
