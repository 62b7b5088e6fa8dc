package schema

import (
	validated "github.com/mgreenw/validated"
)

// Transform post-validates an already-decoded value and may rewrite it.
// fail raises a diagnostic attributed to the value's path; the returned
// error must be propagated unchanged.
type Transform func(v any, fail func(text string) error) (any, error)

// AndThen attaches a refine step to base: base validates first, then fn
// sees the decoded value and may replace it or raise its own
// diagnostic.
func AndThen(base validated.Node, fn Transform) validated.Node {
	if base == nil || fn == nil {
		panic(&validated.SchemaError{Reason: "andThen requires a base node and a transform"})
	}
	return refineNode{base: base, fn: fn}
}

type refineNode struct {
	base validated.Node
	fn   Transform
}

func (r refineNode) Validate(ctx validated.Context) (any, error) {
	v, err := r.base.Validate(ctx)
	if err != nil {
		return nil, err
	}
	fail := func(text string) error {
		return ctx.Error(&validated.Leaf{Text: text})
	}
	return r.fn(v, fail)
}
