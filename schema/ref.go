package schema

import (
	validated "github.com/mgreenw/validated"
)

// RefNode is a single-assignment indirection enabling recursive and
// forward-referenced schemas. It must be assigned exactly once, before
// any validation reaches it; violating either rule is schema misuse.
type RefNode struct {
	target validated.Node
}

// Ref creates an unassigned reference node.
func Ref() *RefNode { return &RefNode{} }

// Set assigns the referenced node. Calling Set twice panics with
// *SchemaError.
func (r *RefNode) Set(n validated.Node) {
	if n == nil {
		panic(&validated.SchemaError{Reason: "ref set to nil node"})
	}
	if r.target != nil {
		panic(&validated.SchemaError{Reason: "ref assigned twice"})
	}
	r.target = n
}

func (r *RefNode) Validate(ctx validated.Context) (any, error) {
	if r.target == nil {
		panic(&validated.SchemaError{Reason: "validating through an unset ref"})
	}
	return r.target.Validate(ctx)
}
