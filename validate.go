package validated

// Node is one schema rule. Nodes compose into a tree mirroring the
// expected data shape; the tree is immutable after construction (except
// for Ref's single assignment) and may be shared by concurrent
// validations.
//
// Validate returns the decoded, defaulted value or a *ValidationError.
// Any other error kind passes through unmodified. Precondition faults
// such as validating through an unset ref panic with *SchemaError.
type Node interface {
	Validate(ctx Context) (any, error)
}

// Validate checks v against the schema n and returns the decoded value.
// It constructs a fresh tree-value Context over v; the context never
// outlives this call.
func Validate(n Node, v any) (any, error) {
	if n == nil {
		panic(&SchemaError{Reason: "nil schema node"})
	}
	return n.Validate(NewContext(v))
}
