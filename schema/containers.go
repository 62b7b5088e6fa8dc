package schema

import (
	validated "github.com/mgreenw/validated"
)

// Mapping matches mapping-shaped values whose every entry validates
// against elem. The first failing entry aborts with its key on the
// diagnostic path.
func Mapping(elem validated.Node) validated.Node {
	if elem == nil {
		panic(&validated.SchemaError{Reason: "mapping requires a value node"})
	}
	return mappingNode{elem: elem}
}

type mappingNode struct{ elem validated.Node }

func (m mappingNode) Validate(ctx validated.Context) (any, error) {
	out, err := ctx.BuildMapping(func(value validated.Context, key string, keyCtx validated.Context) (any, error) {
		return m.elem.Validate(value)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Sequence matches array-shaped values whose every element validates
// against elem. The first failing element aborts with its index on the
// diagnostic path.
func Sequence(elem validated.Node) validated.Node {
	if elem == nil {
		panic(&validated.SchemaError{Reason: "sequence requires an element node"})
	}
	return sequenceNode{elem: elem}
}

type sequenceNode struct{ elem validated.Node }

func (s sequenceNode) Validate(ctx validated.Context) (any, error) {
	out, err := ctx.BuildSequence(func(elem validated.Context, index int) (any, error) {
		return s.elem.Validate(elem)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
