package schema

import (
	"errors"

	validated "github.com/mgreenw/validated"
)

// OneOf tries the alternatives in declared order against the identical
// input; the first success wins outright. When every alternative fails,
// the failures are merged into the single most informative diagnostic
// instead of a pile of unrelated whole-traversal traces.
func OneOf(alternatives ...validated.Node) validated.Node {
	if len(alternatives) == 0 {
		panic(&validated.SchemaError{Reason: "oneOf requires at least one alternative"})
	}
	for _, n := range alternatives {
		if n == nil {
			panic(&validated.SchemaError{Reason: "oneOf alternative is nil"})
		}
	}
	alts := make([]validated.Node, len(alternatives))
	copy(alts, alternatives)
	return oneOfNode{alts: alts}
}

type oneOfNode struct{ alts []validated.Node }

func (o oneOfNode) Validate(ctx validated.Context) (any, error) {
	chains := make([][]validated.Message, 0, len(o.alts))
	for _, alt := range o.alts {
		v, err := alt.Validate(ctx)
		if err == nil {
			return v, nil
		}
		var ve *validated.ValidationError
		if !errors.As(err, &ve) {
			return nil, err
		}
		chains = append(chains, ve.Chain)
	}
	return nil, mergeFailures(chains)
}

// mergeFailures disambiguates one failure chain per alternative (each
// ordered outermost-first) into a single diagnostic:
//
//  1. chains are flipped innermost-first and nested alternatives at the
//     failure position are exploded into one candidate per branch
//  2. candidates below the maximum branching weight are pruned; a
//     failure that drilled into more structure beats a shallow one
//  3. the survivors' longest shared outermost prefix becomes the common
//     context, and the deduplicated remainders become the branches of
//     one Alternative message scoped to the divergence point
func mergeFailures(chains [][]validated.Message) error {
	cands := make([][]validated.Message, 0, len(chains))
	for _, ch := range chains {
		if len(ch) == 0 {
			continue
		}
		cands = append(cands, explode(reversed(ch))...)
	}
	if len(cands) == 0 {
		return &validated.ValidationError{Chain: nil}
	}

	max := 0
	for _, c := range cands {
		if w := weight(c[0]); w > max {
			max = w
		}
	}
	kept := cands[:0]
	for _, c := range cands {
		if weight(c[0]) == max {
			kept = append(kept, c)
		}
	}
	if len(kept) == 1 {
		return &validated.ValidationError{Chain: reversed(kept[0])}
	}

	outer := make([][]validated.Message, len(kept))
	for i, c := range kept {
		outer[i] = reversed(c)
	}
	prefix := sharedPrefix(outer)

	var branches []validated.Message
	for _, ch := range outer {
		rem := ch[len(prefix):]
		if len(rem) == 0 {
			continue
		}
		b := foldChain(rem)
		if !containsEqual(branches, b) {
			branches = append(branches, b)
		}
	}

	chain := append([]validated.Message{}, prefix...)
	switch len(branches) {
	case 0:
		// every survivor was identical; the prefix is the whole story
	case 1:
		chain = append(chain, branches[0])
	default:
		chain = append(chain, &validated.Alternative{Branches: branches})
	}
	return &validated.ValidationError{Chain: chain}
}

// explode flattens a candidate whose failure position is itself an
// alternative (a nested oneOf that failed at the same spot) into one
// candidate per branch, each keeping the same outer suffix.
func explode(cand []validated.Message) [][]validated.Message {
	alt, ok := cand[0].(*validated.Alternative)
	if !ok || len(alt.Branches) == 0 {
		return [][]validated.Message{cand}
	}
	var out [][]validated.Message
	for _, b := range alt.Branches {
		nc := append([]validated.Message{b}, cand[1:]...)
		out = append(out, explode(nc)...)
	}
	return out
}

// weight is the branching factor of a candidate's failure message: the
// structure it carries after folding, or 1 for a plain leaf.
func weight(m validated.Message) int {
	if c, ok := m.(*validated.Composite); ok && len(c.Children) > 0 {
		return len(c.Children)
	}
	return 1
}

// sharedPrefix returns the longest prefix every chain starts with under
// positional structural equality.
func sharedPrefix(chains [][]validated.Message) []validated.Message {
	if len(chains) == 0 {
		return nil
	}
	prefix := chains[0]
	for _, ch := range chains[1:] {
		n := 0
		for n < len(prefix) && n < len(ch) && validated.Equal(prefix[n], ch[n]) {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix
}

// foldChain collapses a stripped remainder (outermost-first) into one
// message: deeper messages become children of the outermost, so a
// branch that drilled further keeps its structure — and its weight —
// when an enclosing oneOf explodes it again.
func foldChain(rem []validated.Message) validated.Message {
	if len(rem) == 1 {
		return rem[0]
	}
	switch head := rem[0].(type) {
	case *validated.Leaf:
		return &validated.Composite{Text: head.Text, Children: []validated.Message{foldChain(rem[1:])}}
	case *validated.Composite:
		children := append([]validated.Message{}, head.Children...)
		children = append(children, foldChain(rem[1:]))
		return &validated.Composite{Text: head.Text, Children: children}
	default:
		// alternatives only ever sit innermost, so a multi-message
		// remainder cannot start with one
		return rem[0]
	}
}

func reversed(ch []validated.Message) []validated.Message {
	out := make([]validated.Message, len(ch))
	for i, m := range ch {
		out[len(ch)-1-i] = m
	}
	return out
}

func containsEqual(ms []validated.Message, m validated.Message) bool {
	for _, x := range ms {
		if validated.Equal(x, m) {
			return true
		}
	}
	return false
}
