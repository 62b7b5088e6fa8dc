package validated

import "strings"

// Message is one node of a diagnostic tree. The variant set is closed:
// *Leaf, *Composite and *Alternative are the only implementations, which
// keeps the oneOf disambiguation free of open-ended type probing.
type Message interface {
	message()
}

// Leaf is a single line of diagnostic text.
type Leaf struct {
	Text string
}

// Composite is a line of diagnostic text with subordinate detail lines,
// for example a failure that carries the deeper messages it was folded
// out of when a union error was merged.
type Composite struct {
	Text     string
	Children []Message
}

// Alternative is a disjunction of diagnostics: the input matched none of
// several candidate shapes and each branch explains one of them.
type Alternative struct {
	Branches []Message
}

func (*Leaf) message()        {}
func (*Composite) message()   {}
func (*Alternative) message() {}

// Equal reports structural equality of two messages. Leaves compare by
// text; composites by text and pairwise-equal children in order;
// alternatives by pairwise-equal branches in order.
func Equal(a, b Message) bool {
	switch am := a.(type) {
	case *Leaf:
		bm, ok := b.(*Leaf)
		return ok && am.Text == bm.Text
	case *Composite:
		bm, ok := b.(*Composite)
		if !ok || am.Text != bm.Text {
			return false
		}
		return equalSlices(am.Children, bm.Children)
	case *Alternative:
		bm, ok := b.(*Alternative)
		return ok && equalSlices(am.Branches, bm.Branches)
	default:
		return false
	}
}

func equalSlices(a, b []Message) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// renderMessage writes m into sb, one line per message, indenting two
// spaces per nesting level. Alternatives render an "either:" header
// followed by their branches.
func renderMessage(sb *strings.Builder, m Message, depth int) {
	indent := strings.Repeat("  ", depth)
	switch mm := m.(type) {
	case *Leaf:
		sb.WriteString(indent)
		sb.WriteString(mm.Text)
	case *Composite:
		sb.WriteString(indent)
		sb.WriteString(mm.Text)
		for _, c := range mm.Children {
			sb.WriteByte('\n')
			renderMessage(sb, c, depth+1)
		}
	case *Alternative:
		sb.WriteString(indent)
		sb.WriteString("either:")
		for _, b := range mm.Branches {
			sb.WriteByte('\n')
			renderMessage(sb, b, depth+1)
		}
	}
}
