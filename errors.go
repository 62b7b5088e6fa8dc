package validated

import "strings"

// Diagnostic codes (exported consts for IDE completion; they double as
// the i18n catalog keys).
const (
	CodeExpectedType      = "expected_type"
	CodeExpectedMapping   = "expected_mapping"
	CodeExpectedSequence  = "expected_sequence"
	CodeExpectedValue     = "expected_value"
	CodeExpectedEnum      = "expected_enum"
	CodeUnknownKey        = "unknown_key"
	CodeUnknownKeySuggest = "unknown_key_suggest"
	CodeAtKey             = "at_key"
	CodeAtIndex           = "at_index"
	CodeAtMissingKey      = "at_missing_key"
	CodeParseError        = "parse_error"
)

// ValidationError is the data-shape fault raised when input does not
// match a schema. Chain is ordered outermost-first: enclosing path
// frames precede the root cause. A ValidationError never accompanies a
// partial decoded value.
type ValidationError struct {
	Chain []Message
}

// Error renders the chain joined top-to-bottom, outermost context first
// and root cause last.
func (e *ValidationError) Error() string {
	sb := &strings.Builder{}
	for i, m := range e.Chain {
		if i > 0 {
			sb.WriteByte('\n')
		}
		renderMessage(sb, m, 0)
	}
	return sb.String()
}

// SchemaError reports schema misuse: a bug in how the schema was built,
// not bad input. It is delivered by panic so callers are not tempted to
// catch-and-continue as if it were a data error.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string { return "validated: schema misuse: " + e.Reason }
