// Package validated checks untyped, already-parsed tree data (mappings,
// arrays, scalars) against a declaratively built schema.
//
// It provides:
//
//   - A Node contract for schema rules and a Context abstraction that
//     decouples traversal and path accumulation from the concrete value
//     representation
//   - A stable diagnostic model via Message/ValidationError (leaf,
//     composite, alternative) with structural equality
//   - Entry points that validate in-memory values as well as raw JSON
//     and YAML documents
//
// Design policy:
//   - Keep only public contracts in the root package; node constructors
//     live under schema/ and diagnostic texts under i18n/.
//   - Validation is first-failure and all-or-nothing; a failed call never
//     yields a partial value.
//   - Schema misuse (for example validating through an unset ref) is a
//     programming fault reported by panicking with *SchemaError, never a
//     *ValidationError.
//
// Typical usage:
//
//	s := schema.Object().
//		Field("name", schema.String()).
//		Field("port", schema.Number()).
//		Default("port", 8080).
//		Build()
//	v, err := validated.ValidateJSON(s, data)
package validated
