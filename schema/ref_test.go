package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validated "github.com/mgreenw/validated"
	"github.com/mgreenw/validated/schema"
)

func TestRef_RecursiveSchema(t *testing.T) {
	node := schema.Ref()
	node.Set(schema.Object().
		Field("value", schema.Number()).
		Field("children", schema.Maybe(schema.Sequence(node))).
		Build())

	in := map[string]any{
		"value": 1.0,
		"children": []any{
			map[string]any{"value": 2.0},
			map[string]any{
				"value":    3.0,
				"children": []any{map[string]any{"value": 4.0}},
			},
		},
	}
	v, err := validated.Validate(node, in)
	require.NoError(t, err)

	out, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1.0, out["value"])
	children := out["children"].([]any)
	require.Len(t, children, 2)
	assert.Nil(t, children[0].(map[string]any)["children"], "leaf nodes resolve children to null")
}

func TestRef_FailureCarriesFullPath(t *testing.T) {
	node := schema.Ref()
	node.Set(schema.Object().
		Field("value", schema.Number()).
		Field("children", schema.Maybe(schema.Sequence(node))).
		Build())

	_, err := validated.Validate(node, map[string]any{
		"value":    1.0,
		"children": []any{map[string]any{"value": "x"}},
	})
	require.Error(t, err)
	want := `while validating key "children"
while validating index 0
while validating key "value"
expected a number but got a string`
	assert.Equal(t, want, err.Error())
}

func TestRef_UnsetIsSchemaMisuse(t *testing.T) {
	r := schema.Ref()
	assert.PanicsWithError(t, "validated: schema misuse: validating through an unset ref", func() {
		_, _ = validated.Validate(r, "x")
	})
}

func TestRef_SecondSetIsSchemaMisuse(t *testing.T) {
	r := schema.Ref()
	r.Set(schema.String())
	assert.PanicsWithError(t, "validated: schema misuse: ref assigned twice", func() {
		r.Set(schema.Number())
	})
}
