package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validated "github.com/mgreenw/validated"
	"github.com/mgreenw/validated/schema"
)

func TestString(t *testing.T) {
	v, err := validated.Validate(schema.String(), "ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	_, err = validated.Validate(schema.String(), 1)
	require.Error(t, err)
	assert.Equal(t, "expected a string but got a number", err.Error())
}

func TestNumber(t *testing.T) {
	v, err := validated.Validate(schema.Number(), 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = validated.Validate(schema.Number(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = validated.Validate(schema.Number(), "x")
	require.Error(t, err)
	assert.Equal(t, "expected a number but got a string", err.Error())
}

func TestBoolean(t *testing.T) {
	v, err := validated.Validate(schema.Boolean(), true)
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = validated.Validate(schema.Boolean(), nil)
	require.Error(t, err)
	assert.Equal(t, "expected a boolean but got null", err.Error())
}

func TestAny(t *testing.T) {
	v, err := validated.Validate(schema.Any(), map[string]any{"k": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": 1}, v)

	_, err = validated.Validate(schema.Any(), nil)
	require.Error(t, err)
	assert.Equal(t, "expected a value but got null", err.Error())

	_, err = validated.Validate(schema.Any(), validated.Missing)
	require.Error(t, err)
	assert.Equal(t, "expected a value but got nothing", err.Error())
}

func TestMaybe(t *testing.T) {
	v, err := validated.Validate(schema.Maybe(schema.String()), nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = validated.Validate(schema.Maybe(schema.String()), validated.Missing)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = validated.Validate(schema.Maybe(schema.String()), "x")
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = validated.Validate(schema.Maybe(schema.String()), 1)
	require.Error(t, err)
	assert.Equal(t, "expected a string but got a number", err.Error())
}

func TestIdempotence(t *testing.T) {
	s := schema.Object().
		Field("name", schema.String()).
		Field("tags", schema.Sequence(schema.String())).
		Field("note", schema.Maybe(schema.String())).
		Build()

	in := map[string]any{"name": "a", "tags": []any{"x", "y"}}
	first, err := validated.Validate(s, in)
	require.NoError(t, err)
	second, err := validated.Validate(s, first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
