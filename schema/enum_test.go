package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validated "github.com/mgreenw/validated"
	"github.com/mgreenw/validated/schema"
)

func TestEnum(t *testing.T) {
	s := schema.Enum(42, "ok")

	v, err := validated.Validate(s, "ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	_, err = validated.Validate(s, 1)
	require.Error(t, err)
	assert.Equal(t, "expected one of 42, \"ok\" but got 1", err.Error())
}

func TestEnum_NumericRepresentations(t *testing.T) {
	s := schema.Enum(42)

	// JSON decodes numbers as float64; YAML as int
	v, err := validated.Validate(s, float64(42))
	require.NoError(t, err)
	assert.Equal(t, float64(42), v)

	v, err = validated.Validate(s, int64(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestEnum_NullAndMissing(t *testing.T) {
	s := schema.Enum("a", "b")

	_, err := validated.Validate(s, nil)
	require.Error(t, err)
	assert.Equal(t, "expected one of \"a\", \"b\" but got null", err.Error())

	_, err = validated.Validate(s, validated.Missing)
	require.Error(t, err)
	assert.Equal(t, "expected one of \"a\", \"b\" but got nothing", err.Error())
}

func TestEnum_EmptyIsSchemaMisuse(t *testing.T) {
	assert.PanicsWithError(t, "validated: schema misuse: enum requires at least one value", func() {
		schema.Enum()
	})
}
