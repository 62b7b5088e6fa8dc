package validated_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	validated "github.com/mgreenw/validated"
)

func TestEqual_Leaf(t *testing.T) {
	assert.True(t, validated.Equal(&validated.Leaf{Text: "a"}, &validated.Leaf{Text: "a"}))
	assert.False(t, validated.Equal(&validated.Leaf{Text: "a"}, &validated.Leaf{Text: "b"}))
	assert.False(t, validated.Equal(&validated.Leaf{Text: "a"}, &validated.Composite{Text: "a"}))
}

func TestEqual_Composite(t *testing.T) {
	a := &validated.Composite{Text: "ctx", Children: []validated.Message{&validated.Leaf{Text: "x"}}}
	b := &validated.Composite{Text: "ctx", Children: []validated.Message{&validated.Leaf{Text: "x"}}}
	c := &validated.Composite{Text: "ctx", Children: []validated.Message{&validated.Leaf{Text: "y"}}}
	d := &validated.Composite{Text: "ctx"}

	assert.True(t, validated.Equal(a, b))
	assert.False(t, validated.Equal(a, c))
	assert.False(t, validated.Equal(a, d))
}

func TestEqual_Alternative(t *testing.T) {
	a := &validated.Alternative{Branches: []validated.Message{&validated.Leaf{Text: "x"}, &validated.Leaf{Text: "y"}}}
	b := &validated.Alternative{Branches: []validated.Message{&validated.Leaf{Text: "x"}, &validated.Leaf{Text: "y"}}}
	c := &validated.Alternative{Branches: []validated.Message{&validated.Leaf{Text: "y"}, &validated.Leaf{Text: "x"}}}

	assert.True(t, validated.Equal(a, b))
	assert.False(t, validated.Equal(a, c), "branch order is significant")
}

func TestValidationError_Render(t *testing.T) {
	err := &validated.ValidationError{Chain: []validated.Message{
		&validated.Leaf{Text: `while validating key "a"`},
		&validated.Alternative{Branches: []validated.Message{
			&validated.Leaf{Text: "expected a number but got a boolean"},
			&validated.Composite{Text: `while validating key "b"`, Children: []validated.Message{
				&validated.Leaf{Text: "expected a string but got null"},
			}},
		}},
	}}

	want := `while validating key "a"
either:
  expected a number but got a boolean
  while validating key "b"
    expected a string but got null`
	assert.Equal(t, want, err.Error())
}
