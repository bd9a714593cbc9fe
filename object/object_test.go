package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zephyrlang/zephyr/object"
)

func TestEcho_StringIsQuotedButOtherValuesArePlain(t *testing.T) {
	assert.Equal(t, `"hello"`, object.Echo(&object.String{Value: "hello"}))
	assert.Equal(t, "42", object.Echo(&object.Integer{Value: 42}))
	assert.Equal(t, "null", object.Echo(&object.Null{}))
}

func TestEcho_EscapesMatchQuotedRepr(t *testing.T) {
	s := &object.String{Value: "a\nb\tc\"d"}
	assert.Equal(t, s.QuotedRepr(), object.Echo(s))
}

func TestList_InspectQuotesNestedStringsConsistentlyWithEcho(t *testing.T) {
	list := &object.List{Elements: []object.Value{
		&object.String{Value: "a"},
		&object.Integer{Value: 1},
	}}
	assert.Equal(t, `["a", 1]`, list.Inspect())
}
