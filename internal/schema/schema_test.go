package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		p    ParamSchema
		kind Kind
	}{
		{"bool", ParamSchema{Name: "flag", TypeTag: "bool"}, KindBool},
		{"address", ParamSchema{Name: "to", TypeTag: "address"}, KindPassThrough},
		{"string", ParamSchema{Name: "label", TypeTag: "string"}, KindPassThrough},
		{"uint256", ParamSchema{Name: "amount", TypeTag: "uint256"}, KindPassThrough},
		{"int128", ParamSchema{Name: "delta", TypeTag: "int128"}, KindPassThrough},
		{"dynamic bytes", ParamSchema{Name: "data", TypeTag: "bytes"}, KindBytes},
		{"fixed bytes32", ParamSchema{Name: "hash", TypeTag: "bytes32"}, KindPassThrough},
		{"uint array", ParamSchema{Name: "ids", TypeTag: "uint256[]"}, KindArray},
		{"bool array", ParamSchema{Name: "flags", TypeTag: "bool[]"}, KindArray},
		{
			"tuple",
			ParamSchema{Name: "order", TypeTag: "tuple", Fields: []ParamSchema{{Name: "to", TypeTag: "address"}}},
			KindStructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, Classify(tt.p).Kind)
		})
	}
}

func TestClassifyArrayElem(t *testing.T) {
	c := Classify(ParamSchema{Name: "ids", TypeTag: "uint256[]"})
	require.Equal(t, KindArray, c.Kind)
	require.NotNil(t, c.Elem)
	assert.Equal(t, "uint256", c.Elem.TypeTag)
}

// An array of structures carries both the "[]" suffix and a field list; the
// suffix wins, and the element schema keeps the fields.
func TestClassifyArrayOfStructures(t *testing.T) {
	fields := []ParamSchema{
		{Name: "to", TypeTag: "address"},
		{Name: "amount", TypeTag: "uint256"},
	}
	c := Classify(ParamSchema{Name: "orders", TypeTag: "tuple[]", Fields: fields})

	require.Equal(t, KindArray, c.Kind)
	require.NotNil(t, c.Elem)
	assert.Equal(t, "tuple", c.Elem.TypeTag)
	assert.Equal(t, fields, c.Elem.Fields)
	assert.Equal(t, KindStructure, Classify(*c.Elem).Kind)
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("uint256"))
	assert.True(t, IsNumeric("uint8"))
	assert.True(t, IsNumeric("int128"))
	assert.False(t, IsNumeric("address"))
	assert.False(t, IsNumeric("bytes32"))
	assert.False(t, IsNumeric("bool"))
}
