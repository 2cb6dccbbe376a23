package schema

import "encoding/json"

// ValueKind tags a coerced Value.
type ValueKind int

const (
	ValueOpaque  ValueKind = iota // string/address/bytes text, passed through verbatim
	ValueBool
	ValueNumeric // decimal text, never a machine number
	ValueSequence
	ValueStructure
)

// Value is one coerced parameter: the output of Coerce and the element type
// of Marshal's result. Exactly one of the payload fields is meaningful for a
// given Kind.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Text   string           // Opaque and Numeric
	Seq    []Value          // Sequence, element order significant
	Fields map[string]Value // Structure, order irrelevant

	// Degraded marks an Opaque value that was supposed to be a structured
	// literal but failed to parse. The raw text is forwarded as-is so the
	// server can report the real problem.
	Degraded bool
}

// Bool/Numeric/Opaque/Sequence/Structure are Value constructors.

func BoolValue(b bool) Value      { return Value{Kind: ValueBool, Bool: b} }
func NumericValue(s string) Value { return Value{Kind: ValueNumeric, Text: s} }
func OpaqueValue(s string) Value  { return Value{Kind: ValueOpaque, Text: s} }

func SequenceValue(elems []Value) Value { return Value{Kind: ValueSequence, Seq: elems} }

func StructureValue(fields map[string]Value) Value {
	return Value{Kind: ValueStructure, Fields: fields}
}

func degradedValue(raw string) Value {
	return Value{Kind: ValueOpaque, Text: raw, Degraded: true}
}

// MarshalJSON encodes a Value in the server's params wire format: booleans
// as JSON booleans, numerics as JSON strings (precision), opaque text as
// strings, sequences as arrays, structures as objects.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueBool:
		return json.Marshal(v.Bool)
	case ValueSequence:
		if v.Seq == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Seq)
	case ValueStructure:
		if v.Fields == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Fields)
	default:
		return json.Marshal(v.Text)
	}
}
