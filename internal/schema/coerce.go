package schema

import (
	"encoding/json"
	"strings"
)

// Coerce turns one raw text input into a typed Value for the given schema.
// It is total: no input ever produces an error. A structured literal that
// fails to parse falls back to the raw text, marked Degraded, so submission
// can proceed and the server can report the precise failure.
func Coerce(p ParamSchema, raw string) Value {
	if raw == "" {
		return emptyDefault(p)
	}

	c := Classify(p)
	switch c.Kind {
	case KindBool:
		// Anything not recognized as true is false. Not a validating
		// parser — carried over from the original behavior.
		return BoolValue(strings.EqualFold(strings.TrimSpace(raw), "true"))

	case KindArray:
		var elems []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &elems); err != nil {
			return degradedValue(raw)
		}
		seq := make([]Value, len(elems))
		for i, e := range elems {
			seq[i] = Coerce(*c.Elem, literalText(e))
		}
		return SequenceValue(seq)

	case KindStructure:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(raw), &obj); err != nil {
			return degradedValue(raw)
		}
		fields := make(map[string]Value, len(p.Fields))
		for _, f := range p.Fields {
			// A field missing from the literal gets the empty default;
			// literal keys with no matching schema field are ignored.
			fields[f.Name] = Coerce(f, literalText(obj[f.Name]))
		}
		return StructureValue(fields)

	default: // KindBytes, KindPassThrough
		if IsNumeric(p.TypeTag) {
			return NumericValue(raw)
		}
		return OpaqueValue(raw)
	}
}

// Marshal walks the schemas in order, looks up each parameter's raw input by
// name (missing keys read as empty) and coerces it. The result order matches
// the schema order exactly — these are positional call arguments. Pure, no
// I/O.
func Marshal(schemas []ParamSchema, inputs map[string]string) []Value {
	out := make([]Value, 0, len(schemas))
	for _, p := range schemas {
		out = append(out, Coerce(p, inputs[p.Name]))
	}
	return out
}

// emptyDefault applies the default-on-empty rule: bools become false,
// numerics become "0", everything else passes through as empty text.
// Empty short-circuits before any structural parsing. The numeric rule is
// keyed to the classification, not the raw type tag — "uint256[]" is an
// array, not a numeric, and defaults to empty text like any other
// non-scalar.
func emptyDefault(p ParamSchema) Value {
	switch Classify(p).Kind {
	case KindBool:
		return BoolValue(false)
	case KindPassThrough:
		if IsNumeric(p.TypeTag) {
			return NumericValue("0")
		}
		return OpaqueValue("")
	default:
		return OpaqueValue("")
	}
}

// literalText renders one parsed literal element back to the raw text the
// coercer expects: strings lose their quotes, everything else (numbers,
// bools, nested arrays/objects) keeps its JSON spelling. nil (a missing
// struct field) reads as empty.
func literalText(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
