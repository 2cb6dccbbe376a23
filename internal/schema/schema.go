package schema

import "strings"

// ParamSchema describes one function, constructor or struct-field parameter
// as the server reports it. TypeTag follows the ABI type grammar ("bool",
// "address", "uint256", "bytes32", "string[]", "tuple", ...). Fields is
// non-empty only for struct (tuple) parameters.
type ParamSchema struct {
	Name    string        `json:"name"`
	TypeTag string        `json:"param_type"`
	Fields  []ParamSchema `json:"components,omitempty"`
}

// Kind is the resolved classification of a ParamSchema. Compute it once with
// Classify and switch on it instead of re-inspecting the type string.
type Kind int

const (
	KindPassThrough Kind = iota // address, string, uintN, intN, bytesN
	KindBool
	KindBytes // dynamic "bytes" exactly — opaque hex text, not numeric
	KindArray
	KindStructure
)

// Classification is the result of classifying one parameter. For arrays,
// Elem is the schema of a single element; for an array of structures the
// element schema keeps the parent's field list.
type Classification struct {
	Kind Kind
	Elem *ParamSchema
}

// Classify resolves a schema to its encoding rule.
//
// The array check runs before the structure check so that "tuple[]" (which
// carries both a "[]" suffix and a components list) is an array of
// structures, not a single structure.
func Classify(p ParamSchema) Classification {
	if base, ok := strings.CutSuffix(p.TypeTag, "[]"); ok {
		elem := ParamSchema{Name: p.Name, TypeTag: base, Fields: p.Fields}
		return Classification{Kind: KindArray, Elem: &elem}
	}
	if len(p.Fields) > 0 {
		return Classification{Kind: KindStructure}
	}
	switch {
	case p.TypeTag == "bool":
		return Classification{Kind: KindBool}
	case p.TypeTag == "bytes":
		return Classification{Kind: KindBytes}
	default:
		return Classification{Kind: KindPassThrough}
	}
}

// IsNumeric reports whether a type tag is an integer type. Numeric inputs
// stay textual end to end so arbitrary-width values never lose precision.
func IsNumeric(typeTag string) bool {
	return strings.HasPrefix(typeTag, "uint") || strings.HasPrefix(typeTag, "int")
}
