// Package datatype holds the small closed enum of value types that flows
// through every stage of the HXL pipeline, from the tokenizer's inference of
// a property's type up through the schema and the deserializer.
package datatype

// DataType is the type of a single HXL property value.
type DataType int

const (
	Bool DataType = iota
	Int
	Float
	String
	NodeRef
)

func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case NodeRef:
		return "NodeRef"
	default:
		return "Unknown"
	}
}

// Structure is whether a schema-declared property accepts a single value or
// an array of them.
type Structure int

const (
	Single Structure = iota
	Array
)

func (s Structure) String() string {
	if s == Array {
		return "Array"
	}
	return "Single"
}
