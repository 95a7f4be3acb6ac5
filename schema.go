package hxl

import (
	"github.com/hxlconf/hxl/internal/datatype"
	"github.com/hxlconf/hxl/internal/schema"
)

// Schema, SchemaNodeType, and SchemaNodeProperty are aliased from
// internal/schema so the Schema Validator stage and its callers share one
// concrete type.
type Schema = schema.Schema
type SchemaNodeType = schema.SchemaNodeType
type SchemaNodeProperty = schema.SchemaNodeProperty

// Structure describes whether a SchemaNodeProperty expects a single value or
// an array of values.
type Structure = datatype.Structure

const (
	Single = datatype.Single
	Array  = datatype.Array
)

// DataType is the closed set of value types a property can hold.
type DataType = datatype.DataType

const (
	TypeBool    = datatype.Bool
	TypeInt     = datatype.Int
	TypeFloat   = datatype.Float
	TypeString  = datatype.String
	TypeNodeRef = datatype.NodeRef
)
