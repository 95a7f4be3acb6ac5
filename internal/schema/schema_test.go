package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxlconf/hxl/internal/ast"
	"github.com/hxlconf/hxl/internal/datatype"
	"github.com/hxlconf/hxl/internal/hxlerr"
	"github.com/hxlconf/hxl/internal/lexer"
	"github.com/hxlconf/hxl/internal/parser"
)

func parse(t *testing.T, source string) ast.Document {
	t.Helper()
	toks, lexErr := lexer.Tokenize(source)
	require.Nil(t, lexErr)
	doc, parseErr := parser.Parse(toks, strings.Split(source, "\n"))
	require.Nil(t, parseErr)
	return doc
}

func Test_Validate_S6_MissingRequired(t *testing.T) {
	doc := parse(t, "<Sphere> A\n")
	s := &Schema{
		Types: map[string]SchemaNodeType{
			"Sphere": {
				Name: "Sphere",
				Properties: map[string]SchemaNodeProperty{
					"required": {Name: "required", DataType: datatype.Int, Required: true},
				},
			},
		},
	}

	errs := Validate(&doc, s)
	require.Len(t, errs, 1)
	assert.Equal(t, hxlerr.RequiredPropertyNotFound, errs[0].Code)
	assert.Equal(t, "Node A is missing required property: required", errs[0].Message)
}

func Test_Validate_UnknownNodeType(t *testing.T) {
	doc := parse(t, "<Cube> A\n")
	s := &Schema{Types: map[string]SchemaNodeType{}}

	errs := Validate(&doc, s)
	require.Len(t, errs, 1)
	assert.Equal(t, hxlerr.UnknownNodeType, errs[0].Code)
	assert.Equal(t, "Node type not declared in schema: Cube", errs[0].Message)
}

func Test_Validate_UnknownProperty(t *testing.T) {
	doc := parse(t, "<Sphere> A\n\tunknown: 10\n\trequired: 10\n")
	s := &Schema{
		Types: map[string]SchemaNodeType{
			"Sphere": {
				Name: "Sphere",
				Properties: map[string]SchemaNodeProperty{
					"required": {Name: "required", DataType: datatype.Int, Required: true},
				},
			},
		},
	}

	errs := Validate(&doc, s)
	require.Len(t, errs, 1)
	assert.Equal(t, hxlerr.UnknownProperty, errs[0].Code)
	assert.Equal(t, "Node A has an unknown property: unknown", errs[0].Message)
}

func Test_Validate_ArrayStructureMismatch(t *testing.T) {
	doc := parse(t, "<A> A\n\tsingle[]: { 1, 2, 3 }\n")
	s := &Schema{
		Types: map[string]SchemaNodeType{
			"A": {
				Name: "A",
				Properties: map[string]SchemaNodeProperty{
					"single": {Name: "single", DataType: datatype.Int, Structure: datatype.Single},
				},
			},
		},
	}

	errs := Validate(&doc, s)
	require.Len(t, errs, 1)
	assert.Equal(t, hxlerr.IllegalDataType, errs[0].Code)
	assert.Equal(t, "Property not declared as array: single", errs[0].Message)
}

func Test_Validate_ArrayAndSingleValuesPass(t *testing.T) {
	doc := parse(t, "<A> A\n\tarr[]: { 1, 2, 3 }\n\tsingle: 10\n")
	s := &Schema{
		Types: map[string]SchemaNodeType{
			"A": {
				Name: "A",
				Properties: map[string]SchemaNodeProperty{
					"arr":    {Name: "arr", DataType: datatype.Int, Structure: datatype.Array},
					"single": {Name: "single", DataType: datatype.Int},
				},
			},
		},
	}

	assert.Empty(t, Validate(&doc, s))
}

func Test_Validate_SingleElementArrayIsPermissive(t *testing.T) {
	// A Single-declared property written via `{ v }` has len(values) == 1,
	// indistinguishable from a plain scalar at this layer, so it must not be
	// flagged (spec §9's documented ambiguity).
	doc := parse(t, "<A> A\n\tsingle[]: { 1 }\n")
	s := &Schema{
		Types: map[string]SchemaNodeType{
			"A": {
				Name: "A",
				Properties: map[string]SchemaNodeProperty{
					"single": {Name: "single", DataType: datatype.Int, Structure: datatype.Single},
				},
			},
		},
	}

	assert.Empty(t, Validate(&doc, s))
}
