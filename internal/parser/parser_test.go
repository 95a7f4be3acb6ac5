package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxlconf/hxl/internal/datatype"
	"github.com/hxlconf/hxl/internal/hxlerr"
	"github.com/hxlconf/hxl/internal/lexer"
)

func Test_Parse_S1_ScalarProperty(t *testing.T) {
	toks, lexErr := lexer.Tokenize("<Cube> MyCube\n\tsize: 8.0\n")
	require.Nil(t, lexErr)

	doc, err := Parse(toks, strings.Split("<Cube> MyCube\n\tsize: 8.0\n", "\n"))
	require.Nil(t, err)
	require.Len(t, doc.Nodes, 1)

	n := doc.Nodes[0]
	assert.Equal(t, "Cube", n.Type)
	assert.Equal(t, "MyCube", n.Name)
	require.Len(t, n.Properties, 1)
	assert.Equal(t, "size", n.Properties[0].Name)
	assert.Equal(t, []string{"8.0"}, n.Properties[0].Values)
	assert.Equal(t, datatype.Float, n.Properties[0].DataType)
}

func Test_Parse_S2_ArrayOfInts(t *testing.T) {
	source := "<Sphere> A\n\tarr[]: { 1, 2, 3 }\n"
	toks, lexErr := lexer.Tokenize(source)
	require.Nil(t, lexErr)

	doc, err := Parse(toks, strings.Split(source, "\n"))
	require.Nil(t, err)
	require.Len(t, doc.Nodes, 1)
	require.Len(t, doc.Nodes[0].Properties, 1)

	p := doc.Nodes[0].Properties[0]
	assert.Equal(t, []string{"1", "2", "3"}, p.Values)
	assert.Equal(t, datatype.Int, p.DataType)
}

func Test_Parse_S3_Reference(t *testing.T) {
	source := "<Cube> MyCube\n\n<Cube> CubeTwo\n\tref&: MyCube\n"
	toks, lexErr := lexer.Tokenize(source)
	require.Nil(t, lexErr)

	doc, err := Parse(toks, strings.Split(source, "\n"))
	require.Nil(t, err)
	require.Len(t, doc.Nodes, 2)

	p, ok := doc.Nodes[1].Property("ref")
	require.True(t, ok)
	assert.Equal(t, datatype.NodeRef, p.DataType)
	assert.Equal(t, []string{"MyCube"}, p.Values)
}

func Test_Parse_S4_Inheritance(t *testing.T) {
	source := "<Cube> MyCube\n\tsize: 8.0\n<Cube> CubeTwo <= MyCube\n"
	toks, lexErr := lexer.Tokenize(source)
	require.Nil(t, lexErr)

	doc, err := Parse(toks, strings.Split(source, "\n"))
	require.Nil(t, err)
	require.Len(t, doc.Nodes, 2)
	require.NotNil(t, doc.Nodes[1].Inheritance)
	assert.Equal(t, "MyCube", doc.Nodes[1].Inheritance.From)
}

func Test_Parse_S7_WhitespaceBeforeColon(t *testing.T) {
	source := "<NodeType> A\n\tkey : B\n"
	toks, lexErr := lexer.Tokenize(source)
	require.Nil(t, lexErr)

	_, err := Parse(toks, strings.Split(source, "\n"))
	require.NotNil(t, err)
	assert.Equal(t, hxlerr.UnexpectedToken, err.Code)
	assert.Equal(t, 2, err.Line)
}

func Test_Parse_Empty(t *testing.T) {
	_, err := Parse(nil, nil)
	require.NotNil(t, err)
	assert.Equal(t, hxlerr.Empty, err.Code)
}

func Test_Parse_MissingTrailingNewline(t *testing.T) {
	source := "<A> A"
	toks, lexErr := lexer.Tokenize(source)
	require.Nil(t, lexErr)

	_, err := Parse(toks, strings.Split(source, "\n"))
	require.NotNil(t, err)
	assert.Equal(t, hxlerr.InvalidEOF, err.Code)
}

func Test_Parse_ArrayBracesWithoutArraySpecializer(t *testing.T) {
	source := "<A> A\n\tkey: { 1, 2 }\n"
	toks, lexErr := lexer.Tokenize(source)
	require.Nil(t, lexErr)

	_, err := Parse(toks, strings.Split(source, "\n"))
	require.NotNil(t, err)
	assert.Equal(t, hxlerr.IllegalDataType, err.Code)
}

func Test_Parse_StringValue(t *testing.T) {
	source := "<A> A\n\tname: \"hello\"\n"
	toks, lexErr := lexer.Tokenize(source)
	require.Nil(t, lexErr)

	doc, err := Parse(toks, strings.Split(source, "\n"))
	require.Nil(t, err)
	p, ok := doc.Nodes[0].Property("name")
	require.True(t, ok)
	assert.Equal(t, datatype.String, p.DataType)
	assert.Equal(t, "hello", p.Values[0])
}
