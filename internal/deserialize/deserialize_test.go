package deserialize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxlconf/hxl/internal/ast"
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

func Test_Deserialize_S1_Scalar(t *testing.T) {
	doc := parse(t, "<Cube> MyCube\n\tsize: 8.0\n")

	var got Node
	p := &Protocol{Handles: []ProtocolHandle{
		{NodeType: "Cube", Handle: func(n Node) { got = n }},
	}}

	errs := Deserialize(&doc, p)
	require.Empty(t, errs)
	assert.Equal(t, "MyCube", got.Name)
	assert.Equal(t, KindFloat, got.Properties["size"].Kind())
	assert.Equal(t, 8.0, got.Properties["size"].Float())
}

func Test_Deserialize_S2_ArrayOfInts(t *testing.T) {
	doc := parse(t, "<Sphere> A\n\tarr[]: { 1, 2, 3 }\n")

	var got Node
	p := &Protocol{Handles: []ProtocolHandle{
		{NodeType: "Sphere", Handle: func(n Node) { got = n }},
	}}

	require.Empty(t, Deserialize(&doc, p))
	assert.Equal(t, KindIntArray, got.Properties["arr"].Kind())
	assert.Equal(t, []int{1, 2, 3}, got.Properties["arr"].IntArray())
}

func Test_Deserialize_S3_Reference(t *testing.T) {
	doc := parse(t, "<Cube> MyCube\n\n<Cube> CubeTwo\n\tref&: MyCube\n")

	var refs []Node
	p := &Protocol{Handles: []ProtocolHandle{
		{NodeType: "Cube", Handle: func(n Node) { refs = append(refs, n) }},
	}}

	require.Empty(t, Deserialize(&doc, p))
	require.Len(t, refs, 2)
	cubeTwo := refs[1]
	assert.Equal(t, KindNodeRef, cubeTwo.Properties["ref"].Kind())
	assert.Equal(t, NodeRef{References: "MyCube"}, cubeTwo.Properties["ref"].NodeRef())
}

func Test_Deserialize_MissingHandleStopsDispatch(t *testing.T) {
	doc := parse(t, "<Cube> A\n<Sphere> B\n")

	var called bool
	p := &Protocol{Handles: []ProtocolHandle{
		{NodeType: "Cube", Handle: func(n Node) { called = true }},
	}}

	errs := Deserialize(&doc, p)
	require.Len(t, errs, 1)
	assert.Equal(t, hxlerr.CannotDeserializeNode, errs[0].Code)
	assert.Equal(t, "Missing deserializer for: Sphere", errs[0].Message)
	assert.False(t, called, "no handle should fire once coverage has a gap")
}

func Test_Deserialize_MultipleHandlesForSameTypeAllFire(t *testing.T) {
	doc := parse(t, "<Cube> A\n")

	var calls int
	p := &Protocol{Handles: []ProtocolHandle{
		{NodeType: "Cube", Handle: func(n Node) { calls++ }},
		{NodeType: "Cube", Handle: func(n Node) { calls++ }},
	}}

	require.Empty(t, Deserialize(&doc, p))
	assert.Equal(t, 2, calls)
}

func Test_Deserialize_BoolAndString(t *testing.T) {
	doc := parse(t, "<A> A\n\tflag: true\n\tname: \"hi\"\n")

	var got Node
	p := &Protocol{Handles: []ProtocolHandle{
		{NodeType: "A", Handle: func(n Node) { got = n }},
	}}

	require.Empty(t, Deserialize(&doc, p))
	assert.Equal(t, true, got.Properties["flag"].Bool())
	assert.Equal(t, "hi", got.Properties["name"].String())
}
