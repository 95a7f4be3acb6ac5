package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxlconf/hxl/internal/hxlerr"
	"github.com/hxlconf/hxl/internal/token"
)

func Test_Tokenize_NodeHeader(t *testing.T) {
	toks, err := Tokenize("<Cube> MyCube\n")
	require.Nil(t, err)

	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}

	assert.Equal(t, []token.Kind{
		token.Delimiter, token.Identifier, token.Delimiter,
		token.Whitespace, token.Identifier, token.Newline,
	}, kinds)
}

func Test_Tokenize_LeadingFourSpacesCollapseToTab(t *testing.T) {
	toks, err := Tokenize("<A> A\n    key: 1\n")
	require.Nil(t, err)

	// the 4-space run right after the node-header newline should become a
	// single Tab token, not four Whitespace tokens.
	var tabCount, wsCount int
	for _, tok := range toks {
		switch tok.Kind {
		case token.Tab:
			tabCount++
		case token.Whitespace:
			wsCount++
		}
	}
	assert.Equal(t, 1, tabCount)
	assert.Equal(t, 2, wsCount) // the space after '>' on the header line and the single space after ':'
}

func Test_Tokenize_S8_IllegalNewlineInString(t *testing.T) {
	_, err := Tokenize("\tkey: \"Hello \n World\"\n")
	require.NotNil(t, err)
	assert.Equal(t, hxlerr.IllegalWhitespace, err.Code)
	assert.Equal(t, 1, err.Line)
}

func Test_Tokenize_TrailingComment(t *testing.T) {
	toks, err := Tokenize("<A> A # a comment\n")
	require.Nil(t, err)

	for _, tok := range toks {
		assert.NotEqual(t, "a comment", tok.Value)
	}
}

func Test_Tokenize_IllegalComment_NoSpaceBeforeHash(t *testing.T) {
	_, err := Tokenize("<A> A# a comment\n")
	require.NotNil(t, err)
	assert.Equal(t, hxlerr.IllegalWhitespace, err.Code)
}

func Test_Tokenize_IllegalComment_EmptyText(t *testing.T) {
	_, err := Tokenize("#\n")
	require.NotNil(t, err)
	assert.Equal(t, hxlerr.IllegalComment, err.Code)
}

func Test_Tokenize_Bool(t *testing.T) {
	toks, err := Tokenize("true\n")
	require.Nil(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Bool, toks[0].Kind)
}

func Test_Tokenize_Float(t *testing.T) {
	toks, err := Tokenize("8.0\n")
	require.Nil(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Float, toks[0].Kind)
	assert.Equal(t, "8.0", toks[0].Value)
}

func Test_Tokenize_ArrayPunctuators(t *testing.T) {
	toks, err := Tokenize("{ 1, 2 }\n")
	require.Nil(t, err)

	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, token.Punctuator)
}
