// Package parser implements the HXL Parser (spec §4.2): a line-driven state
// machine that consumes the Tokenizer's output and builds a Document. The
// shape (a cursor over a flat token stream, single Error on first anomaly,
// position-carrying diagnostics) follows internal/tunascript/parser.go, but
// HXL's grammar is a simple line recognizer rather than an operator-precedence
// expression grammar, so the machinery here is a plain context/transition
// switch instead of a Pratt parser.
package parser

import (
	"fmt"

	"github.com/hxlconf/hxl/internal/ast"
	"github.com/hxlconf/hxl/internal/datatype"
	"github.com/hxlconf/hxl/internal/hxlerr"
	"github.com/hxlconf/hxl/internal/token"
)

type context int

const (
	ctxStartOfLine context = iota
	ctxNodeType
	ctxAfterNodeType
	ctxAfterNodeName
	ctxInheritance
	ctxAfterInheritance
	ctxPropertyKey
	ctxPropertyValueAwaitWS
	ctxPropertyValue
	ctxArrayExpectsValue
	ctxGotValue
	ctxEndedArray
)

type specialization int

const (
	specNone specialization = iota
	specArray
	specRef
)

type buildingProperty struct {
	name      string
	spec      specialization
	values    []string
	dataType  datatype.DataType
	typeIsSet bool
}

// Parse runs the Parser stage over a Tokenizer output.
func Parse(tokens []token.Token, lines []string) (ast.Document, *hxlerr.Error) {
	if len(tokens) == 0 {
		return ast.Document{}, &hxlerr.Error{Code: hxlerr.Empty, Message: "Source is empty."}
	}
	if tokens[len(tokens)-1].Kind != token.Newline {
		return ast.Document{}, &hxlerr.Error{Code: hxlerr.InvalidEOF, Message: "Source must end with an empty line."}
	}

	p := &parseState{tokens: tokens, lines: lines, context: ctxStartOfLine, curNodeIdx: -1}
	if err := p.run(); err != nil {
		return ast.Document{}, err
	}
	return p.doc, nil
}

type parseState struct {
	tokens []token.Token
	lines  []string
	doc    ast.Document

	context context

	pendingType    string
	pendingName    string
	pendingFrom    string
	pendingHasFrom bool

	curNodeIdx int
	curProp    *buildingProperty
	inArray    bool
}

func (p *parseState) sourceLine(n int) string {
	if n-1 < 0 || n-1 >= len(p.lines) {
		return ""
	}
	return p.lines[n-1]
}

func (p *parseState) unexpected(tok token.Token) *hxlerr.Error {
	return &hxlerr.Error{
		Code:       hxlerr.UnexpectedToken,
		Message:    fmt.Sprintf("[Line %d, Col %d] Unexpected token: %s", tok.Pos.Line, tok.Pos.Col, tok.Text()),
		Line:       int(tok.Pos.Line),
		Col:        int(tok.Pos.Col),
		SourceLine: p.sourceLine(int(tok.Pos.Line)),
	}
}

func (p *parseState) illegalDataType(tok token.Token) *hxlerr.Error {
	return &hxlerr.Error{
		Code:       hxlerr.IllegalDataType,
		Message:    fmt.Sprintf("[Line %d, Col %d] Illegal data type: '{' requires an array-specialized property", tok.Pos.Line, tok.Pos.Col),
		Line:       int(tok.Pos.Line),
		Col:        int(tok.Pos.Col),
		SourceLine: p.sourceLine(int(tok.Pos.Line)),
	}
}

func isScalarValueKind(k token.Kind) bool {
	switch k {
	case token.Int, token.Float, token.Bool, token.StringLiteral:
		return true
	}
	return false
}

func scalarDataType(k token.Kind) datatype.DataType {
	switch k {
	case token.Int:
		return datatype.Int
	case token.Float:
		return datatype.Float
	case token.Bool:
		return datatype.Bool
	case token.StringLiteral:
		return datatype.String
	}
	panic("scalarDataType called with non-scalar kind")
}

func (p *parseState) run() *hxlerr.Error {
	for _, tok := range p.tokens {
		if err := p.step(tok); err != nil {
			return err
		}
	}
	return nil
}

func (p *parseState) step(tok token.Token) *hxlerr.Error {
	switch p.context {
	case ctxStartOfLine:
		return p.stepStartOfLine(tok)
	case ctxNodeType:
		return p.stepNodeType(tok)
	case ctxAfterNodeType:
		return p.stepAfterNodeType(tok)
	case ctxAfterNodeName:
		return p.stepAfterNodeName(tok)
	case ctxInheritance:
		return p.stepInheritance(tok)
	case ctxAfterInheritance:
		return p.stepAfterInheritance(tok)
	case ctxPropertyKey:
		return p.stepPropertyKey(tok)
	case ctxPropertyValueAwaitWS:
		return p.stepPropertyValueAwaitWS(tok)
	case ctxPropertyValue:
		return p.stepPropertyValue(tok, false)
	case ctxArrayExpectsValue:
		return p.stepPropertyValue(tok, true)
	case ctxGotValue:
		return p.stepGotValue(tok)
	case ctxEndedArray:
		return p.stepEndedArray(tok)
	}
	return p.unexpected(tok)
}

func (p *parseState) stepStartOfLine(tok token.Token) *hxlerr.Error {
	switch {
	case tok.Kind == token.Newline:
		return nil
	case tok.Kind == token.Tab:
		if p.curNodeIdx < 0 {
			return p.unexpected(tok)
		}
		p.curProp = &buildingProperty{}
		p.inArray = false
		p.context = ctxPropertyKey
		return nil
	case tok.Kind == token.Delimiter && tok.Value == "<":
		p.context = ctxNodeType
		p.pendingType = ""
		p.pendingName = ""
		p.pendingFrom = ""
		p.pendingHasFrom = false
		return nil
	default:
		return p.unexpected(tok)
	}
}

func (p *parseState) stepNodeType(tok token.Token) *hxlerr.Error {
	switch {
	case tok.Kind == token.Identifier && p.pendingType == "":
		p.pendingType = tok.Value
		return nil
	case tok.Kind == token.Delimiter && tok.Value == ">":
		p.context = ctxAfterNodeType
		return nil
	default:
		return p.unexpected(tok)
	}
}

func (p *parseState) stepAfterNodeType(tok token.Token) *hxlerr.Error {
	switch {
	case tok.Kind == token.Whitespace:
		return nil
	case tok.Kind == token.Identifier:
		p.pendingName = tok.Value
		p.context = ctxAfterNodeName
		return nil
	default:
		return p.unexpected(tok)
	}
}

func (p *parseState) stepAfterNodeName(tok token.Token) *hxlerr.Error {
	switch {
	case tok.Kind == token.Whitespace:
		return nil
	case tok.Kind == token.Delimiter && tok.Value == "<=":
		p.context = ctxInheritance
		return nil
	case tok.Kind == token.Newline:
		p.finalizeNodeHeader()
		return nil
	default:
		return p.unexpected(tok)
	}
}

func (p *parseState) stepInheritance(tok token.Token) *hxlerr.Error {
	switch {
	case tok.Kind == token.Whitespace:
		return nil
	case tok.Kind == token.Identifier:
		p.pendingFrom = tok.Value
		p.pendingHasFrom = true
		p.context = ctxAfterInheritance
		return nil
	default:
		return p.unexpected(tok)
	}
}

func (p *parseState) stepAfterInheritance(tok token.Token) *hxlerr.Error {
	if tok.Kind == token.Newline {
		p.finalizeNodeHeader()
		return nil
	}
	return p.unexpected(tok)
}

func (p *parseState) finalizeNodeHeader() {
	n := ast.Node{Type: p.pendingType, Name: p.pendingName}
	if p.pendingHasFrom {
		n.Inheritance = &ast.Inheritance{From: p.pendingFrom}
	}
	p.doc.Nodes = append(p.doc.Nodes, n)
	p.curNodeIdx = len(p.doc.Nodes) - 1
	p.context = ctxStartOfLine
}

func (p *parseState) stepPropertyKey(tok token.Token) *hxlerr.Error {
	switch {
	case tok.Kind == token.Identifier && p.curProp.name == "":
		p.curProp.name = tok.Value
		return nil
	case tok.Kind == token.Delimiter && tok.Value == "[]" && p.curProp.name != "":
		p.curProp.spec = specArray
		return nil
	case tok.Kind == token.Delimiter && tok.Value == "&" && p.curProp.name != "":
		p.curProp.spec = specRef
		return nil
	case tok.Kind == token.Delimiter && tok.Value == ":" && p.curProp.name != "":
		p.context = ctxPropertyValueAwaitWS
		return nil
	default:
		return p.unexpected(tok)
	}
}

func (p *parseState) stepPropertyValueAwaitWS(tok token.Token) *hxlerr.Error {
	if tok.Kind == token.Whitespace {
		p.context = ctxPropertyValue
		return nil
	}
	return p.unexpected(tok)
}

func (p *parseState) stepPropertyValue(tok token.Token, inArrayCtx bool) *hxlerr.Error {
	if inArrayCtx && tok.Kind == token.Whitespace {
		return nil
	}

	if tok.Kind == token.Punctuator && tok.Value == "{" && !inArrayCtx {
		if p.curProp.spec != specArray {
			return p.illegalDataType(tok)
		}
		p.inArray = true
		p.context = ctxArrayExpectsValue
		return nil
	}

	if tok.Kind == token.Identifier {
		if p.curProp.spec != specRef {
			return p.unexpected(tok)
		}
		p.appendValue(tok.Value, datatype.NodeRef)
		p.context = ctxGotValue
		return nil
	}

	if isScalarValueKind(tok.Kind) {
		if p.curProp.spec == specRef {
			return p.unexpected(tok)
		}
		p.appendValue(tok.Value, scalarDataType(tok.Kind))
		p.context = ctxGotValue
		return nil
	}

	return p.unexpected(tok)
}

func (p *parseState) stepGotValue(tok token.Token) *hxlerr.Error {
	switch {
	case tok.Kind == token.Whitespace && p.inArray:
		return nil
	case tok.Kind == token.Delimiter && tok.Value == "," && p.inArray:
		p.context = ctxArrayExpectsValue
		return nil
	case tok.Kind == token.Punctuator && tok.Value == "}" && p.inArray:
		p.context = ctxEndedArray
		return nil
	case tok.Kind == token.Newline:
		p.finalizeProperty()
		return nil
	default:
		return p.unexpected(tok)
	}
}

func (p *parseState) stepEndedArray(tok token.Token) *hxlerr.Error {
	if tok.Kind == token.Newline {
		p.finalizeProperty()
		return nil
	}
	return p.unexpected(tok)
}

func (p *parseState) appendValue(v string, dt datatype.DataType) {
	p.curProp.values = append(p.curProp.values, v)
	if !p.curProp.typeIsSet {
		p.curProp.dataType = dt
		p.curProp.typeIsSet = true
	}
}

func (p *parseState) finalizeProperty() {
	prop := ast.NodeProperty{
		Name:     p.curProp.name,
		Values:   p.curProp.values,
		DataType: p.curProp.dataType,
	}
	node := &p.doc.Nodes[p.curNodeIdx]
	node.Properties = append(node.Properties, prop)

	p.curProp = nil
	p.inArray = false
	p.context = ctxStartOfLine
}
