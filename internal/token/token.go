// Package token holds the Tokenizer's output type and the position it is
// tagged with. It has no dependency on any other HXL package, keeping the
// token type free of parser concerns.
package token

import "fmt"

// Kind classifies a Token. See spec §3.
type Kind int

const (
	Delimiter Kind = iota
	Punctuator
	Identifier
	Whitespace
	Newline
	Tab
	StringLiteral
	Int
	Float
	Bool
)

func (k Kind) String() string {
	switch k {
	case Delimiter:
		return "Delimiter"
	case Punctuator:
		return "Punctuator"
	case Identifier:
		return "Identifier"
	case Whitespace:
		return "Whitespace"
	case Newline:
		return "Newline"
	case Tab:
		return "Tab"
	case StringLiteral:
		return "StringLiteral"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// HasValue reports whether tokens of this kind carry a Value (spec §3: value
// is required for Delimiter, Punctuator, Identifier, StringLiteral, Int,
// Float, Bool; absent for Whitespace, Newline, Tab).
func (k Kind) HasValue() bool {
	switch k {
	case Whitespace, Newline, Tab:
		return false
	default:
		return true
	}
}

// Position is a 1-indexed line and 0-indexed column into the source text.
type Position struct {
	Line uint16
	Col  uint16
}

func (p Position) String() string {
	return fmt.Sprintf("Line %d, Col %d", p.Line, p.Col)
}

// Token is a single lexical unit produced by the Tokenizer.
type Token struct {
	Kind  Kind
	Value string
	Pos   Position
}

func (t Token) String() string {
	if t.Kind.HasValue() {
		return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Pos)
	}
	return fmt.Sprintf("%s@%s", t.Kind, t.Pos)
}

// Text returns the human-readable text of the token for use in diagnostic
// messages, e.g. "Unexpected token: {TEXT}".
func (t Token) Text() string {
	switch t.Kind {
	case Whitespace:
		return "whitespace"
	case Newline:
		return "newline"
	case Tab:
		return "tab"
	case StringLiteral:
		return `"` + t.Value + `"`
	default:
		return t.Value
	}
}
