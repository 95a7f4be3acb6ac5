// Package hxlerr contains the closed diagnostic taxonomy shared by every
// stage of the HXL pipeline. It plays the same role here that
// internal/tunascript/error.go's SyntaxError plays for the TunaScript
// interpreter, but with a stable numeric Code attached to each error instead
// of an open-ended message, since HXL's external contract (spec §6) requires
// the codes to be part of the wire-visible result.
package hxlerr

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// Code is one member of HXL's closed error taxonomy. Values are stable and
// must never be renumbered once released.
type Code int

const (
	Empty                    Code = 100
	InvalidEOF               Code = 101
	UnexpectedToken          Code = 105
	SyntaxError              Code = 107
	IllegalWhitespace        Code = 110
	IllegalComment           Code = 140
	NodeReferenceNotFound    Code = 230
	CircularNodeReference    Code = 231 // reserved; never raised, see spec §9
	IllegalInheritance       Code = 251
	IllegalReference         Code = 252
	NonUniqueNode            Code = 500
	NonUniqueProperty        Code = 510
	UnknownNodeType          Code = 800
	IllegalDataType          Code = 830
	RequiredPropertyNotFound Code = 900
	UnknownProperty          Code = 910
	CannotDeserializeNode    Code = 1000
)

func (c Code) String() string {
	switch c {
	case Empty:
		return "EMPTY"
	case InvalidEOF:
		return "INVALID_EOF"
	case UnexpectedToken:
		return "UNEXPECTED_TOKEN"
	case SyntaxError:
		return "SYNTAX_ERROR"
	case IllegalWhitespace:
		return "ILLEGAL_WHITESPACE"
	case IllegalComment:
		return "ILLEGAL_COMMENT"
	case NodeReferenceNotFound:
		return "NODE_REFERENCE_NOT_FOUND"
	case CircularNodeReference:
		return "CIRCULAR_NODE_REFERENCE"
	case IllegalInheritance:
		return "ILLEGAL_INHERITANCE"
	case IllegalReference:
		return "ILLEGAL_REFERENCE"
	case NonUniqueNode:
		return "NON_UNIQUE_NODE"
	case NonUniqueProperty:
		return "NON_UNIQUE_PROPERTY"
	case UnknownNodeType:
		return "UNKNOWN_NODE_TYPE"
	case IllegalDataType:
		return "ILLEGAL_DATA_TYPE"
	case RequiredPropertyNotFound:
		return "REQUIRED_PROPERTY_NOT_FOUND"
	case UnknownProperty:
		return "UNKNOWN_PROPERTY"
	case CannotDeserializeNode:
		return "CANNOT_DESERIALIZE_NODE"
	default:
		return fmt.Sprintf("UNKNOWN_CODE(%d)", int(c))
	}
}

// Error is a single diagnostic. Position fields are zero when the error has
// no associated line/column (e.g. Empty, InvalidEOF).
type Error struct {
	Code    Code
	Message string

	// Line is 1-indexed and Col is 0-indexed, both taken from the offending
	// token's position; both are 0 when the diagnostic has no position.
	Line int
	Col  int

	// SourceLine is the exact text of the offending line, when available. It
	// is used only for Pretty(); the Error() string never includes it, to
	// keep spec §6's exact message formats intact.
	SourceLine string
}

func (e *Error) Error() string {
	return e.Message
}

// Pretty renders the offending source line with a cursor under the column
// the error occurred at, word-wrapped to width. This is strictly an
// additional, CLI-facing rendering (spec §6's message formats are
// compatibility-sensitive and Error() always returns them unmodified);
// Pretty is never consulted by the pipeline itself.
func (e *Error) Pretty(width int) string {
	msg := rosed.Edit(e.Message).Wrap(width).String()
	if e.SourceLine == "" || e.Line <= 0 {
		return msg
	}

	cursor := ""
	for i := 0; i < e.Col; i++ {
		cursor += " "
	}
	cursor += "^"

	return e.SourceLine + "\n" + cursor + "\n" + msg
}

// List is an ordered collection of diagnostics, as returned by the stages
// that "collect all" per spec §2/§7 (Semantic Analyzer, Schema Validator,
// Deserializer).
type List []*Error

func (l List) Error() string {
	if len(l) == 0 {
		return "no errors"
	}
	if len(l) == 1 {
		return l[0].Error()
	}
	return fmt.Sprintf("%d errors, first: %s", len(l), l[0].Error())
}
