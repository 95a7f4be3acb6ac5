// Package lexer implements the HXL Tokenizer (spec §4.1). It follows the
// single-character-buffer state machine shape of
// internal/tunascript/lexer.go (a rune-by-rune scan that classifies a
// pending buffer and flushes it into a token whenever a boundary character
// is seen) but implements HXL's own lexical grammar rather than
// TunaScript's operator/string grammar.
package lexer

import (
	"fmt"
	"strings"

	"github.com/hxlconf/hxl/internal/hxlerr"
	"github.com/hxlconf/hxl/internal/token"
)

// indentSize is the number of leading spaces that collapse into a single
// Tab token at the start of a line. Treated as a compile-time constant per
// spec §9 ("Global state"), never mutated.
const indentSize = 4

type bufferClass int

const (
	bufEmpty bufferClass = iota
	bufInteger
	bufFloat
	bufIdentifier
)

// Tokenize runs the Tokenizer stage over source and returns the token
// stream, or a single Error on the first lexical problem (spec §4.1: "fails
// fast... no partial token list is returned on failure").
func Tokenize(source string) ([]token.Token, *hxlerr.Error) {
	l := &lexState{
		runes: []rune(source),
		lines: strings.Split(source, "\n"),
		line:  1,
	}
	return l.run()
}

type lexState struct {
	runes []rune
	lines []string

	tokens []token.Token

	line int
	col  uint16

	bufClass bufferClass
	buf      strings.Builder
	bufPos   token.Position

	inString       bool
	stringPos      token.Position
	stringBuf      strings.Builder
	lineStartDone  bool // whether the leading-whitespace-grouping decision has been made for this line
	lineHasContent bool // whether a non-whitespace/tab token has been emitted on this line
}

func (l *lexState) sourceLine(n int) string {
	if n-1 < 0 || n-1 >= len(l.lines) {
		return ""
	}
	return l.lines[n-1]
}

func (l *lexState) pos() token.Position {
	return token.Position{Line: uint16(l.line), Col: l.col}
}

func (l *lexState) errf(code hxlerr.Code, pos token.Position, msg string) *hxlerr.Error {
	return &hxlerr.Error{
		Code:       code,
		Message:    msg,
		Line:       int(pos.Line),
		Col:        int(pos.Col),
		SourceLine: l.sourceLine(int(pos.Line)),
	}
}

func (l *lexState) run() ([]token.Token, *hxlerr.Error) {
	for i := 0; i < len(l.runes); i++ {
		ch := l.runes[i]

		if ch == '\r' {
			continue
		}

		if l.inString {
			if ch == '\n' {
				return nil, l.errf(hxlerr.IllegalWhitespace, l.stringPos,
					fmt.Sprintf("[Line %d, Col %d] Illegal whitespace", l.stringPos.Line, l.stringPos.Col))
			}
			if ch == '"' {
				l.tokens = append(l.tokens, token.Token{Kind: token.StringLiteral, Value: l.stringBuf.String(), Pos: l.stringPos})
				l.stringBuf.Reset()
				l.inString = false
				l.advance(ch)
				continue
			}
			l.stringBuf.WriteRune(ch)
			l.advance(ch)
			continue
		}

		if ch == '\n' {
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.tokens = append(l.tokens, token.Token{Kind: token.Newline, Pos: l.pos()})
			l.line++
			l.col = 0
			l.lineStartDone = false
			l.lineHasContent = false
			continue
		}

		if ch == '\t' {
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.tokens = append(l.tokens, token.Token{Kind: token.Tab, Pos: l.pos()})
			l.lineStartDone = true
			l.advance(ch)
			continue
		}

		if ch == ' ' && !l.lineStartDone && l.col == 0 {
			consumed, tab, err := l.leadingRun(i)
			if err != nil {
				return nil, err
			}
			if err := l.flush(); err != nil {
				return nil, err
			}
			if tab {
				l.tokens = append(l.tokens, token.Token{Kind: token.Tab, Pos: l.pos()})
				for j := 0; j < indentSize; j++ {
					l.advance(' ')
				}
				i += indentSize - 1
			} else {
				l.tokens = append(l.tokens, token.Token{Kind: token.Whitespace, Pos: l.pos()})
				l.advance(' ')
			}
			l.lineStartDone = true
			continue
		}

		if ch == ' ' {
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.tokens = append(l.tokens, token.Token{Kind: token.Whitespace, Pos: l.pos()})
			l.advance(ch)
			continue
		}

		if ch == '#' {
			if err := l.handleComment(&i); err != nil {
				return nil, err
			}
			continue
		}

		if ch == '"' {
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.inString = true
			l.stringPos = l.pos()
			l.advance(ch)
			continue
		}

		if d, width, ok := l.matchDelimiter(i); ok {
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.tokens = append(l.tokens, token.Token{Kind: token.Delimiter, Value: d, Pos: l.pos()})
			l.lineStartDone = true
			l.lineHasContent = true
			for j := 0; j < width; j++ {
				l.advance(l.runes[i+j])
			}
			i += width - 1
			continue
		}

		if ch == '{' || ch == '}' {
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.tokens = append(l.tokens, token.Token{Kind: token.Punctuator, Value: string(ch), Pos: l.pos()})
			l.lineStartDone = true
			l.lineHasContent = true
			l.advance(ch)
			continue
		}

		if err := l.absorb(ch); err != nil {
			return nil, err
		}
		l.lineStartDone = true
		l.lineHasContent = true
		l.advance(ch)
	}

	if l.inString {
		return nil, l.errf(hxlerr.IllegalWhitespace, l.stringPos,
			fmt.Sprintf("[Line %d, Col %d] Illegal whitespace", l.stringPos.Line, l.stringPos.Col))
	}

	if err := l.flush(); err != nil {
		return nil, err
	}

	return l.tokens, nil
}

// advance moves the column counter past ch. Newlines are handled by their
// own branch in run, never passed here.
func (l *lexState) advance(ch rune) {
	l.col++
}

// leadingRun looks at the run of consecutive spaces starting at i (which
// must be at column 0) and decides whether it is exactly indentSize long.
func (l *lexState) leadingRun(i int) (consumed int, isTab bool, err *hxlerr.Error) {
	n := 0
	for i+n < len(l.runes) && l.runes[i+n] == ' ' {
		n++
	}
	return n, n == indentSize, nil
}

var delimiters = []struct {
	lead  rune
	two   rune
	two2c string
}{
	{'<', '=', "<="},
	{'[', ']', "[]"},
}

// matchDelimiter checks for a delimiter starting at i, preferring the
// two-character forms when the second character immediately follows.
func (l *lexState) matchDelimiter(i int) (value string, width int, ok bool) {
	ch := l.runes[i]
	switch ch {
	case '<':
		if i+1 < len(l.runes) && l.runes[i+1] == '=' {
			return "<=", 2, true
		}
		return "<", 1, true
	case '[':
		if i+1 < len(l.runes) && l.runes[i+1] == ']' {
			return "[]", 2, true
		}
		return "[", 1, true
	case '>', ':', ',', '&':
		return string(ch), 1, true
	}
	return "", 0, false
}

// absorb feeds ch into the pending buffer, applying the classification
// transitions of spec §4.1's buffer state machine.
func (l *lexState) absorb(ch rune) *hxlerr.Error {
	isDigit := ch >= '0' && ch <= '9'
	isLetter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')

	switch l.bufClass {
	case bufEmpty:
		if isDigit || ch == '-' {
			l.bufClass = bufInteger
			l.bufPos = l.pos()
			l.buf.WriteRune(ch)
			return nil
		}
		if isLetter || ch == '_' {
			l.bufClass = bufIdentifier
			l.bufPos = l.pos()
			l.buf.WriteRune(ch)
			return nil
		}
	case bufInteger:
		if isDigit {
			l.buf.WriteRune(ch)
			return nil
		}
		if ch == '.' {
			l.bufClass = bufFloat
			l.buf.WriteRune(ch)
			return nil
		}
	case bufFloat:
		if isDigit {
			l.buf.WriteRune(ch)
			return nil
		}
	case bufIdentifier:
		if isDigit || isLetter || ch == '_' {
			l.buf.WriteRune(ch)
			return nil
		}
	}

	return l.errf(hxlerr.SyntaxError, l.pos(), fmt.Sprintf("[Line %d] Unexpected token: %s", l.line, string(ch)))
}

// flush emits the pending buffer (if any) as a token, classifying Int,
// Float, Bool, and Identifier per spec §4.1.
func (l *lexState) flush() *hxlerr.Error {
	if l.bufClass == bufEmpty {
		return nil
	}

	text := l.buf.String()
	var kind token.Kind
	switch l.bufClass {
	case bufInteger:
		kind = token.Int
	case bufFloat:
		kind = token.Float
	case bufIdentifier:
		if text == "true" || text == "false" {
			kind = token.Bool
		} else {
			kind = token.Identifier
		}
	}

	l.tokens = append(l.tokens, token.Token{Kind: kind, Value: text, Pos: l.bufPos})
	l.buf.Reset()
	l.bufClass = bufEmpty
	l.lineHasContent = true
	return nil
}

// handleComment consumes a '#' comment per spec §4.1 and advances *i to the
// last rune of the comment (the loop's i++ will then land on the newline or
// EOF). No token is ever emitted for a comment.
func (l *lexState) handleComment(i *int) *hxlerr.Error {
	if err := l.flush(); err != nil {
		return err
	}

	hashPos := l.pos()
	leading := !l.lineHasContent

	if leading {
		if l.col != 0 {
			return l.errf(hxlerr.IllegalWhitespace, hashPos,
				fmt.Sprintf("[Line %d, Col %d] Illegal whitespace", hashPos.Line, hashPos.Col))
		}
	} else {
		if len(l.tokens) < 1 || l.tokens[len(l.tokens)-1].Kind != token.Whitespace ||
			(len(l.tokens) >= 2 && l.tokens[len(l.tokens)-2].Kind == token.Whitespace) {
			return l.errf(hxlerr.IllegalWhitespace, hashPos,
				fmt.Sprintf("[Line %d, Col %d] Illegal whitespace", hashPos.Line, hashPos.Col))
		}
	}

	pos := *i + 1
	if pos >= len(l.runes) || l.runes[pos] == '\n' || l.runes[pos] == '\r' {
		return l.errf(hxlerr.IllegalComment, hashPos,
			fmt.Sprintf("[Line %d] Illegal comment", hashPos.Line))
	}
	if l.runes[pos] != ' ' {
		return l.errf(hxlerr.IllegalWhitespace, hashPos,
			fmt.Sprintf("[Line %d, Col %d] Illegal whitespace", hashPos.Line, hashPos.Col))
	}
	pos++ // past the single required space

	if pos < len(l.runes) && l.runes[pos] == ' ' {
		return l.errf(hxlerr.IllegalWhitespace, hashPos,
			fmt.Sprintf("[Line %d, Col %d] Illegal whitespace", hashPos.Line, hashPos.Col))
	}

	textStart := pos
	for pos < len(l.runes) && l.runes[pos] != '\n' {
		pos++
	}
	text := strings.TrimSpace(string(l.runes[textStart:pos]))
	if text == "" {
		return l.errf(hxlerr.IllegalComment, hashPos,
			fmt.Sprintf("[Line %d] Illegal comment", hashPos.Line))
	}

	// advance the column counter for every consumed rune, including the '#'
	// itself, then leave *i pointing at the last consumed rune.
	for k := *i; k < pos; k++ {
		l.advance(l.runes[k])
	}
	*i = pos - 1
	l.lineStartDone = true
	return nil
}
