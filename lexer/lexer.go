/*
File    : lambda/lexer/lexer.go
Author  : akashmaji946
*/

// Package lexer performs byte-level lexical analysis of lambda-calculus
// source text. It scans one byte at a time with one-byte lookahead,
// tracking row/column for error reporting, and produces a flat token
// stream for the parser.
package lexer

import (
	"fmt"
	"io"

	"github.com/akashmaji946/lambda/token"
)

// LexError reports an unexpected byte or an underlying I/O failure,
// positioned at the byte where the problem was found.
type LexError struct {
	Msg string
	Row int
	Col int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LexError(%d:%d): %s", e.Row, e.Col, e.Msg)
}

// Lexer scans a fixed byte buffer into tokens. It holds no reference to
// the original io.Reader: callers read the whole source into memory first
// (via New), so both files and single REPL lines share one code path.
type Lexer struct {
	src     []byte
	pos     int
	current byte
	row     int
	col     int
}

// New creates a Lexer over src, positioned at row 1, column 1.
func New(src []byte) *Lexer {
	lex := &Lexer{src: src, row: 1, col: 1}
	if len(src) > 0 {
		lex.current = src[0]
	}
	return lex
}

// FromReader drains r fully and returns a Lexer over its bytes.
func FromReader(r io.Reader) (*Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LexError{Msg: fmt.Sprintf("IO error: %v", err), Row: 1, Col: 1}
	}
	return New(data), nil
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

// advance moves to the next byte, updating position and column. Line
// tracking for '\n'/'\r' happens in NextToken before advance is called,
// matching the teacher lexer's split between IgnoreWhitespace and Advance.
func (l *Lexer) advance() {
	l.pos++
	l.col++
	if l.atEnd() {
		l.current = 0
	} else {
		l.current = l.src[l.pos]
	}
}

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isIdentStart(b byte) bool {
	return isUpper(b) || isDigit(b) || b == '_'
}
func isIdentCont(b byte) bool {
	return isLower(b) || isUpper(b) || isDigit(b) || b == '_'
}

// NextToken consumes and returns the next meaningful token, skipping
// leading whitespace. ok is false once the lexer has been fully drained;
// at that point Token's zero value is returned alongside a nil error.
func (l *Lexer) NextToken() (tok token.Token, ok bool, err error) {
	for !l.atEnd() {
		switch l.current {
		case ' ', '\t':
			l.advance()
			continue
		case '\n':
			l.row++
			l.col = 0
			l.advance()
			continue
		case '\r':
			l.row++
			l.advance()
			if !l.atEnd() && l.current == '\n' {
				l.advance()
			}
			l.col = 1
			continue
		}
		break
	}
	if l.atEnd() {
		return token.Token{}, false, nil
	}

	row, col := l.row, l.col
	c := l.current

	switch {
	case c == '(':
		l.advance()
		return token.NewAt(token.OPPAREN, "(", row, col), true, nil
	case c == ')':
		l.advance()
		return token.NewAt(token.CLPAREN, ")", row, col), true, nil
	case c == '\\':
		l.advance()
		return token.NewAt(token.BACKSLASH, "\\", row, col), true, nil
	case c == '.':
		l.advance()
		return token.NewAt(token.DOT, ".", row, col), true, nil
	case c == '=':
		l.advance()
		return token.NewAt(token.EQUALS, "=", row, col), true, nil
	case c == ';':
		l.advance()
		return token.NewAt(token.SEMICOLON, ";", row, col), true, nil
	case isLower(c):
		l.advance()
		return token.NewAt(token.CHAR, string(c), row, col), true, nil
	case isIdentStart(c):
		start := l.pos
		for !l.atEnd() && isIdentCont(l.current) {
			l.advance()
		}
		lit := string(l.src[start:l.pos])
		return token.NewAt(token.CAPITALIZED, lit, row, col), true, nil
	default:
		return token.Token{}, false, &LexError{
			Msg: fmt.Sprintf("Bad char '%s'", escapeByte(c)),
			Row: row,
			Col: col,
		}
	}
}

// ConsumeTokens runs the lexer to completion and returns every token in
// source order.
func (l *Lexer) ConsumeTokens() ([]token.Token, error) {
	toks := make([]token.Token, 0)
	for {
		tok, ok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// escapeByte renders a byte for error messages: printable ASCII other than
// backslash and single quote as-is; backslash, newline, tab and carriage
// return as two-character escapes; everything else (the single quote
// included) as \xHH.
func escapeByte(b byte) string {
	if b >= 0x20 && b < 0x7f && b != '\\' && b != '\'' {
		return string(b)
	}
	switch b {
	case '\\':
		return `\\`
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	}
	return fmt.Sprintf(`\x%02x`, b)
}
