/*
File    : lambda/parser/parser.go
Author  : akashmaji946
*/

// Package parser turns a flat token stream into a definitions environment
// plus an optional trailing main expression. It is a single left-to-right
// pass over the tokens driven by a small state machine, with an explicit
// atom stack standing in for the call stack a recursive-descent parser
// would otherwise use.
package parser

import (
	"fmt"

	"github.com/akashmaji946/lambda/ast"
	"github.com/akashmaji946/lambda/defs"
	"github.com/akashmaji946/lambda/token"
)

// state names where the parser currently is relative to an abstraction.
// Start and InExpr both parse ordinary atoms; they differ only in whether
// a leading Capitalized token may open a definition.
type state int

const (
	stateStart state = iota
	stateInExpr
	stateAbstrInit
	stateAbstrParams
)

type atomKind int

const (
	atomExpr atomKind = iota
	atomParam
	atomParen
	atomDefinition
)

// stackAtom is one entry of the parser's atom stack. Only the fields
// relevant to kind are populated; row/col record where the atom was
// opened, for unmatched-paren and empty-abstraction-body diagnostics.
type stackAtom struct {
	kind  atomKind
	expr  ast.Expr
	param byte
	name  string
	row   int
	col   int
}

// Parser consumes a token slice produced by the lexer and builds the
// definitions environment and optional main expression described in the
// grammar: a sequence of `Name = expr;` statements followed by an
// optional bare expression.
type Parser struct {
	tokens []token.Token
	pos    int
	state  state
	stack  []stackAtom
}

// New creates a Parser over tokens.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, state: stateStart}
}

// Parse runs the parser to completion. The returned ast.Expr is nil when
// the input carries no trailing main expression (only definitions, or an
// empty program).
func (p *Parser) Parse() (*defs.Definitions, ast.Expr, error) {
	result := defs.New()
	lastRow, lastCol := 1, 1

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		lastRow, lastCol = tok.Row, tok.Col

		switch p.state {
		case stateAbstrInit:
			if tok.Type != token.CHAR {
				return nil, nil, &ParseError{
					Msg: fmt.Sprintf("expected a bound-variable letter after '\\', found %s", tok.Type),
					Row: tok.Row, Col: tok.Col,
				}
			}
			p.stack = append(p.stack, stackAtom{kind: atomParam, param: tok.Literal[0], row: tok.Row, col: tok.Col})
			p.state = stateAbstrParams
			p.pos++
			continue

		case stateAbstrParams:
			switch tok.Type {
			case token.CHAR:
				p.stack = append(p.stack, stackAtom{kind: atomParam, param: tok.Literal[0], row: tok.Row, col: tok.Col})
				p.pos++
				continue
			case token.DOT:
				p.state = stateInExpr
				p.pos++
				continue
			default:
				return nil, nil, &ParseError{
					Msg: fmt.Sprintf("unexpected %s while reading abstraction parameters", tok.Type),
					Row: tok.Row, Col: tok.Col,
				}
			}
		}

		// p.state is stateStart or stateInExpr here.
		switch tok.Type {
		case token.CHAR:
			p.pushExprAtom(&ast.Variable{Byte: tok.Literal[0]})
			p.state = stateInExpr
			p.pos++

		case token.CAPITALIZED:
			if p.state == stateStart && p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Type == token.EQUALS {
				p.stack = append(p.stack, stackAtom{kind: atomDefinition, name: tok.Literal, row: tok.Row, col: tok.Col})
				p.pos += 2 // consume Capitalized and Equals
				p.state = stateInExpr
				continue
			}
			p.pushExprAtom(&ast.Name{Value: tok.Literal})
			p.state = stateInExpr
			p.pos++

		case token.OPPAREN:
			p.stack = append(p.stack, stackAtom{kind: atomParen, row: tok.Row, col: tok.Col})
			p.state = stateInExpr
			p.pos++

		case token.CLPAREN:
			expr, err := p.foldTop(tok.Row, tok.Col, "cannot close an empty group")
			if err != nil {
				return nil, nil, err
			}
			if len(p.stack) == 0 || p.stack[len(p.stack)-1].kind != atomParen {
				return nil, nil, &ParseError{Msg: "unmatched ')'", Row: tok.Row, Col: tok.Col}
			}
			p.stack = p.stack[:len(p.stack)-1]
			p.pushExprAtom(expr)
			p.state = stateInExpr
			p.pos++

		case token.BACKSLASH:
			p.state = stateAbstrInit
			p.pos++

		case token.SEMICOLON:
			expr, err := p.foldTop(tok.Row, tok.Col, "empty statement")
			if err != nil {
				return nil, nil, err
			}
			if len(p.stack) > 0 && p.stack[len(p.stack)-1].kind == atomDefinition {
				def := p.stack[len(p.stack)-1]
				p.stack = p.stack[:len(p.stack)-1]
				result.Insert(def.name, expr)
			} else if len(p.stack) > 0 && p.stack[len(p.stack)-1].kind == atomParen {
				open := p.stack[len(p.stack)-1]
				return nil, nil, &ParseError{
					Msg: fmt.Sprintf("unmatched '(' opened at %d:%d", open.row, open.col),
					Row: tok.Row, Col: tok.Col,
				}
			}
			// Otherwise the statement was a bare expression with no
			// definition name: its value is computed and discarded.
			p.state = stateStart
			p.pos++

		default:
			return nil, nil, &ParseError{
				Msg: fmt.Sprintf("unexpected token %s", tok.Type),
				Row: tok.Row, Col: tok.Col,
			}
		}
	}

	if p.state == stateAbstrInit || p.state == stateAbstrParams {
		return nil, nil, &ParseError{Msg: "unexpected end of input while reading an abstraction", Row: lastRow, Col: lastCol}
	}

	if len(p.stack) == 0 {
		return result, nil, nil
	}

	expr, err := p.foldTop(lastRow, lastCol, "")
	if err != nil {
		return nil, nil, err
	}

	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		switch top.kind {
		case atomParen:
			return nil, nil, &ParseError{
				Msg: fmt.Sprintf("unmatched '(' opened at %d:%d", top.row, top.col),
				Row: lastRow, Col: lastCol,
			}
		case atomDefinition:
			p.stack = p.stack[:len(p.stack)-1]
			result.Insert(top.name, expr)
			return result, nil, nil
		}
	}

	return result, expr, nil
}

// pushExprAtom implements the "append atom" rule shared by Char,
// Capitalized, and closed-parenthesis atoms: it merges into a
// left-associative application with whatever expression atom already sits
// on top of the stack, or pushes a fresh one.
func (p *Parser) pushExprAtom(e ast.Expr) {
	if n := len(p.stack); n > 0 && p.stack[n-1].kind == atomExpr {
		before := p.stack[n-1].expr
		p.stack[n-1].expr = &ast.Appl{Fun: before, Arg: e}
		return
	}
	p.stack = append(p.stack, stackAtom{kind: atomExpr, expr: e})
}

// foldTop collapses the stack from the top down into a single expression:
// trailing abstraction parameters wrap their right tail (innermost param
// first), and any expression atom reached afterwards applies to the left
// of the result. Folding stops at a paren or definition marker, or at the
// bottom of the stack, leaving that marker (if any) in place for the
// caller to interpret.
//
// If the top of the stack is an abstraction parameter with nothing above
// it, the abstraction has an empty body. If the stack is empty or its top
// is itself a marker, emptyMsg is returned as the error.
func (p *Parser) foldTop(row, col int, emptyMsg string) (ast.Expr, error) {
	if len(p.stack) == 0 {
		return nil, &ParseError{Msg: emptyMsg, Row: row, Col: col}
	}
	top := p.stack[len(p.stack)-1]
	if top.kind == atomParam {
		return nil, &ParseError{Msg: "abstraction has an empty body", Row: top.row, Col: top.col}
	}
	if top.kind != atomExpr {
		return nil, &ParseError{Msg: emptyMsg, Row: row, Col: col}
	}

	acc := top.expr
	p.stack = p.stack[:len(p.stack)-1]
	for len(p.stack) > 0 {
		t := p.stack[len(p.stack)-1]
		switch t.kind {
		case atomParam:
			acc = &ast.Abstr{Param: t.param, Body: acc}
			p.stack = p.stack[:len(p.stack)-1]
		case atomExpr:
			acc = &ast.Appl{Fun: t.expr, Arg: acc}
			p.stack = p.stack[:len(p.stack)-1]
		default:
			return acc, nil
		}
	}
	return acc, nil
}
