/*
File    : lambda/ast/expr.go
Author  : akashmaji946
*/

// Package ast defines the lambda-calculus expression tree and the
// structural operations over it: cloning, size, free variables,
// α-equality, Church-numeral encode/decode, and the two printers
// (surface syntax and indented tree form).
//
// An Expr is a pure, unshared tree: every sub-expression is owned
// exclusively by its parent. There is no interning, no reference
// counting, and no cycles.
package ast

// Expr is implemented by the four expression variants. It is a closed
// interface: Variable, Name, Abstr, and Appl are the only cases, and every
// function in this package switches over exactly those four.
type Expr interface {
	Clone() Expr
	String() string
	Tree() string
	exprNode()
}

// Variable is a bound or free occurrence of a single-byte identifier in
// a..z.
type Variable struct {
	Byte byte
}

// Name is an opaque identifier reference, resolved only by the reducer
// against a definitions environment or as a Church-numeral literal.
type Name struct {
	Value string
}

// Abstr is an abstraction binding a single-byte parameter over Body.
// \xyz.E surface syntax desugars to nested Abstr nodes during parsing.
type Abstr struct {
	Param byte
	Body  Expr
}

// Appl is a left-associative function application: Fun applied to Arg.
type Appl struct {
	Fun Expr
	Arg Expr
}

func (*Variable) exprNode() {}
func (*Name) exprNode()     {}
func (*Abstr) exprNode()    {}
func (*Appl) exprNode()     {}

// Clone returns a deep structural copy of the expression. The AST carries
// no sharing, so every transformation that needs to both keep and mutate
// a subtree must Clone it first.
func (v *Variable) Clone() Expr { return &Variable{Byte: v.Byte} }
func (n *Name) Clone() Expr     { return &Name{Value: n.Value} }
func (a *Abstr) Clone() Expr    { return &Abstr{Param: a.Param, Body: a.Body.Clone()} }
func (a *Appl) Clone() Expr     { return &Appl{Fun: a.Fun.Clone(), Arg: a.Arg.Clone()} }

// Size counts the nodes in e. size(Variable) = size(Name) = 1,
// size(Abstr(_, b)) = 1 + size(b), size(Appl(a, b)) = size(a) + size(b)
// (application nodes are counted implicitly through their children, per
// spec.md §3.2).
func Size(e Expr) int {
	switch n := e.(type) {
	case *Variable, *Name:
		return 1
	case *Abstr:
		return 1 + Size(n.Body)
	case *Appl:
		return Size(n.Fun) + Size(n.Arg)
	default:
		return 0
	}
}

// FreeVars computes the set of bytes free in e: FV(Variable(v)) = {v},
// FV(Name) = ∅, FV(Abstr(v,b)) = FV(b) \ {v}, FV(Appl(a,b)) = FV(a) ∪ FV(b).
func FreeVars(e Expr) map[byte]struct{} {
	set := make(map[byte]struct{})
	collectFreeVars(e, set)
	return set
}

func collectFreeVars(e Expr, set map[byte]struct{}) {
	switch n := e.(type) {
	case *Variable:
		set[n.Byte] = struct{}{}
	case *Name:
		// no free variables
	case *Abstr:
		inner := FreeVars(n.Body)
		delete(inner, n.Param)
		for b := range inner {
			set[b] = struct{}{}
		}
	case *Appl:
		collectFreeVars(n.Fun, set)
		collectFreeVars(n.Arg, set)
	}
}
