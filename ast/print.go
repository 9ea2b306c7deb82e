/*
File    : lambda/ast/print.go
Author  : akashmaji946
*/
package ast

import (
	"fmt"
	"strings"
)

// String renders e in valid lambda-surface syntax: variables as bare
// bytes, names flanked by single spaces, nested abstractions collapsed
// into \xyz.body, and applications parenthesized only where associativity
// would otherwise be lost.
func (v *Variable) String() string { return string(v.Byte) }
func (n *Name) String() string     { return " " + n.Value + " " }

func (a *Abstr) String() string {
	var params strings.Builder
	params.WriteByte(a.Param)
	body := a.Body
	for {
		next, ok := body.(*Abstr)
		if !ok {
			break
		}
		params.WriteByte(next.Param)
		body = next.Body
	}
	return fmt.Sprintf("\\%s.%s", params.String(), body.String())
}

func (a *Appl) String() string {
	fun, arg := a.Fun, a.Arg
	_, funIsAbstr := fun.(*Abstr)
	switch arg.(type) {
	case *Abstr, *Appl:
		if funIsAbstr {
			return fmt.Sprintf("(%s)(%s)", fun.String(), arg.String())
		}
		return fmt.Sprintf("%s(%s)", fun.String(), arg.String())
	default:
		if funIsAbstr {
			return fmt.Sprintf("(%s)%s", fun.String(), arg.String())
		}
		return fmt.Sprintf("%s%s", fun.String(), arg.String())
	}
}

// Tree renders e as an indented ASCII-art tree, flattening an n-ary
// application's left spine into a fan of n children rather than nesting
// one Appl per argument.
func (v *Variable) Tree() string { return treeString(v) }
func (n *Name) Tree() string     { return treeString(n) }
func (a *Abstr) Tree() string    { return treeString(a) }
func (a *Appl) Tree() string     { return treeString(a) }

func treeString(e Expr) string {
	var b strings.Builder
	writeTree(&b, "", "", e)
	return b.String()
}

func writeTree(b *strings.Builder, headPrefix, restPrefix string, e Expr) {
	switch n := e.(type) {
	case *Variable:
		fmt.Fprintf(b, "%sVar %c\n", headPrefix, n.Byte)
	case *Name:
		fmt.Fprintf(b, "%sName %s\n", headPrefix, n.Value)
	case *Abstr:
		var params strings.Builder
		params.WriteByte(n.Param)
		body := n.Body
		for {
			next, ok := body.(*Abstr)
			if !ok {
				break
			}
			params.WriteByte(next.Param)
			body = next.Body
		}
		fmt.Fprintf(b, "%sAbstr %s\n", headPrefix, params.String())
		writeTree(b, restPrefix+"`-", restPrefix+"  ", body)
	case *Appl:
		fmt.Fprintf(b, "%s.\n", headPrefix)
		var children []Expr
		children = append(children, n.Arg)
		cur := n.Fun
		for {
			inner, ok := cur.(*Appl)
			if !ok {
				break
			}
			children = append(children, inner.Arg)
			cur = inner.Fun
		}
		children = append(children, cur)
		// children is in reverse order (arg, ..., head); walk it
		// head-first, drawing the last element with the closing branch.
		for i := len(children) - 1; i > 0; i-- {
			writeTree(b, restPrefix+"|-", restPrefix+"| ", children[i])
		}
		writeTree(b, restPrefix+"`-", restPrefix+"  ", children[0])
	}
}
