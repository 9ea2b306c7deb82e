/*
File    : lambda/reducer/substitute.go
Author  : akashmaji946
*/
package reducer

import "github.com/akashmaji946/lambda/ast"

// substitute implements capture-avoiding substitution: expr[from -> to].
// Every free occurrence of the variable from in expr is replaced by a
// clone of to; bound occurrences are left alone. When substitution would
// carry to underneath a binder whose parameter is free in to, that binder
// is first renamed to a letter unused by either side (alphaRename) so the
// substitution cannot capture it.
//
// Cloning to per occurrence keeps this a pure, easily verified tree
// rewrite; it trades the single-use-without-copy optimization a reference
// implementation might apply for straightforward Go value semantics.
func substitute(expr ast.Expr, from byte, to ast.Expr) (ast.Expr, error) {
	toFree := ast.FreeVars(to)

	switch e := expr.(type) {
	case *ast.Name:
		return e, nil

	case *ast.Variable:
		if e.Byte == from {
			return to.Clone(), nil
		}
		return e, nil

	case *ast.Appl:
		fun, err := substitute(e.Fun, from, to)
		if err != nil {
			return nil, err
		}
		arg, err := substitute(e.Arg, from, to)
		if err != nil {
			return nil, err
		}
		return &ast.Appl{Fun: fun, Arg: arg}, nil

	case *ast.Abstr:
		if e.Param == from {
			// from is shadowed here; the body is untouched.
			return e, nil
		}
		// protected is P = FV(to) ∪ {from}: the substitution target itself
		// must be off-limits to the fresh name, or the recursive substitute
		// call below would mistake the freshly renamed binder for a free
		// occurrence of from and rewrite it again.
		if _, captured := toFree[e.Param]; captured {
			protected := make(map[byte]struct{}, len(toFree)+1)
			for b := range toFree {
				protected[b] = struct{}{}
			}
			protected[from] = struct{}{}
			newParam, newBody, err := alphaRename(e.Param, e.Body, protected)
			if err != nil {
				return nil, err
			}
			body, err := substitute(newBody, from, to)
			if err != nil {
				return nil, err
			}
			return &ast.Abstr{Param: newParam, Body: body}, nil
		}
		body, err := substitute(e.Body, from, to)
		if err != nil {
			return nil, err
		}
		return &ast.Abstr{Param: e.Param, Body: body}, nil

	default:
		return expr, nil
	}
}

// alphaRename picks a letter unused by body's free variables, by any
// binder inside body, or by avoid, renames every bound occurrence of param
// in body to it, and returns the new parameter alongside the rewritten body.
func alphaRename(param byte, body ast.Expr, avoid map[byte]struct{}) (byte, ast.Expr, error) {
	taken := ast.FreeVars(body)
	for b := range avoid {
		taken[b] = struct{}{}
	}
	// An inner binder with the fresh name would capture the renamed
	// occurrences beneath it, so those names are taken as well.
	var addBinders func(ast.Expr)
	addBinders = func(e ast.Expr) {
		switch n := e.(type) {
		case *ast.Abstr:
			taken[n.Param] = struct{}{}
			addBinders(n.Body)
		case *ast.Appl:
			addBinders(n.Fun)
			addBinders(n.Arg)
		}
	}
	addBinders(body)
	fresh, ok := freshVariable(taken)
	if !ok {
		return 0, nil, &EvalError{Msg: "ran out of variables while renaming to avoid capture"}
	}
	return fresh, renameBound(body, param, fresh), nil
}

// freshVariable returns the first letter in a..z absent from taken.
func freshVariable(taken map[byte]struct{}) (byte, bool) {
	for b := byte('a'); b <= 'z'; b++ {
		if _, used := taken[b]; !used {
			return b, true
		}
	}
	return 0, false
}

// renameBound replaces every free occurrence of from with to in expr,
// stopping at any inner binder that rebinds from.
func renameBound(expr ast.Expr, from, to byte) ast.Expr {
	switch e := expr.(type) {
	case *ast.Name:
		return e
	case *ast.Variable:
		if e.Byte == from {
			return &ast.Variable{Byte: to}
		}
		return e
	case *ast.Appl:
		return &ast.Appl{Fun: renameBound(e.Fun, from, to), Arg: renameBound(e.Arg, from, to)}
	case *ast.Abstr:
		if e.Param == from {
			return e
		}
		return &ast.Abstr{Param: e.Param, Body: renameBound(e.Body, from, to)}
	default:
		return expr
	}
}
