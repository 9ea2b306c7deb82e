/*
File    : lambda/ast/church.go
Author  : akashmaji946
*/
package ast

// ChurchEncode builds the canonical Church-numeral encoding of n:
// \f.\x. f (f ( ... (f x) ... )) with n applications of f. n == 0 encodes
// to \f.\x.x. The bound letters f and x are fixed by convention; callers
// that substitute this into a larger expression rely on the reducer's
// α-renaming to avoid capture, the same as any other substituted value.
func ChurchEncode(n uint64) Expr {
	var body Expr = &Variable{Byte: 'x'}
	for i := uint64(0); i < n; i++ {
		body = &Appl{Fun: &Variable{Byte: 'f'}, Arg: body}
	}
	return &Abstr{Param: 'f', Body: &Abstr{Param: 'x', Body: body}}
}

// ChurchDecode recognizes Abstr(f, Abstr(x, body)) where body is a
// right-leaning spine of Appl(Variable(f), ...) terminating in
// Variable(x), and returns the application count. It is meant to be
// applied only to a fully reduced expression; partially reduced terms
// will generally fail to match and return ok == false.
func ChurchDecode(e Expr) (n uint64, ok bool) {
	outer, ok := e.(*Abstr)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(*Abstr)
	if !ok {
		return 0, false
	}
	f, x := outer.Param, inner.Param
	if f == x {
		return 0, false
	}

	body := inner.Body
	count := uint64(0)
	for {
		if v, isVar := body.(*Variable); isVar {
			if v.Byte == x {
				return count, true
			}
			return 0, false
		}
		appl, isAppl := body.(*Appl)
		if !isAppl {
			return 0, false
		}
		fun, isVar := appl.Fun.(*Variable)
		if !isVar || fun.Byte != f {
			return 0, false
		}
		count++
		body = appl.Arg
	}
}
