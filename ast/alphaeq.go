/*
File    : lambda/ast/alphaeq.go
Author  : akashmaji946
*/
package ast

// AlphaEqual reports whether a and b are equal up to renaming of bound
// variables. The implementation walks both trees together, maintaining
// mutable mappings from right-side (b's) bound names to left-side (a's)
// bound names and back: on Abstr(v, _) paired with Abstr(w, _), w maps to
// v and v maps to w for the remainder of that subtree. A Variable(v) on the
// left matches a Variable(w) on the right when both are bound by the same
// pair of binders (w maps to v and v maps to w), or when both are free and
// v == w.
func AlphaEqual(a, b Expr) bool {
	return alphaEqual(a, b, make(map[byte]byte), make(map[byte]byte))
}

func alphaEqual(a, b Expr, rightToLeft, leftToRight map[byte]byte) bool {
	switch av := a.(type) {
	case *Variable:
		bv, ok := b.(*Variable)
		if !ok {
			return false
		}
		mapped, rightBound := rightToLeft[bv.Byte]
		back, leftBound := leftToRight[av.Byte]
		if rightBound || leftBound {
			return rightBound && leftBound && av.Byte == mapped && bv.Byte == back
		}
		return av.Byte == bv.Byte
	case *Name:
		bn, ok := b.(*Name)
		return ok && av.Value == bn.Value
	case *Abstr:
		bb, ok := b.(*Abstr)
		if !ok {
			return false
		}
		// A fresh mapping entry is installed even when the two binders
		// share a letter: an outer, unrelated mapping for that same
		// letter must not leak into this shadowed scope.
		next := make(map[byte]byte, len(rightToLeft)+1)
		for k, v := range rightToLeft {
			next[k] = v
		}
		next[bb.Param] = av.Param
		nextBack := make(map[byte]byte, len(leftToRight)+1)
		for k, v := range leftToRight {
			nextBack[k] = v
		}
		nextBack[av.Param] = bb.Param
		return alphaEqual(av.Body, bb.Body, next, nextBack)
	case *Appl:
		ba, ok := b.(*Appl)
		if !ok {
			return false
		}
		return alphaEqual(av.Fun, ba.Fun, rightToLeft, leftToRight) && alphaEqual(av.Arg, ba.Arg, rightToLeft, leftToRight)
	default:
		return false
	}
}
