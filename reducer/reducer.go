/*
File    : lambda/reducer/reducer.go
Author  : akashmaji946
*/

// Package reducer implements normal-order (leftmost-outermost) evaluation
// of lambda-calculus expressions: β-reduction via capture-avoiding
// substitution, η-reduction, Name resolution against a definitions
// environment or as a Church-numeral literal, and the iteration/size
// budgets that keep a divergent reduction from running forever.
package reducer

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/lambda/ast"
	"github.com/akashmaji946/lambda/defs"
)

const (
	// DefaultMaxIterations and DefaultMaxSize bound a reduction that never
	// reaches normal form: ten million outer passes, or a tree past ten
	// million nodes, and Reduce gives up with an EvalError.
	DefaultMaxIterations = 10_000_000
	DefaultMaxSize       = 10_000_000
)

// Reducer drives repeated normal-order passes over an expression until it
// stops changing (reaches normal form) or a budget is exceeded.
type Reducer struct {
	MaxIterations int
	MaxSize       int
}

// New returns a Reducer configured with the default iteration and size
// budgets.
func New() *Reducer {
	return &Reducer{MaxIterations: DefaultMaxIterations, MaxSize: DefaultMaxSize}
}

// Reduce repeatedly applies one normal-order pass to expr, consulting d
// for Name resolution, until a pass makes no further progress. It returns
// the resulting expression and the accumulated statistics, or an
// EvalError if the configured iteration or size budget is exceeded.
func (r *Reducer) Reduce(expr ast.Expr, d *defs.Definitions) (ast.Expr, *Stats, error) {
	stats := &Stats{}

	for i := 1; i <= r.MaxIterations; i++ {
		stats.reduced = false
		stats.Size = 0

		reduced, err := r.doReduce(expr, d, stats)
		if err != nil {
			return nil, stats, err
		}
		expr = reduced

		if stats.Size > stats.MaxSize {
			stats.MaxSize = stats.Size
		}
		if !stats.reduced {
			break
		}
		if stats.Size > r.MaxSize {
			return nil, stats, &EvalError{Msg: fmt.Sprintf("size outgrew maximum size: %d out of %d", stats.Size, r.MaxSize)}
		}
		if i == r.MaxIterations {
			return nil, stats, &EvalError{Msg: fmt.Sprintf("iteration limit reached: %d", r.MaxIterations)}
		}
	}

	return expr, stats, nil
}

// doReduce performs one normal-order pass: it reduces the outermost
// redex it finds and recurses into the surrounding structure, leaving
// already-irreducible subtrees untouched. stats.reduced reports whether
// this pass changed anything; Reduce calls doReduce again until it does
// not.
func (r *Reducer) doReduce(expr ast.Expr, d *defs.Definitions, stats *Stats) (ast.Expr, error) {
	stats.Depth++
	stats.Size++
	if stats.Depth > stats.MaxDepth {
		stats.MaxDepth = stats.Depth
	}
	defer func() { stats.Depth-- }()

	switch e := expr.(type) {
	case *ast.Variable:
		return e, nil

	case *ast.Name:
		if def, ok := d.Get(e.Value); ok {
			stats.reduced = true
			stats.Size--
			return def.Value.Clone(), nil
		}
		if n, ok := parseChurchLiteral(e.Value); ok {
			stats.reduced = true
			stats.Size--
			return ast.ChurchEncode(n), nil
		}
		return e, nil

	case *ast.Abstr:
		// Eta: \a.(E a) reduces to E when a is not free in E.
		if appl, ok := e.Body.(*ast.Appl); ok {
			if last, ok := appl.Arg.(*ast.Variable); ok && last.Byte == e.Param {
				rest := ast.FreeVars(appl.Fun)
				if _, free := rest[e.Param]; !free {
					stats.Etas++
					stats.reduced = true
					stats.Size--
					return r.doReduce(appl.Fun, d, stats)
				}
			}
		}
		body, err := r.doReduce(e.Body, d, stats)
		if err != nil {
			return nil, err
		}
		return &ast.Abstr{Param: e.Param, Body: body}, nil

	case *ast.Appl:
		if abstr, ok := e.Fun.(*ast.Abstr); ok {
			stats.Betas++
			stats.reduced = true
			res, err := substitute(abstr.Body, abstr.Param, e.Arg)
			if err != nil {
				return nil, err
			}
			stats.Size += ast.Size(res) - 1
			return res, nil
		}

		sizeBefore := stats.Size
		reducedFun, err := r.doReduce(e.Fun, d, stats)
		if err != nil {
			return nil, err
		}
		if abstr, ok := reducedFun.(*ast.Abstr); ok {
			stats.Betas++
			stats.reduced = true
			res, err := substitute(abstr.Body, abstr.Param, e.Arg)
			if err != nil {
				return nil, err
			}
			stats.Size = sizeBefore + ast.Size(res) - 1
			return res, nil
		}

		reducedArg, err := r.doReduce(e.Arg, d, stats)
		if err != nil {
			return nil, err
		}
		stats.Size--
		return &ast.Appl{Fun: reducedFun, Arg: reducedArg}, nil

	default:
		return e, nil
	}
}

// parseChurchLiteral recognizes a Name whose value is a plain base-10
// natural number, the surface syntax for a Church numeral constant.
func parseChurchLiteral(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
