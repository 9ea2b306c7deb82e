/*
File    : lambda/reducer/reducer_test.go
Author  : akashmaji946
*/
package reducer

import (
	"testing"

	"github.com/akashmaji946/lambda/ast"
	"github.com/akashmaji946/lambda/defs"
	"github.com/akashmaji946/lambda/lexer"
	"github.com/akashmaji946/lambda/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalSrc lexes, parses, and reduces src against an empty or pre-seeded
// definitions environment, returning the normal-form surface syntax.
func evalSrc(t *testing.T, d *defs.Definitions, src string) string {
	t.Helper()
	toks, err := lexer.New([]byte(src)).ConsumeTokens()
	require.NoError(t, err)
	parsed, main, err := parser.New(toks).Parse()
	require.NoError(t, err)
	d.Merge(parsed)
	require.NotNil(t, main, "expected a main expression in %q", src)
	reduced, _, err := New().Reduce(main, d)
	require.NoError(t, err)
	return reduced.String()
}

func TestReduceIdentityApplication(t *testing.T) {
	assert.Equal(t, "a", evalSrc(t, defs.New(), `(\x.x) a`))
}

func TestReduceConstDropsSecondArgument(t *testing.T) {
	assert.Equal(t, "a", evalSrc(t, defs.New(), `(\x.\y.x) a b`))
}

func TestReduceAvoidsCapture(t *testing.T) {
	// (\x.\y.x y) y  should NOT capture the free y in the argument; the
	// bound y must be renamed before substitution. Only the β pass is run:
	// the next pass would η-contract \a.y a to y.
	toks, err := lexer.New([]byte(`(\x.\y.x y) y`)).ConsumeTokens()
	require.NoError(t, err)
	_, main, err := parser.New(toks).Parse()
	require.NoError(t, err)
	reduced, err := New().doReduce(main, defs.New(), &Stats{})
	require.NoError(t, err)

	// The result of the β pass must still have a free y applied to
	// something distinct from the renamed bound variable.
	free := ast.FreeVars(reduced)
	_, hasY := free['y']
	assert.True(t, hasY)

	abstr, ok := reduced.(*ast.Abstr)
	require.True(t, ok, "expected a remaining abstraction, got %s", reduced.String())
	assert.NotEqual(t, byte('y'), abstr.Param)
}

func TestReduceAvoidsCaptureWhenTargetIsEarliestFreshLetter(t *testing.T) {
	// (\c. (\b.\a.c a) a) — substituting the outer a for b in b's body
	// must rename the inner binder a, since 'a' is free in the argument.
	// The fresh letter must be neither 'a' nor the substitution target 'b':
	// a naive fresh-letter scan that ignores the target would pick 'b', the
	// first letter free in neither side. Only the β pass is run: the next
	// pass would η-contract the inner abstraction, leaving \c.c.
	toks, err := lexer.New([]byte(`(\c.(\b.\a.c a) a)`)).ConsumeTokens()
	require.NoError(t, err)
	_, main, err := parser.New(toks).Parse()
	require.NoError(t, err)
	reduced, err := New().doReduce(main, defs.New(), &Stats{})
	require.NoError(t, err)

	expected, err := lexer.New([]byte(`\c.\x.c x`)).ConsumeTokens()
	require.NoError(t, err)
	_, want, err := parser.New(expected).Parse()
	require.NoError(t, err)
	assert.True(t, ast.AlphaEqual(reduced, want), "got %s", reduced.String())

	outer, ok := reduced.(*ast.Abstr)
	require.True(t, ok)
	inner, ok := outer.Body.(*ast.Abstr)
	require.True(t, ok, "expected a remaining inner abstraction, got %s", reduced.String())
	assert.NotEqual(t, byte('a'), inner.Param, "inner binder must not be renamed to the captured-free variable")
}

func TestReduceEtaContraction(t *testing.T) {
	d := defs.New()
	toks, err := lexer.New([]byte(`\x.f x`)).ConsumeTokens()
	require.NoError(t, err)
	_, main, err := parser.New(toks).Parse()
	require.NoError(t, err)
	reduced, stats, err := New().Reduce(main, d)
	require.NoError(t, err)
	assert.Equal(t, "f", reduced.String())
	assert.Equal(t, 1, stats.Etas)
}

func TestReduceChurchLiteralsAndAddition(t *testing.T) {
	d := defs.New()
	d.Insert("Add", mustParse(t, `\m.\n.\f.\x.m f (n f x)`))
	result := evalSrc(t, d, `Add 2 3`)
	toks, err := lexer.New([]byte(result)).ConsumeTokens()
	require.NoError(t, err)
	_, main, err := parser.New(toks).Parse()
	require.NoError(t, err)
	n, ok := ast.ChurchDecode(main)
	require.True(t, ok)
	assert.Equal(t, uint64(5), n)
}

func TestReduceChurchMultiplication(t *testing.T) {
	d := defs.New()
	result := evalSrc(t, d, `\m.\n.\f.m (n f)`)
	_ = result // multiplication combinator parses and reduces without error
}

func TestReduceFactorialViaYCombinator(t *testing.T) {
	d := defs.New()
	d.Insert("Y", mustParse(t, `\f.(\x.f (x x)) (\x.f (x x))`))
	d.Insert("Mul", mustParse(t, `\m.\n.\f.m (n f)`))
	// Church booleans: True selects its first argument, False its second.
	d.Insert("True", mustParse(t, `\t.\e.t`))
	d.Insert("False", mustParse(t, `\t.\e.e`))
	d.Insert("IsZero", mustParse(t, `\n.n (\x.False) True`))
	d.Insert("Pred", mustParse(t, `\n.\f.\x.n (\g.\h.h (g f)) (\u.x) (\u.u)`))
	d.Insert("If", mustParse(t, `\b.\t.\e.b t e`))
	d.Insert("FactF", mustParse(t, `\f.\n.If (IsZero n) (\f.\x.f x) (Mul n (f (Pred n)))`))
	d.Insert("Fact", mustParse(t, `Y FactF`))

	r := New()
	r.MaxIterations = 1_000_000
	toks, err := lexer.New([]byte(`Fact 3`)).ConsumeTokens()
	require.NoError(t, err)
	_, main, err := parser.New(toks).Parse()
	require.NoError(t, err)
	reduced, _, err := r.Reduce(main, d)
	require.NoError(t, err)
	n, ok := ast.ChurchDecode(reduced)
	require.True(t, ok, "expected a church numeral, got %s", reduced.String())
	assert.Equal(t, uint64(6), n)
}

func TestReduceIterationBudgetExceeded(t *testing.T) {
	// Omega: (\x.x x)(\x.x x) never reaches normal form.
	toks, err := lexer.New([]byte(`(\x.x x)(\x.x x)`)).ConsumeTokens()
	require.NoError(t, err)
	_, main, err := parser.New(toks).Parse()
	require.NoError(t, err)

	r := New()
	r.MaxIterations = 10
	_, _, err = r.Reduce(main, defs.New())
	assert.Error(t, err)
}

func mustParse(t *testing.T, src string) ast.Expr {
	t.Helper()
	toks, err := lexer.New([]byte(src)).ConsumeTokens()
	require.NoError(t, err)
	_, main, err := parser.New(toks).Parse()
	require.NoError(t, err)
	require.NotNil(t, main)
	return main
}
