/*
File    : lambda/driver/driver.go
Author  : akashmaji946
*/

// Package driver wires the lexer, parser, and reducer into the two
// non-interactive entry points the CLI needs: evaluating a whole source
// file, and evaluating arbitrary input already available as an
// io.Reader (a file handle, stdin, or an in-memory buffer in tests).
// It owns the exit-code convention and the stdout/stderr split: the
// reduced expression goes to w, every progress line, error, and the
// trailing stats/Church-numeral line go to errw.
package driver

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/lambda/ast"
	"github.com/akashmaji946/lambda/defs"
	"github.com/akashmaji946/lambda/lexer"
	"github.com/akashmaji946/lambda/parser"
	"github.com/akashmaji946/lambda/reducer"
)

// Exit codes returned by RunFile/RunReader, matched by cmd/lambda to set
// the process exit status.
const (
	ExitOK         = 0
	ExitLexError   = 1
	ExitParseError = 2
	ExitEvalError  = 3
	ExitIOError    = 4
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

// RunFile opens path, evaluates its contents, and writes the result to w
// and every progress/error/stats line to errw. It returns the process
// exit code the caller should use.
func RunFile(w, errw io.Writer, path string, quiet bool) int {
	f, err := os.Open(path)
	if err != nil {
		redColor.Fprintf(errw, "cannot open %s: %v\n", path, err)
		return ExitIOError
	}
	defer f.Close()
	return RunReader(w, errw, f, path, quiet)
}

// RunReader evaluates the full contents of r, named name for progress and
// error messages (a file path, or "-" for stdin), writing the reduced
// expression to w and everything else — progress lines, errors, Stats,
// and an optional decoded Church numeral — to errw.
func RunReader(w, errw io.Writer, r io.Reader, name string, quiet bool) int {
	if !quiet {
		cyanColor.Fprintf(errw, "Lexing %s...\n", name)
	}
	lex, err := lexer.FromReader(r)
	if err != nil {
		redColor.Fprintf(errw, "%s: %s\n", name, err)
		return ExitLexError
	}
	toks, err := lex.ConsumeTokens()
	if err != nil {
		redColor.Fprintf(errw, "%s: %s\n", name, err)
		return ExitLexError
	}

	if !quiet {
		cyanColor.Fprintf(errw, "Parsing %s...\n", name)
	}
	d, main, err := parser.New(toks).Parse()
	if err != nil {
		redColor.Fprintf(errw, "%s: %s\n", name, err)
		return ExitParseError
	}

	if main == nil {
		if !quiet {
			cyanColor.Fprintf(errw, "%d definition(s) loaded, no expression to evaluate\n", countDefs(d))
		}
		return ExitOK
	}
	if !quiet {
		cyanColor.Fprintf(errw, "%s\n", main.String())
	}

	if !quiet {
		cyanColor.Fprintf(errw, "Evaluating %s...\n", name)
	}
	red := reducer.New()
	result, stats, err := red.Reduce(main, d)
	if err != nil {
		redColor.Fprintf(errw, "%s: %s\n", name, err)
		return ExitEvalError
	}

	yellowColor.Fprintf(w, "%s\n\n", result.String())
	if !quiet {
		cyanColor.Fprint(errw, stats.String())
		if n, ok := ast.ChurchDecode(result); ok {
			cyanColor.Fprintf(errw, "Church num!: %d\n", n)
		}
	}
	return ExitOK
}

func countDefs(d *defs.Definitions) int {
	if d == nil {
		return 0
	}
	return d.Len()
}
