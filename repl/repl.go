/*
File    : lambda/repl/repl.go
Author  : akashmaji946
*/

// Package repl implements the interactive Read-Eval-Print Loop for the
// lambda evaluator. The REPL keeps one growing definitions environment
// across lines, accepts the bare grammar (definitions and expressions)
// on every line, and understands a small set of `:`-prefixed meta
// commands that act on that environment rather than evaluating it.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lambda/ast"
	"github.com/akashmaji946/lambda/defs"
	"github.com/akashmaji946/lambda/lexer"
	"github.com/akashmaji946/lambda/parser"
	"github.com/akashmaji946/lambda/reducer"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner and prompt text shown at startup; its methods
// carry no other state so every Start call begins with a fresh
// definitions environment.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
	NoColor bool
}

// New creates a Repl with the given display configuration.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

func (r *Repl) disableColor() {
	for _, c := range []*color.Color{blueColor, yellowColor, redColor, greenColor, cyanColor} {
		c.DisableColor()
	}
}

// PrintBannerInfo writes the startup banner and a short command summary.
func (r *Repl) PrintBannerInfo(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Enter definitions (Name = expr;) and expressions to reduce them.")
	cyanColor.Fprintln(w, "Meta commands: :quit :defs :names :clear")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop against w until the user quits or input ends.
// preloaded, if non-nil, seeds the definitions environment before the
// first prompt (used for `lambda repl file.lc`).
func (r *Repl) Start(w io.Writer, preloaded *defs.Definitions) error {
	if r.NoColor {
		r.disableColor()
	}
	r.PrintBannerInfo(w)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: w})
	if err != nil {
		return err
	}
	defer rl.Close()

	env := defs.New()
	if preloaded != nil {
		env.Merge(preloaded)
	}
	red := reducer.New()

	for {
		line, err := rl.Readline()
		if err != nil { // EOF (Ctrl-D) or interrupt
			fmt.Fprintln(w, "Good bye.")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		if quit, handled := r.runCommand(w, env, line); handled {
			if quit {
				fmt.Fprintln(w, "Good bye.")
				return nil
			}
			continue
		}

		r.evalLine(w, env, red, line)
	}
}

// runCommand interprets a leading ':'-command. handled reports whether
// line was a command at all (so callers know not to also evaluate it);
// quit reports whether the REPL should exit.
func (r *Repl) runCommand(w io.Writer, env *defs.Definitions, line string) (quit, handled bool) {
	if !strings.HasPrefix(line, ":") {
		return false, false
	}
	name := strings.TrimPrefix(line, ":")
	if idx := strings.IndexByte(name, ' '); idx >= 0 {
		name = name[:idx]
	}

	switch name {
	case "quit", "q", "exit":
		return true, true
	case "defs":
		for _, n := range env.Names() {
			def, _ := env.Get(n)
			fmt.Fprintf(w, "%s = %s;\n", n, def.Value.String())
		}
		return false, true
	case "names":
		fmt.Fprintln(w, strings.Join(env.Names(), ", "))
		return false, true
	case "clear", "cl":
		fmt.Fprint(w, "\x1b[2J\x1b[H")
		return false, true
	default:
		redColor.Fprintf(w, "Unknown command: %s\n", name)
		return false, true
	}
}

// evalLine lexes and parses one line, merges any definitions it carries
// into env, and reduces and prints a trailing expression if present.
// Errors are reported in red; the loop always continues afterward.
func (r *Repl) evalLine(w io.Writer, env *defs.Definitions, red *reducer.Reducer, line string) {
	toks, err := lexer.New([]byte(line)).ConsumeTokens()
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	parsed, main, err := parser.New(toks).Parse()
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	env.Merge(parsed)

	if main == nil {
		return
	}

	var result ast.Expr
	result, _, err = red.Reduce(main, env)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	yellowColor.Fprintf(w, "%s\n", result.String())
	if n, ok := ast.ChurchDecode(result); ok {
		cyanColor.Fprintf(w, "Church num!: %d\n", n)
	}
}
