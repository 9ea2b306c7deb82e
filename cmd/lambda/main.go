/*
File    : lambda/cmd/lambda/main.go
Author  : akashmaji946
*/

// Command lambda is the command-line front end for the untyped
// lambda-calculus evaluator: eval runs a source file or an inline
// expression to normal form, repl opens an interactive session, and
// help prints usage.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/lambda/defs"
	"github.com/akashmaji946/lambda/driver"
	"github.com/akashmaji946/lambda/lexer"
	"github.com/akashmaji946/lambda/parser"
	"github.com/akashmaji946/lambda/repl"
	"github.com/akashmaji946/lambda/token"
)

const (
	banner = `  __                  _         _
 / _\ ___  ___  ___ | |_  __ _| | __
 \ \ / _ \/ _ \/ _ \| __|/ _  | |/ /
 _\ \  __/  __/ (_) | |_| (_| |   <
 \__/\___|\___|\___/ \__|\__,_|_|\_\`
	version = "0.1.0"
	author  = "akashmaji946"
	line    = "----------------------------------------"
	prompt  = "lambda> "
)

var (
	noColor bool
	quiet   bool
)

func main() {
	root := &cobra.Command{
		Use:   "lambda",
		Short: "An untyped lambda-calculus evaluator",
		Long:  banner + "\n\n" + "An untyped lambda-calculus evaluator: lex, parse, and normal-order reduce.",
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress the Lexing/Parsing/Evaluating progress lines and trailing stats")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	}

	root.AddCommand(evalCmd())
	root.AddCommand(replCmd())
	root.InitDefaultHelpCmd()
	for _, c := range root.Commands() {
		if c.Name() == "help" {
			c.Aliases = append(c.Aliases, "h")
		}
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// evalCmd evaluates each file argument in turn, "-" or no arguments
// meaning stdin; --expr evaluates an inline expression instead.
func evalCmd() *cobra.Command {
	var expr string
	cmd := &cobra.Command{
		Use:     "eval [FILE ...]",
		Aliases: []string{"e"},
		Short:   "Evaluate each file (or stdin) to normal form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if expr != "" {
				code := driver.RunReader(os.Stdout, os.Stderr, strings.NewReader(expr), "<expr>", quiet)
				if code != driver.ExitOK {
					os.Exit(code)
				}
				return nil
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			worst := driver.ExitOK
			for _, path := range args {
				var code int
				if path == "-" {
					code = driver.RunReader(os.Stdout, os.Stderr, os.Stdin, "-", quiet)
				} else {
					code = driver.RunFile(os.Stdout, os.Stderr, path, quiet)
				}
				if code != driver.ExitOK {
					worst = code
				}
			}
			if worst != driver.ExitOK {
				os.Exit(worst)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&expr, "expr", "", "evaluate an inline expression instead of a file")
	return cmd
}

func replCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repl [file...]",
		Aliases: []string{"r"},
		Short:   "Start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			preloaded := defs.New()
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("cannot open %s: %w", path, err)
				}
				toks, err := mustLex(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				d, _, err := parser.New(toks).Parse()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				preloaded.Merge(d)
			}

			session := repl.New(banner, version, author, line, prompt)
			session.NoColor = noColor
			return session.Start(os.Stdout, preloaded)
		},
	}
	return cmd
}

func mustLex(f *os.File) ([]token.Token, error) {
	lex, err := lexer.FromReader(f)
	if err != nil {
		return nil, err
	}
	return lex.ConsumeTokens()
}
