/*
File    : zephyr/repl/repl.go
Package : repl

Read-Eval-Print Loop for Zephyr. Each line (or block, once the user
types enough to close every open `if`/`for`/`while`/`func`) is
tokenized, parsed, and evaluated against one persistent environment so
variables and functions defined at one prompt survive to the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/zephyrlang/zephyr/diag"
	"github.com/zephyrlang/zephyr/eval"
	"github.com/zephyrlang/zephyr/lexer"
	"github.com/zephyrlang/zephyr/object"
	"github.com/zephyrlang/zephyr/parser"
	"github.com/zephyrlang/zephyr/stdlib"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// REPL holds the banner text and prompt used by an interactive session.
type REPL struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// NewREPL builds a REPL with the given banner, version string, and prompt.
func NewREPL(banner, version, line, prompt string) *REPL {
	return &REPL{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *REPL) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "zephyr "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type an expression and press enter. Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL main loop until the user exits or sends EOF.
func (r *REPL) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := stdlib.NewGlobalEnvironment(w)

	var pending strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("bye\n"))
			return
		}

		trimmed := strings.TrimRight(line, " \t\r")
		if pending.Len() == 0 && trimmed == ".exit" {
			w.Write([]byte("bye\n"))
			return
		}
		if pending.Len() == 0 && trimmed == "" {
			continue
		}

		if pending.Len() > 0 {
			pending.WriteByte('\n')
		}
		pending.WriteString(line)
		rl.SaveHistory(line)

		src := pending.String()
		tokens, lexErr := lexer.Tokenize("<repl>", src)
		if lexErr != nil {
			pending.Reset()
			redColor.Fprintf(w, "%s\n", diag.Render(lexErr, lexErr.Span, src))
			continue
		}

		prog, synErr := parser.Parse(tokens)
		if synErr != nil {
			if needsMoreInput(synErr) {
				continue // wait for the user to finish the block
			}
			pending.Reset()
			redColor.Fprintf(w, "%s\n", diag.Render(synErr, synErr.Span, src))
			continue
		}

		pending.Reset()
		result, runErr := eval.Evaluate(prog, env)
		if runErr != nil {
			redColor.Fprintf(w, "%s\n", diag.Render(runErr, runErr.Span, src))
			continue
		}
		if _, isNull := result.(*object.Null); isNull {
			continue // a Null result prints nothing
		}
		yellowColor.Fprintf(w, "%s\n", object.Echo(result))
	}
}

// needsMoreInput reports whether a syntax error looks like it was caused
// by input ending mid-construct (an unterminated block) rather than a
// genuine mistake, so the REPL can keep collecting lines instead of
// reporting the error immediately.
func needsMoreInput(err *diag.SyntaxError) bool {
	return strings.Contains(err.Detail, "unexpected end of input") ||
		strings.Contains(err.Detail, `expected keyword "end"`) ||
		strings.HasSuffix(err.Detail, `EOF ""`)
}
