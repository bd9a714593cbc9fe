/*
File    : zephyr/cmd/zephyr/main.go
Package : main

Entry point for the zephyr interpreter. Bare invocation starts the REPL;
a file argument runs a script; --watch re-runs a script on every save;
the test subcommand runs every .zp file in a directory concurrently.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/zephyrlang/zephyr/batch"
	"github.com/zephyrlang/zephyr/diag"
	"github.com/zephyrlang/zephyr/eval"
	"github.com/zephyrlang/zephyr/lexer"
	"github.com/zephyrlang/zephyr/parser"
	"github.com/zephyrlang/zephyr/repl"
	"github.com/zephyrlang/zephyr/stdlib"
	"github.com/zephyrlang/zephyr/watch"
)

const (
	version = "v0.1.0"
	line    = "----------------------------------------------------------------"
	prompt  = "zephyr >>> "
	banner  = `
   ____          _
  |_  /___ _ __ | |_ _  _ _ _
   / // -_) '_ \| ' \ || | '_|
  /___\___| .__/|_||_\_, |_|
          |_|        |__/
`
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		repl.NewREPL(banner, version, line, prompt).Start(os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		cyanColor.Printf("zephyr %s\n", version)
	case "test":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "usage: zephyr test <dir>")
			os.Exit(1)
		}
		runTests(args[1])
	default:
		if len(args) >= 2 && args[1] == "--watch" {
			runWatch(args[0])
			return
		}
		runFile(args[0])
	}
}

func showHelp() {
	cyanColor.Println("zephyr - a small expression-oriented scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  zephyr                     Start the interactive REPL")
	fmt.Println("  zephyr <file.zp>           Run a script")
	fmt.Println("  zephyr <file.zp> --watch   Re-run a script on every save")
	fmt.Println("  zephyr test <dir>          Run every .zp file in a directory")
	fmt.Println("  zephyr --help              Show this message")
	fmt.Println("  zephyr --version           Show the version")
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := evaluate(path, string(src)); err != nil {
		os.Exit(1)
	}
}

// evaluate runs one script to completion against a fresh global
// environment, printing any fatal diagnostic to stderr.
func evaluate(path, src string) error {
	tokens, lexErr := lexer.Tokenize(path, src)
	if lexErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", diag.Render(lexErr, lexErr.Span, src))
		return lexErr
	}
	prog, synErr := parser.Parse(tokens)
	if synErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", diag.Render(synErr, synErr.Span, src))
		return synErr
	}
	env := stdlib.NewDefaultGlobalEnvironment()
	if _, runErr := eval.Evaluate(prog, env); runErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", diag.Render(runErr, runErr.Span, src))
		return runErr
	}
	return nil
}

func runWatch(path string) {
	cyanColor.Printf("watching %s\n", path)
	err := watch.Watch(path, func(src string) error {
		return evaluate(path, src)
	}, func(err error) {
		redColor.Fprintf(os.Stderr, "%v\n", err)
	})
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runTests(dir string) {
	results, err := batch.Run(dir)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			redColor.Fprintf(os.Stdout, "FAIL %s: %v\n", r.Path, r.Err)
		} else {
			fmt.Printf("ok   %s\n", r.Path)
		}
	}

	fmt.Printf("%d passed, %d failed, %d total\n", len(results)-failed, failed, len(results))
	if failed > 0 {
		os.Exit(1)
	}
}
