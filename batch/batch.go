/*
File    : zephyr/batch/batch.go
Package : batch

Runs every .zp script in a directory concurrently, one fresh interpreter
per file, and reports pass/fail for each. A script "passes" if it
tokenizes, parses, and evaluates without error.
*/
package batch

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/zephyrlang/zephyr/eval"
	"github.com/zephyrlang/zephyr/lexer"
	"github.com/zephyrlang/zephyr/parser"
	"github.com/zephyrlang/zephyr/stdlib"
)

// Result is the outcome of running one script.
type Result struct {
	Path string
	Err  error
}

// Run discovers every *.zp file directly inside dir, evaluates each one
// against its own global environment concurrently (bounded by
// runtime.GOMAXPROCS), and returns one Result per file in the same order
// they were discovered (alphabetical by path), regardless of which
// goroutine finished first.
func Run(dir string) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".zp" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	results := make([]Result, len(paths))
	group, _ := errgroup.WithContext(context.Background())
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		group.Go(func() error {
			results[i] = Result{Path: path, Err: runOne(path)}
			return nil
		})
	}
	_ = group.Wait() // runOne never returns an error to the group; failures live in Result.Err

	return results, nil
}

func runOne(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tokens, lexErr := lexer.Tokenize(path, string(src))
	if lexErr != nil {
		return lexErr
	}
	prog, synErr := parser.Parse(tokens)
	if synErr != nil {
		return synErr
	}
	env := stdlib.NewDefaultGlobalEnvironment()
	if _, runErr := eval.Evaluate(prog, env); runErr != nil {
		return runErr
	}
	return nil
}
