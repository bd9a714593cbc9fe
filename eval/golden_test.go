package eval_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/zephyrlang/zephyr/eval"
	"github.com/zephyrlang/zephyr/lexer"
	"github.com/zephyrlang/zephyr/parser"
	"github.com/zephyrlang/zephyr/stdlib"
)

// TestGolden runs every testdata/*.txtar archive: each bundles a
// "script.zp" source file and an "expected.txt" printed result, the way
// this corpus's multi-file fixture archives keep a case's input and its
// expectation in one file instead of two files that can drift apart.
func TestGolden(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			archive := txtar.Parse(data)

			var script, expected string
			for _, f := range archive.Files {
				switch f.Name {
				case "script.zp":
					script = string(f.Data)
				case "expected.txt":
					expected = string(f.Data)
				}
			}
			require.NotEmpty(t, script, "archive missing script.zp")

			var buf bytes.Buffer
			env := stdlib.NewGlobalEnvironment(&buf)
			tokens, lexErr := lexer.Tokenize(path, script)
			require.Nil(t, lexErr)
			prog, synErr := parser.Parse(tokens)
			require.Nil(t, synErr)
			result, runErr := eval.Evaluate(prog, env)
			require.Nil(t, runErr, "runtime error: %v", runErr)

			assert.Equal(t, strings.TrimRight(expected, "\n"), result.Inspect())
		})
	}
}
