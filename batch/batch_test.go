package batch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrlang/zephyr/batch"
)

func writeScript(t *testing.T, dir, name, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
}

func TestRun_ReportsPassAndFailPerFile(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "ok.zp", `1 + 1`)
	writeScript(t, dir, "bad.zp", `1 + `)
	writeScript(t, dir, "notes.txt", `ignored`)

	results, err := batch.Run(dir)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := map[string]batch.Result{}
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}

	assert.NoError(t, byName["ok.zp"].Err)
	assert.Error(t, byName["bad.zp"].Err)
}

func TestRun_EmptyDirectoryReturnsNoResults(t *testing.T) {
	dir := t.TempDir()
	results, err := batch.Run(dir)
	require.NoError(t, err)
	assert.Empty(t, results)
}
