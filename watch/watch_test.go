package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrlang/zephyr/watch"
)

func TestWatch_RunsOnStartupAndAfterEachSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.zp")
	require.NoError(t, os.WriteFile(path, []byte("1"), 0o644))

	var seen []string
	done := make(chan struct{})
	go func() {
		_ = watch.Watch(path, func(src string) error {
			seen = append(seen, src)
			if len(seen) == 2 {
				close(done)
			}
			return nil
		}, func(error) {})
	}()

	// give the watcher time to register the initial run, then trigger a
	// second one by rewriting the file.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("2"), 0o644))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the second run")
	}

	assert.Equal(t, "1", seen[0])
	assert.Equal(t, "2", seen[1])
}
