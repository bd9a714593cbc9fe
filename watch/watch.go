/*
File    : zephyr/watch/watch.go
Package : watch

Re-runs a script every time it changes on disk, debounced so a single
save (which can fire several fsnotify events in quick succession) only
triggers one re-run.
*/
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 150 * time.Millisecond

// Watch watches path's containing directory and calls run(src) once at
// startup and again after every write to path, reading the file fresh
// each time. run's errors are reported to stderr via onError and do not
// stop the watch loop; Watch itself only returns on a watcher setup or
// teardown failure.
func Watch(path string, run func(src string) error, onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	rerun := func() {
		src, err := os.ReadFile(path)
		if err != nil {
			onError(err)
			return
		}
		if err := run(string(src)); err != nil {
			onError(err)
		}
	}

	rerun()

	var timer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, rerun)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(err)
		}
	}
}
