// Package watcher re-evaluates a calculator script whenever it changes
// on disk, showing the current result on a live terminal line.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gosuri/uilive"

	"github.com/bond-kaneko/go-calc-check/filenotify"
	"github.com/bond-kaneko/go-calc-check/script"
)

// ScriptWatcher watches one script file and keeps its evaluated result
// up to date.
type ScriptWatcher struct {
	path          string
	debounceDelay time.Duration
	watcher       filenotify.FileWatcher
	writer        *uilive.Writer
	stop          chan struct{}
	stopOnce      sync.Once

	// evalMu serializes evaluate; a debounce timer that already fired
	// can still be running when the next one is armed
	evalMu sync.Mutex
	evals  int
}

// New creates a watcher for the script at path.
func New(path string) (*ScriptWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve script path: %w", err)
	}

	fw, err := filenotify.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize watcher: %w", err)
	}

	writer := uilive.New()
	writer.RefreshInterval = time.Millisecond * 100

	return &ScriptWatcher{
		path:          abs,
		debounceDelay: 500 * time.Millisecond,
		watcher:       fw,
		writer:        writer,
		stop:          make(chan struct{}),
	}, nil
}

// SetDebounceDelay sets the delay between a change event and
// re-evaluation.
func (sw *ScriptWatcher) SetDebounceDelay(delay time.Duration) {
	sw.debounceDelay = delay
}

// SetOutput redirects the live result line, mainly for tests.
func (sw *ScriptWatcher) SetOutput(w *uilive.Writer) {
	sw.writer = w
}

// Run evaluates the script once, then blocks re-evaluating it on every
// write until Stop is called.
func (sw *ScriptWatcher) Run() error {
	// Watch the directory rather than the file itself, so editors
	// that write via rename keep delivering events.
	if err := sw.watcher.Add(filepath.Dir(sw.path)); err != nil {
		return fmt.Errorf("error setting up script watch: %w", err)
	}
	// Watch the file itself as well; the polling fallback only sees
	// writes on paths it stats directly.
	if err := sw.watcher.Add(sw.path); err != nil {
		return fmt.Errorf("error watching script file: %w", err)
	}

	sw.writer.Start()
	defer sw.writer.Stop()

	sw.evaluate()

	var debounceTimer *time.Timer

	for {
		select {
		case <-sw.stop:
			return nil

		case event, ok := <-sw.watcher.Events():
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != sw.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				// Debounce to evaluate only once for a burst of writes
				debounceTimer = time.AfterFunc(sw.debounceDelay, sw.evaluate)
			}

		case err, ok := <-sw.watcher.Errors():
			if !ok {
				return nil
			}
			fmt.Fprintf(sw.writer, "Watch error: %v\n", err)
			sw.writer.Flush()
		}
	}
}

// Stop stops the watcher; Run returns after the current event is
// handled.
func (sw *ScriptWatcher) Stop() {
	sw.stopOnce.Do(func() {
		close(sw.stop)
		sw.watcher.Close()
	})
}

// evaluate re-parses and re-evaluates the script, updating the live
// line with the result or the parse error.
func (sw *ScriptWatcher) evaluate() {
	sw.evalMu.Lock()
	defer sw.evalMu.Unlock()

	sw.evals++

	result, err := script.EvalFile(sw.path)
	if err != nil {
		fmt.Fprintf(sw.writer, "%s: %v\n", filepath.Base(sw.path), err)
	} else {
		fmt.Fprintf(sw.writer, "%s => %g (evaluation #%d)\n", filepath.Base(sw.path), result, sw.evals)
	}
	sw.writer.Flush()
}
