package filenotify

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is the stat interval used by NewPollingWatcher.
const DefaultPollInterval = 200 * time.Millisecond

// pollingWatcher implements FileWatcher by periodically stat-ing the
// watched paths and synthesizing fsnotify events on change.
type pollingWatcher struct {
	interval time.Duration

	mu      sync.Mutex
	watched map[string]stamp

	events chan fsnotify.Event
	errs   chan error
	stop   chan struct{}
	done   chan struct{}
}

// stamp is the part of a stat result that change detection compares.
type stamp struct {
	modTime time.Time
	size    int64
}

// NewPollingWatcher returns a polling FileWatcher with the default
// interval.
func NewPollingWatcher() FileWatcher {
	return NewPollingWatcherWithInterval(DefaultPollInterval)
}

// NewPollingWatcherWithInterval returns a polling FileWatcher that
// stats its paths every interval.
func NewPollingWatcherWithInterval(interval time.Duration) FileWatcher {
	w := &pollingWatcher{
		interval: interval,
		watched:  make(map[string]stamp),
		events:   make(chan fsnotify.Event),
		errs:     make(chan error),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *pollingWatcher) Events() <-chan fsnotify.Event {
	return w.events
}

func (w *pollingWatcher) Errors() <-chan error {
	return w.errs
}

func (w *pollingWatcher) Add(name string) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.watched[name] = stamp{modTime: info.ModTime(), size: info.Size()}
	return nil
}

func (w *pollingWatcher) Remove(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.watched[name]; !ok {
		return errors.New("file or directory is not being watched")
	}
	delete(w.watched, name)
	return nil
}

func (w *pollingWatcher) Close() error {
	close(w.stop)
	<-w.done
	close(w.events)
	close(w.errs)
	return nil
}

func (w *pollingWatcher) loop() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep()
		case <-w.stop:
			return
		}
	}
}

// sweep stats every watched path and emits events for anything that
// changed or disappeared since the last sweep. Sends race against
// stop so Close never hangs on a consumer that has gone away.
func (w *pollingWatcher) sweep() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for name, last := range w.watched {
		info, err := os.Stat(name)
		if err != nil {
			if os.IsNotExist(err) {
				delete(w.watched, name)
				if !w.send(fsnotify.Event{Name: name, Op: fsnotify.Remove}) {
					return
				}
			} else {
				select {
				case w.errs <- err:
				case <-w.stop:
					return
				}
			}
			continue
		}

		current := stamp{modTime: info.ModTime(), size: info.Size()}
		if current != last {
			w.watched[name] = current
			if !w.send(fsnotify.Event{Name: name, Op: fsnotify.Write}) {
				return
			}
		}
	}
}

// send delivers an event unless the watcher is stopping; it reports
// whether the sweep should continue.
func (w *pollingWatcher) send(event fsnotify.Event) bool {
	select {
	case w.events <- event:
		return true
	case <-w.stop:
		return false
	}
}
