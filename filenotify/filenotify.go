// Package filenotify watches files for changes. It prefers fsnotify
// and falls back to a polling watcher on platforms where inotify-style
// events are unavailable, behind a single interface.
package filenotify

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher delivers change events for watched files and directories.
type FileWatcher interface {
	// Events yields one fsnotify.Event per detected change
	Events() <-chan fsnotify.Event
	// Errors yields failures encountered while watching
	Errors() <-chan error
	// Add puts the named file or directory under watch
	Add(name string) error
	// Remove drops the named file or directory from the watch set
	Remove(name string) error
	// Close tears the watcher down; both channels are closed
	Close() error
}

// New returns an fs-event watcher, or the polling fallback if one
// cannot be created.
func New() (FileWatcher, error) {
	if w, err := NewEventWatcher(); err == nil {
		return w, nil
	}
	return NewPollingWatcher(), nil
}

// eventWatcher exposes an fsnotify watcher through the FileWatcher
// interface directly; fsnotify already owns its channels.
type eventWatcher struct {
	*fsnotify.Watcher
}

// NewEventWatcher returns a FileWatcher backed by fsnotify.
func NewEventWatcher() (FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return &eventWatcher{Watcher: w}, nil
}

func (w *eventWatcher) Events() <-chan fsnotify.Event {
	return w.Watcher.Events
}

func (w *eventWatcher) Errors() <-chan error {
	return w.Watcher.Errors
}
