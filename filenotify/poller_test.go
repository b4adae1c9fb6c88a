package filenotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollingWatcherDetectsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0644))

	w := NewPollingWatcherWithInterval(10 * time.Millisecond)
	defer w.Close()
	require.NoError(t, w.Add(path))

	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	select {
	case event := <-w.Events():
		assert.Equal(t, path, event.Name)
		assert.True(t, event.Has(fsnotify.Write))
	case <-time.After(2 * time.Second):
		t.Fatal("no event for modified file")
	}
}

func TestPollingWatcherCloseWithUnreadEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0644))

	w := NewPollingWatcherWithInterval(10 * time.Millisecond)
	require.NoError(t, w.Add(path))

	// Change the file but never read Events, so a sweep ends up
	// blocked mid-send when Close arrives
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))
	time.Sleep(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		w.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return while events were unread")
	}
}

func TestPollingWatcherRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0644))

	w := NewPollingWatcherWithInterval(10 * time.Millisecond)
	defer w.Close()

	require.NoError(t, w.Add(path))
	require.NoError(t, w.Remove(path))
	assert.Error(t, w.Remove(path))
}
