package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherTriggersRebuildOnWrite(t *testing.T) {
	dir := t.TempDir()
	rebuilt := make(chan struct{}, 1)

	w, err := New([]string{dir}, func() {
		select {
		case rebuilt <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.md"), []byte("# hi"), 0o644))

	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild callback not invoked")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	calls := make(chan struct{}, 16)

	w, err := New([]string{dir}, func() { calls <- struct{}{} })
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "page.md"), []byte("x"), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("rebuild callback not invoked")
	}
	// The burst should have collapsed into one callback.
	select {
	case <-calls:
		t.Fatal("rebuild invoked more than once for a single burst")
	case <-time.After(time.Second):
	}
}

func TestWatcherSkipsMissingRoots(t *testing.T) {
	w, err := New([]string{filepath.Join(t.TempDir(), "missing")}, func() {})
	require.NoError(t, err)
	w.Stop()
	// Stop twice is safe.
	assert.NotPanics(t, w.Stop)
}
