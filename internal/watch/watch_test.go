package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_RunsAfterWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ncot\n"), 0644))

	ran := make(chan struct{}, 8)
	w, err := New(path, 20*time.Millisecond, func() error {
		ran <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the watcher a moment to attach before touching the file.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("cat\ncot\ndog\n"), 0644))

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("runner was not invoked after input change")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ncot\n"), 0644))

	ran := make(chan struct{}, 16)
	w, err := New(path, 150*time.Millisecond, func() error {
		ran <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("cat\ncot\ndog\n"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("runner was not invoked after burst")
	}

	// The burst fits inside one debounce window: no second run should land.
	select {
	case <-ran:
		t.Fatal("burst of writes triggered more than one run")
	case <-time.After(400 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ncot\n"), 0644))

	ran := make(chan struct{}, 8)
	w, err := New(path, 20*time.Millisecond, func() error {
		ran <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x\n"), 0644))

	select {
	case <-ran:
		t.Fatal("unrelated file triggered a run")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent", "words.txt"), time.Millisecond, func() error { return nil })
	assert.Error(t, err)
}
