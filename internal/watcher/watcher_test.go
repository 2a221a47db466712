package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var called atomic.Bool
	d.Trigger(func() { called.Store(true) })
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	assert.False(t, called.Load())
}

func TestDebouncer_DefaultDuration(t *testing.T) {
	assert.Equal(t, DefaultDebounceDuration, NewDebouncer(0).Duration())
}

func waitChanged(t *testing.T, w *Watcher) bool {
	t.Helper()
	select {
	case <-w.Changed():
		return true
	case <-time.After(2 * time.Second):
		return false
	}
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "courses.yaml")
	require.NoError(t, os.WriteFile(data, []byte("courses: []\n"), 0o644))

	w, err := New([]string{data}, WithDebounceDuration(20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)

	require.NoError(t, os.WriteFile(data, []byte("courses: [1]\n"), 0o644))
	assert.True(t, waitChanged(t, w), "expected a change notification")
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "courses.yaml")
	require.NoError(t, os.WriteFile(data, []byte("x"), 0o644))

	w, err := New([]string{data}, WithDebounceDuration(20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("y"), 0o644))
	select {
	case <-w.Changed():
		t.Fatal("unexpected notification for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_DirectoryTarget(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{"", dir}, WithDebounceDuration(20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "python.md"), []byte("# Python"), 0o644))
	assert.True(t, waitChanged(t, w))
}

func TestWatcher_StartTwice(t *testing.T) {
	w, err := New([]string{t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)

	assert.ErrorIs(t, w.Start(), ErrAlreadyStarted)
}

func TestWatcher_NothingToWatch(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "deeper", "file.yaml")
	w, err := New([]string{missing})
	require.NoError(t, err)
	assert.ErrorIs(t, w.Start(), ErrNothingToWatch)
	assert.False(t, w.IsStarted())
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := New([]string{t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	w.Stop()
	w.Stop()
	assert.False(t, w.IsStarted())
}
