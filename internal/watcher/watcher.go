// Package watcher reports changes to the dashboard's data file and chapter
// notes so the TUI can reload them.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/abhisek/pathdash/internal/debug"
)

// Common errors.
var (
	ErrAlreadyStarted = errors.New("watcher already started")
	ErrNothingToWatch = errors.New("no existing paths to watch")
)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounceDuration sets the debounce duration.
func WithDebounceDuration(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounceDuration = d
	}
}

// WithOnError sets the callback invoked on watch errors.
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// target is one watched path. Files are watched through their parent
// directory so editors that replace the file atomically are still seen.
type target struct {
	path  string
	isDir bool
}

// Watcher monitors files and directories for changes.
type Watcher struct {
	targets          []target
	debounceDuration time.Duration
	onError          func(error)

	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer

	cancel   context.CancelFunc
	started  bool
	mu       sync.RWMutex
	changeCh chan struct{}
}

// New creates a watcher over paths. Empty paths are ignored. A path that
// exists as a directory reports changes to its direct entries; anything else
// is treated as a file, which need not exist yet.
func New(paths []string, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		debounceDuration: DefaultDebounceDuration,
		onError:          func(error) {},
		changeCh:         make(chan struct{}, 1),
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(abs)
		w.targets = append(w.targets, target{path: abs, isDir: err == nil && info.IsDir()})
	}
	for _, opt := range opts {
		opt(w)
	}
	w.debouncer = NewDebouncer(w.debounceDuration)
	return w, nil
}

// Start begins watching. Targets whose directory does not exist are skipped;
// ErrNothingToWatch is returned when none remain.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return ErrAlreadyStarted
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	added := map[string]bool{}
	for _, t := range w.targets {
		dir := t.path
		if !t.isDir {
			dir = filepath.Dir(t.path)
		}
		if added[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			debug.Log("watcher: skipping %s: %v", dir, err)
			continue
		}
		added[dir] = true
	}
	if len(added) == 0 {
		fsw.Close()
		return ErrNothingToWatch
	}

	var ctx context.Context
	ctx, w.cancel = context.WithCancel(context.Background())
	w.fsWatcher = fsw
	w.started = true
	go w.watch(ctx, fsw.Events, fsw.Errors)
	return nil
}

// Stop stops watching. The Changed channel is left open.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}
	w.cancel()
	w.fsWatcher.Close()
	w.fsWatcher = nil
	w.debouncer.Cancel()
	w.started = false
}

// IsStarted returns true if the watcher is running.
func (w *Watcher) IsStarted() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.started
}

// Changed returns a channel that receives once per debounced burst of
// changes.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changeCh
}

// Paths returns the absolute watched paths.
func (w *Watcher) Paths() []string {
	out := make([]string, len(w.targets))
	for i, t := range w.targets {
		out[i] = t.path
	}
	return out
}

func (w *Watcher) watch(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if !w.matches(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				debug.Log("watcher: %s %s", event.Op, event.Name)
				w.debouncer.Trigger(w.notifyChange)
			}

		case err, ok := <-errs:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

// matches reports whether an event path belongs to a target.
func (w *Watcher) matches(name string) bool {
	for _, t := range w.targets {
		if t.isDir {
			if filepath.Dir(name) == t.path {
				return true
			}
			continue
		}
		if name == t.path {
			return true
		}
	}
	return false
}

func (w *Watcher) notifyChange() {
	if !w.IsStarted() {
		return
	}
	select {
	case w.changeCh <- struct{}{}:
	default:
	}
}
