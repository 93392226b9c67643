package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"setlist/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Change reports that the watched document no longer matches the bytes the
// set was loaded from. The loaded set itself is never replaced; consumers
// decide what to tell the user.
type Change struct {
	Path        string
	Fingerprint string // "" when Removed
	Removed     bool
	At          time.Time
}

// WatcherStats tracks watcher activity for tests and debugging.
type WatcherStats struct {
	Events  int // filesystem events for the document
	Changes int // content changes delivered
	Ignored int // settled events whose content was unchanged
	Errors  int
}

// Watcher watches one document file. It watches the parent directory so
// editors that save by rename are still seen.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	baseline string
	pending  time.Time
	debounce time.Duration
	changes  chan Change
	stats    WatcherStats
}

// NewWatcher starts watching path. baseline is the fingerprint the current
// set was loaded from; events that leave the content at baseline are ignored.
func NewWatcher(path, baseline string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	logging.Watch("watching %s (debounce %s)", abs, debounce)
	return &Watcher{
		watcher:  fw,
		path:     abs,
		baseline: baseline,
		debounce: debounce,
		changes:  make(chan Change, 1),
	}, nil
}

// Changes delivers settled content changes. It is closed when Run returns.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Stats returns a snapshot of the watcher counters.
func (w *Watcher) Stats() WatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Run processes filesystem events until ctx is done. It closes the
// underlying watcher and the Changes channel before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.changes)
	defer func() {
		if err := w.watcher.Close(); err != nil {
			logging.WatchWarn("error closing watcher: %v", err)
		}
	}()

	tick := w.debounce / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.WatchDebug("context cancelled")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.WatchWarn("watcher error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case now := <-ticker.C:
			change, ok := w.settle(now)
			if !ok {
				continue
			}
			select {
			case w.changes <- change:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	logging.WatchDebug("%s event for %s", event.Op, event.Name)

	w.mu.Lock()
	w.stats.Events++
	w.pending = time.Now()
	w.mu.Unlock()
}

// settle checks the document once the debounce window has passed since the
// last event.
func (w *Watcher) settle(now time.Time) (Change, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending.IsZero() || now.Sub(w.pending) < w.debounce {
		return Change{}, false
	}
	w.pending = time.Time{}

	data, err := os.ReadFile(w.path)
	if errors.Is(err, os.ErrNotExist) {
		if w.baseline == "" {
			w.stats.Ignored++
			return Change{}, false
		}
		w.baseline = ""
		w.stats.Changes++
		logging.Watch("%s removed", w.path)
		return Change{Path: w.path, Removed: true, At: now}, true
	}
	if err != nil {
		w.stats.Errors++
		logging.WatchWarn("failed to read %s: %v", w.path, err)
		return Change{}, false
	}

	fp := Fingerprint(data)
	if fp == w.baseline {
		w.stats.Ignored++
		logging.WatchDebug("%s touched, content unchanged", w.path)
		return Change{}, false
	}
	w.baseline = fp
	w.stats.Changes++
	logging.Watch("%s changed on disk: %s", w.path, fp[:12])
	return Change{Path: w.path, Fingerprint: fp, At: now}, true
}
