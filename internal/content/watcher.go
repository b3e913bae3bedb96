package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 300 * time.Millisecond

// Watcher reloads a Loader when content files in a directory change.
// Rapid saves are collapsed into one reload.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	loader      *Loader
	dir         string
	logger      *zap.Logger
	debounceDur time.Duration
	pending     map[string]time.Time
	onReload    func(*Registry)
	stopCh      chan struct{}
	stopOnce    sync.Once
	doneCh      chan struct{}
	started     bool
	running     bool

	stats WatcherStats
}

// WatcherStats counts watcher activity.
type WatcherStats struct {
	Events        int       `json:"events"`
	Reloads       int       `json:"reloads"`
	Errors        int       `json:"errors"`
	LastEventPath string    `json:"last_event_path,omitempty"`
	LastEventTime time.Time `json:"last_event_time,omitempty"`
	LastReload    time.Time `json:"last_reload,omitempty"`
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long a file must be quiet before a reload.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounceDur = d
		}
	}
}

// WithWatcherLogger sets the logger. A nil logger discards output.
func WithWatcherLogger(logger *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// OnReload registers a callback run after every reload.
func OnReload(fn func(*Registry)) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// NewWatcher creates a watcher for dir that reloads loader.
func NewWatcher(dir string, loader *Loader, opts ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &LoadError{File: dir, Message: "failed to create file watcher", Cause: err}
	}

	w := &Watcher{
		watcher:     fw,
		loader:      loader,
		dir:         dir,
		logger:      zap.NewNop(),
		debounceDur: defaultDebounce,
		pending:     make(map[string]time.Time),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start adds the directory to the watch list and runs the event loop in a goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Unlock()
		return &LoadError{File: w.dir, Message: "failed to watch content directory", Cause: err}
	}
	w.started = true
	w.running = true
	w.mu.Unlock()

	w.logger.Info("watching content directory", zap.String("dir", w.dir), zap.Duration("debounce", w.debounceDur))
	go w.run(ctx)
	return nil
}

// Stop ends the event loop, waits for it to exit and releases the watcher.
// It is safe to call more than once and after the context is cancelled.
func (w *Watcher) Stop() {
	w.mu.Lock()
	started := w.started
	w.running = false
	w.mu.Unlock()

	if started {
		w.stopOnce.Do(func() { close(w.stopCh) })
		<-w.doneCh
	}

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("failed to close watcher", zap.Error(err))
	}
}

// Done is closed when the event loop exits.
func (w *Watcher) Done() <-chan struct{} {
	return w.doneCh
}

// Stats returns a snapshot of watcher activity.
func (w *Watcher) Stats() WatcherStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// IsWatching reports whether the event loop is running.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounceDur / 3
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.setStopped()
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				w.setStopped()
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.setStopped()
				return
			}
			w.logger.Error("watcher error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		case <-ticker.C:
			w.processPending(ctx)
		}
	}
}

func (w *Watcher) setStopped() {
	w.mu.Lock()
	w.running = false
	w.mu.Unlock()
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !IsContentFile(filepath.Base(event.Name)) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.logger.Debug("content file changed", zap.String("path", event.Name), zap.Stringer("op", event.Op))

	now := time.Now()
	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEventPath = event.Name
	w.stats.LastEventTime = now
	w.pending[event.Name] = now
	w.mu.Unlock()
}

// processPending reloads once when every pending file has settled.
func (w *Watcher) processPending(ctx context.Context) {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	now := time.Now()
	for _, at := range w.pending {
		if now.Sub(at) < w.debounceDur {
			w.mu.Unlock()
			return
		}
	}
	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, filepath.Base(path))
	}
	w.pending = make(map[string]time.Time)
	w.mu.Unlock()

	reg := w.loader.Load(ctx)
	if ctx.Err() != nil {
		return
	}
	w.logger.Info("content reloaded",
		zap.Strings("changed", changed),
		zap.Stringer("state", reg.State()),
		zap.String("error", reg.LoadError()))

	w.mu.Lock()
	w.stats.Reloads++
	w.stats.LastReload = time.Now()
	w.mu.Unlock()

	if w.onReload != nil {
		w.onReload(reg)
	}
}
