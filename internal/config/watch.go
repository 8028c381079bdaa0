package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"extframe/pkg/logging"
)

// DefaultDebounceInterval is how long ResourceWatcher waits after the last
// filesystem event before invoking OnChange, so that a burst of writes to
// several files in one directory (a deploy dropping in three resource files
// at once) triggers a single reload instead of one per file.
const DefaultDebounceInterval = 300 * time.Millisecond

// ResourceWatcher watches the shared and user search directories (§4.1) for
// changes and invokes OnChange once, debounced, per burst of activity. It is
// the mechanism behind hot reload: on a fire, the caller re-runs LoadAndApply
// against the same ExtensionPoint, which is safe to call repeatedly because
// RegisterNames treats re-registering the same name/implID pair as a no-op.
type ResourceWatcher struct {
	dirs     []string
	onChange func()

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	fsw     *fsnotify.Watcher

	debounceMu    sync.Mutex
	debounceTimer *time.Timer
}

// NewResourceWatcher constructs a watcher over dirs (typically SharedConfigDir
// and UserConfigDir). Directories that can't be watched when Start runs
// (for example because they don't exist yet) are skipped with a warning.
func NewResourceWatcher(dirs []string, onChange func()) *ResourceWatcher {
	return &ResourceWatcher{dirs: dirs, onChange: onChange}
}

// Start begins watching. It is a no-op if already running, and it does not
// fail if none of the directories currently exist. The watch set is fixed
// here: a directory created after Start is not added, so changes inside it
// never fire this watcher.
func (w *ResourceWatcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			logging.Warn("ResourceWatcher", "not watching %s: %v", dir, err)
		}
	}

	w.fsw = fsw
	w.stopCh = make(chan struct{})
	w.running = true

	eventsCh := fsw.Events
	errorsCh := fsw.Errors
	go w.processEvents(eventsCh, errorsCh)

	logging.Info("ResourceWatcher", "watching %d director(ies) for resource changes", len(w.dirs))
	return nil
}

func (w *ResourceWatcher) processEvents(eventsCh <-chan fsnotify.Event, errorsCh <-chan error) {
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-eventsCh:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logging.Debug("ResourceWatcher", "resource change detected: %s", event.Name)
			w.triggerDebounced()
		case err, ok := <-errorsCh:
			if !ok {
				return
			}
			logging.Error("ResourceWatcher", err, "fsnotify error")
		}
	}
}

func (w *ResourceWatcher) triggerDebounced() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(DefaultDebounceInterval, func() {
		w.mu.Lock()
		running := w.running
		cb := w.onChange
		w.mu.Unlock()
		if running && cb != nil {
			cb()
		}
	})
}

// Stop releases the underlying fsnotify watcher. Safe to call on an
// already-stopped or never-started ResourceWatcher.
func (w *ResourceWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}
	w.running = false
	close(w.stopCh)

	w.debounceMu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMu.Unlock()

	if w.fsw != nil {
		err := w.fsw.Close()
		w.fsw = nil
		return err
	}
	return nil
}

// IsRunning reports whether the watcher is currently active.
func (w *ResourceWatcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
