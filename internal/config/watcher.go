package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is the default debounce interval for file watch events.
const DefaultWatchDebounce = 500 * time.Millisecond

// Watcher monitors a style configuration file for changes and triggers
// reloads, so a running chart can pick up new zone rules without a restart.
type Watcher struct {
	watcher   *fsnotify.Watcher
	filePath  string
	debounce  time.Duration
	onReload  func() error
	onError   func(error)
	stopCh    chan struct{}
	stoppedCh chan struct{}
	mu        sync.Mutex
	running   bool
}

// NewWatcher creates a new style configuration file watcher.
// onReload is called when the file changes (after debouncing).
// onError is called when errors occur during watching or reloading.
func NewWatcher(filePath string, debounce time.Duration, onReload func() error, onError func(error)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	// Watch the directory containing the config file, not the file itself.
	// This handles editors that atomically rename files (vim, emacs, etc.).
	dir := filepath.Dir(filePath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		watcher:   watcher,
		filePath:  filePath,
		debounce:  debounce,
		onReload:  onReload,
		onError:   onError,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Start begins watching for file changes in a goroutine.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.watchLoop()
}

// Stop stops the file watcher and waits for cleanup.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.stoppedCh
}

// watchLoop is the main event loop for file watching with debouncing.
func (w *Watcher) watchLoop() {
	defer close(w.stoppedCh)
	defer w.watcher.Close()

	absPath, _ := filepath.Abs(w.filePath)
	baseName := filepath.Base(w.filePath)

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			eventBase := filepath.Base(event.Name)
			eventAbs, _ := filepath.Abs(event.Name)
			if eventBase != baseName && eventAbs != absPath {
				continue
			}

			// Only react to write/create/rename events (covers atomic saves)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			// Debounce: reset the timer on each event
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(w.debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			if w.onReload != nil {
				if err := w.onReload(); err != nil && w.onError != nil {
					w.onError(err)
				}
			}
			debounceTimer = nil
			debounceCh = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}
