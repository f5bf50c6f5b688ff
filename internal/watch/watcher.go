// Package watch provides a debounced file watcher used by the live
// rescoring mode of the CLI.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"resumelens/internal/errors"
)

// FileWatcher watches a single resume file for changes and triggers rescoring
type FileWatcher struct {
	mu sync.RWMutex

	file        string
	lastModTime time.Time

	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	changeCallback func()
	logger         *errors.Logger

	running bool
}

// NewFileWatcher creates a new watcher for the given file. The callback runs
// on the watcher goroutine after each debounced change.
func NewFileWatcher(file string, debounceDelay time.Duration, changeCallback func(), logger *errors.Logger) (*FileWatcher, error) {
	if file == "" {
		return nil, fmt.Errorf("watch file cannot be empty")
	}
	if debounceDelay == 0 {
		debounceDelay = 500 * time.Millisecond
	}

	return &FileWatcher{
		file:           file,
		debounceDelay:  debounceDelay,
		stopChan:       make(chan struct{}),
		reloadChan:     make(chan struct{}, 1), // Buffered to prevent blocking
		changeCallback: changeCallback,
		logger:         logger,
	}, nil
}

// Start begins watching the file for changes
func (fw *FileWatcher) Start() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.running {
		return fmt.Errorf("file watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	fw.fsWatcher = watcher

	if stat, err := os.Stat(fw.file); err == nil {
		fw.lastModTime = stat.ModTime()
	} else if !os.IsNotExist(err) {
		fw.cleanupWatcher()
		return fmt.Errorf("failed to stat file %s: %w", fw.file, err)
	}

	if err := fw.addFileToWatcher(); err != nil {
		fw.cleanupWatcher()
		return err
	}

	fw.running = true
	go fw.watchLoop()

	if fw.logger != nil {
		fw.logger.Info("File watcher started",
			"file", fw.file,
			"debounce_delay", fw.debounceDelay)
	}
	return nil
}

// Stop stops the file watcher
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.running {
		return nil
	}

	close(fw.stopChan)

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}

	if fw.fsWatcher != nil {
		if err := fw.fsWatcher.Close(); err != nil {
			if fw.logger != nil {
				fw.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}

	fw.running = false

	if fw.logger != nil {
		fw.logger.Info("File watcher stopped")
	}

	return nil
}

// cleanupWatcher closes the file watcher and logs any errors
func (fw *FileWatcher) cleanupWatcher() {
	if fw.fsWatcher != nil {
		if closeErr := fw.fsWatcher.Close(); closeErr != nil && fw.logger != nil {
			fw.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
	}
}

// addFileToWatcher adds the file and its directory to the file system watcher
func (fw *FileWatcher) addFileToWatcher() error {
	if err := fw.fsWatcher.Add(fw.file); err != nil {
		// If the file doesn't exist yet, watch its directory instead
		if os.IsNotExist(err) {
			dir := filepath.Dir(fw.file)
			if err := fw.fsWatcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", dir, err)
			}
			if fw.logger != nil {
				fw.logger.Info("Watching directory for file",
					"file", fw.file, "directory", dir)
			}
			return nil
		}
		return fmt.Errorf("failed to watch file %s: %w", fw.file, err)
	}

	// Also watch the directory to catch atomic writes (rename operations)
	dir := filepath.Dir(fw.file)
	if err := fw.fsWatcher.Add(dir); err != nil {
		if fw.logger != nil {
			fw.logger.Warn("Failed to watch directory for atomic writes",
				"directory", dir, "error", err)
		}
	}

	return nil
}

// hasFileChanged checks if the file has been modified since last check
func (fw *FileWatcher) hasFileChanged() bool {
	stat, err := os.Stat(fw.file)
	if err != nil {
		if os.IsNotExist(err) && !fw.lastModTime.IsZero() {
			// File was deleted
			fw.lastModTime = time.Time{}
			return true
		}
		return false
	}

	if fw.lastModTime.IsZero() || stat.ModTime().After(fw.lastModTime) {
		fw.lastModTime = stat.ModTime()
		return true
	}

	return false
}

// watchLoop is the main event loop for file watching
func (fw *FileWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-fw.fsWatcher.Events:
			if !ok {
				return
			}

			if fw.shouldProcessEvent(event) {
				fw.scheduleReload()
			}

		case err, ok := <-fw.fsWatcher.Errors:
			if !ok {
				return
			}
			if fw.logger != nil {
				fw.logger.LogError(err, "File watcher error")
			}

		case <-fw.reloadChan:
			// Debounced change trigger
			if fw.hasFileChanged() {
				if fw.logger != nil {
					fw.logger.Info("Watched file changed", "file", fw.file)
				}
				fw.changeCallback()
			}

		case <-fw.stopChan:
			return
		}
	}
}

// shouldProcessEvent determines if a file system event should trigger a change check
func (fw *FileWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Name != fw.file && filepath.Base(event.Name) != filepath.Base(fw.file) {
		return false
	}

	// Process write, create, and rename events
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// scheduleReload schedules a debounced change notification
func (fw *FileWatcher) scheduleReload() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}

	fw.debounceTimer = time.AfterFunc(fw.debounceDelay, func() {
		select {
		case fw.reloadChan <- struct{}{}:
			// Change scheduled
		default:
			// Channel is full, change already scheduled
		}
	})
}

// IsRunning returns whether the watcher is currently running
func (fw *FileWatcher) IsRunning() bool {
	fw.mu.RLock()
	defer fw.mu.RUnlock()
	return fw.running
}

// WatchedFile returns the file being watched
func (fw *FileWatcher) WatchedFile() string {
	return fw.file
}
