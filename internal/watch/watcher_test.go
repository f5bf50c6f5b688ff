package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewFileWatcherValidation(t *testing.T) {
	if _, err := NewFileWatcher("", time.Second, func() {}, nil); err == nil {
		t.Error("expected error for empty file path")
	}

	fw, err := NewFileWatcher("resume.json", 0, func() {}, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}
	if fw.debounceDelay != 500*time.Millisecond {
		t.Errorf("default debounce = %v, want 500ms", fw.debounceDelay)
	}
	if fw.WatchedFile() != "resume.json" {
		t.Errorf("WatchedFile() = %q", fw.WatchedFile())
	}
}

func TestFileWatcherLifecycle(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "resume.json")
	if err := os.WriteFile(file, []byte("{}"), 0600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fw, err := NewFileWatcher(file, 10*time.Millisecond, func() {}, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}

	if fw.IsRunning() {
		t.Error("watcher should not be running before Start")
	}

	if err := fw.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !fw.IsRunning() {
		t.Error("watcher should be running after Start")
	}

	if err := fw.Start(); err == nil {
		t.Error("expected error starting an already running watcher")
	}

	if err := fw.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if fw.IsRunning() {
		t.Error("watcher should not be running after Stop")
	}

	// Stop on a stopped watcher is a no-op
	if err := fw.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}

func TestFileWatcherMissingFileWatchesDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "missing.json")

	fw, err := NewFileWatcher(file, 10*time.Millisecond, func() {}, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}

	if err := fw.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer func() {
		if err := fw.Stop(); err != nil {
			t.Errorf("Stop() error = %v", err)
		}
	}()

	if !fw.IsRunning() {
		t.Error("watcher should fall back to watching the directory")
	}
}

func TestHasFileChanged(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "resume.json")
	if err := os.WriteFile(file, []byte("{}"), 0600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fw, err := NewFileWatcher(file, time.Second, func() {}, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}

	// First check records the mod time
	if !fw.hasFileChanged() {
		t.Error("first check should report a change")
	}
	if fw.hasFileChanged() {
		t.Error("unchanged file should not report a change")
	}

	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(file, future, future); err != nil {
		t.Fatalf("failed to bump mod time: %v", err)
	}
	if !fw.hasFileChanged() {
		t.Error("bumped mod time should report a change")
	}

	if err := os.Remove(file); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	if !fw.hasFileChanged() {
		t.Error("deleted file should report a change")
	}
	if fw.hasFileChanged() {
		t.Error("still missing file should not report a change again")
	}
}
