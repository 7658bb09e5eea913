package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchRunnerReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("session:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	updates := WatchRunner(w, DifficultyFixed, nil)

	if err := os.WriteFile(path, []byte("session:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-updates:
		if cfg.Session.Lives != 9 {
			t.Errorf("Lives = %d, expected 9", cfg.Session.Lives)
		}
		if cfg.Difficulty.Enabled {
			t.Error("fixed preset not applied to reloaded config")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatchRunnerSkipsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("session:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	errs := make(chan error, 8)
	updates := WatchRunner(w, "", func(err error) { errs <- err })

	if err := os.WriteFile(path, []byte("physics: [not, a, map]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-errs:
	case cfg := <-updates:
		t.Fatalf("invalid file produced config %+v", cfg)
	case <-time.After(3 * time.Second):
		t.Fatal("no error after invalid write")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	if err := os.WriteFile(path, []byte("session:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		t.Errorf("unexpected event for %s", name)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	updates := WatchRunner(w, "", nil)

	if err := w.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}

	select {
	case _, ok := <-updates:
		if ok {
			t.Error("updates still open after Close")
		}
	case <-time.After(time.Second):
		t.Error("updates not closed after Close")
	}
}
