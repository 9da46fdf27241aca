package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte("width = 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, path, 50*time.Millisecond,
			func() { changed <- struct{}{} },
			func(err error) { t.Errorf("watch error: %v", err) },
		)
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("width = 16\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
	select {
	case <-changed:
		t.Error("burst of writes produced more than one notification")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := watch(context.Background(), filepath.Join(t.TempDir(), "missing", "scene.toml"), 0, func() {}, func(error) {})
	if err == nil {
		t.Error("watching a missing directory succeeded")
	}
}
