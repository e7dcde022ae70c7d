package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func next(t *testing.T, ch <-chan Update) Update {
	t.Helper()
	select {
	case u, ok := <-ch:
		if !ok {
			t.Fatal("channel closed")
		}
		return u
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for update")
	}
	return Update{}
}

func TestWatcherEmitsInitialAndWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	writeFile(t, dir, FileName, "title: first\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := NewWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	u := next(t, ch)
	if u.Err != nil || u.Config.Title != "first" {
		t.Fatalf("initial update = %+v, want title first", u)
	}

	if err := os.WriteFile(path, []byte("title: second\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// A single write may surface as several events; wait for the new title.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case u := <-ch:
			if u.Config != nil && u.Config.Title == "second" {
				return
			}
		case <-deadline:
			t.Fatal("did not observe the rewritten file")
		}
	}
}

func TestWatcherReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "title: [")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := NewWatcher(filepath.Join(dir, FileName)).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if u := next(t, ch); u.Err == nil {
		t.Error("expected parse error")
	}
}

func TestWatcherClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "title: x\n")

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := NewWatcher(filepath.Join(dir, FileName)).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	next(t, ch)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// drain one in-flight update, then expect close
			_, ok = <-ch
		}
		if ok {
			t.Error("channel should close after cancel")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", FileName)).Watch(context.Background())
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
