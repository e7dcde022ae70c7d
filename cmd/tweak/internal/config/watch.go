package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Update is one reload of a watched config file: the parsed config, or the
// error that prevented it.
type Update struct {
	Config *Config
	Err    error
}

// Watcher reloads a config file whenever it is written.
type Watcher struct {
	path string
}

// NewWatcher creates a Watcher for the config file at path.
func NewWatcher(path string) *Watcher {
	return &Watcher{path: path}
}

// Watch emits the current contents immediately and again after every write.
// The directory is watched rather than the file so editors that replace the
// file on save keep being observed. The channel closes when ctx is done.
func (w *Watcher) Watch(ctx context.Context) (<-chan Update, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	out := make(chan Update)

	go func() {
		defer close(out)
		defer watcher.Close()

		if !w.emit(ctx, out) {
			return
		}

		target := filepath.Clean(w.path)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if !w.emit(ctx, out) {
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case out <- Update{Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (w *Watcher) emit(ctx context.Context, out chan<- Update) bool {
	var u Update
	data, err := os.ReadFile(w.path)
	if err != nil {
		u.Err = fmt.Errorf("failed to read %s: %w", filepath.Base(w.path), err)
	} else {
		u.Config, u.Err = Parse(data)
	}
	select {
	case out <- u:
		return true
	case <-ctx.Done():
		return false
	}
}
