// Package watch provides file change notification for hot-reload flows.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Files reports changes to the named files. It watches each file's parent
// directory rather than the file itself, which keeps notifications working
// across the delete-and-rename cycle editors use for atomic saves.
//
// The returned channel receives the path of the file that changed, as it was
// given, and closes when ctx is cancelled or the watcher fails.
func Files(ctx context.Context, paths ...string) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// abs path -> path as given, so callers get back the spelling they used
	watched := make(map[string]string, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("absolute path: %w", err)
		}
		watched[abs] = path
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch directory: %w", err)
		}
	}

	ch := make(chan string, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Write covers in-place saves, Create covers atomic saves.
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil {
					continue
				}
				path, ok := watched[abs]
				if !ok {
					continue
				}
				select {
				case ch <- path:
				case <-ctx.Done():
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return ch, nil
}
