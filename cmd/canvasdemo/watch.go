package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period after the last file event before
// the scene is rendered again.
const defaultDebounce = 200 * time.Millisecond

// watch calls onChange every time the file at path is written, created or
// renamed into place, after debounce has passed without further events.
// It returns when ctx is done.
func watch(ctx context.Context, path string, debounce time.Duration, onChange func(), onError func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory so editors that save by renaming keep working.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	absPath, _ := filepath.Abs(path)
	baseName := filepath.Base(path)

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			eventAbs, _ := filepath.Abs(event.Name)
			if filepath.Base(event.Name) != baseName && eventAbs != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			timerC = timer.C

		case <-timerC:
			timer, timerC = nil, nil
			onChange()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onError(err)
		}
	}
}
