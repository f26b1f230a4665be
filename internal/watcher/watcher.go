// Package watcher monitors a local catalog file for changes and notifies
// the TUI to refresh. Editors typically save by writing a temp file and
// renaming it over the target, which replaces the inode, so the watch is
// placed on the parent directory and filtered by name rather than on the
// file itself.
package watcher

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when the watcher detects a relevant catalog file change.
type Event struct{}

// Watch monitors the catalog file at path and sends Event values on the
// returned channel. Rapid bursts (editors fire several events per save)
// are coalesced via the debounce window.
//
// Call the returned stop function to tear down the watcher.
func Watch(path string, debounce time.Duration) (<-chan Event, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	// Watch the directory, not the file: rename-over-save replaces the
	// inode and a direct file watch would go stale after the first save.
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, nil, err
	}
	target := filepath.Base(abs)

	ch := make(chan Event, 1)
	done := make(chan struct{})

	// jitterRange adds randomness to the debounce so several instances
	// watching the same file don't all reload at the same instant.
	jitterRange := debounce / 2 // 0 to 50% of debounce

	go func() {
		defer close(ch)
		var timer *time.Timer

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if shouldIgnore(ev.Name, target) {
					continue
				}
				d := debounce
				if jitterRange > 0 {
					d += time.Duration(rand.Int64N(int64(jitterRange)))
				}
				if timer == nil {
					timer = time.NewTimer(d)
				} else {
					timer.Reset(d)
				}
			case <-timerChan(timer):
				timer = nil
				select {
				case ch <- Event{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = w.Close()
	}

	return ch, stop, nil
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// shouldIgnore returns true for events that should not trigger a reload:
// anything in the directory other than the catalog file itself, and
// editor swap/temp files.
func shouldIgnore(path, target string) bool {
	base := filepath.Base(path)

	if strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swo") ||
		strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#") {
		return true
	}

	return base != target
}
