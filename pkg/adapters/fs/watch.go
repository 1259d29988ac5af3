package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/filename"
)

// eventBuffer is the capacity of the channel returned by Watch.
const eventBuffer = 16

// Watch reports changes to note files until ctx is cancelled.
// pattern is a doublestar glob matched against the bare filename; "" matches all.
// The returned channel is closed when watching stops.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(r.Path); err != nil {
		_ = watcher.Close()
		return nil, &core.IOError{Op: "watch", Path: r.Path, Err: err}
	}

	// Writes replace files by rename, which fsnotify reports as Create on the
	// target. Names already on disk turn such a Create into a modification.
	known := make(map[string]bool)
	names, err := r.scan()
	if err != nil {
		r.logger.Warn("watcher could not list existing notes", "path", r.Path, "error", err)
	}
	for _, name := range names {
		known[name] = true
	}

	events := make(chan core.Event, eventBuffer)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, pattern, known, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.logger.Error("watcher stopped", "path", r.Path, "error", err)
	}))

	return events, nil
}

// watchLoop is the main select loop over fsnotify events and errors.
// known holds the note filenames currently on disk and is owned by the loop.
func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, known map[string]bool, out chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}

			e, ok := r.translate(event, pattern, known)
			if !ok {
				continue
			}
			r.recordEvent()

			select {
			case out <- e:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.logger.Error("fsnotify error", "error", err)
		}
	}
}

// translate maps an fsnotify event to a note event and keeps known in step.
// Temp files, other extensions and permission changes are dropped.
func (r *Repository) translate(event fsnotify.Event, pattern string, known map[string]bool) (core.Event, bool) {
	name := filepath.Base(event.Name)
	if !filename.Matches(name) {
		return core.Event{}, false
	}
	id, ok := filename.IDPrefix(name)
	if !ok {
		return core.Event{}, false
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
		if known[name] {
			eType = core.EventModify
		}
		known[name] = true
	case event.Has(fsnotify.Write):
		eType = core.EventModify
		known[name] = true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
		delete(known, name)
	default:
		return core.Event{}, false
	}

	if pattern != "" {
		matched, err := doublestar.Match(pattern, name)
		if err != nil || !matched {
			return core.Event{}, false
		}
	}

	r.logger.Debug("note changed", "type", eType, "file", name)
	return core.Event{
		Type:      eType,
		ID:        id,
		Title:     filename.Decode(name),
		Filename:  name,
		Timestamp: time.Now().Unix(),
	}, true
}
