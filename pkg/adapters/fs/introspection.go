package fs

import (
	"time"

	"github.com/aretw0/introspection"

	"github.com/aretw0/jot/pkg/filename"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path" yaml:"path"`
	NoteFiles     int        `json:"note_files" yaml:"note_files"`
	NextID        int        `json:"next_id" yaml:"next_id"`
	SortByName    bool       `json:"sort_by_name" yaml:"sort_by_name"`
	MustExist     bool       `json:"must_exist" yaml:"must_exist"`
	WatcherActive bool       `json:"watcher_active" yaml:"watcher_active"`
	LastEvent     *time.Time `json:"last_event,omitempty" yaml:"last_event,omitempty"`
	Error         string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// State implements introspection.Introspectable.
// It lists the directory, so the counts reflect the disk at call time.
func (r *Repository) State() any {
	r.mu.RLock()
	state := RepositoryState{
		Path:          r.Path,
		SortByName:    r.config.SortByName,
		MustExist:     r.config.MustExist,
		WatcherActive: r.watcherActive,
		LastEvent:     r.lastEvent,
	}
	r.mu.RUnlock()

	names, err := r.scan()
	if err != nil {
		state.Error = err.Error()
	}
	state.NoteFiles = len(names)
	state.NextID = filename.NextID(names)

	return state
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}

func (r *Repository) recordEvent() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastEvent = &now
}
