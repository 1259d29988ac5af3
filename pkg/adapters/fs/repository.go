package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/filename"
)

// Repository implements core.Repository over a single directory of note files.
//
// Nothing is cached: every call lists the directory again. No locking is done
// either, so two processes sharing a directory can race on ID allocation.
type Repository struct {
	Path       string
	config     Config
	logger     *slog.Logger
	serializer Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastEvent     *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path       string
	MustExist  bool
	SortByName bool // List in raw filename order ("10_" before "2_") instead of by ID.
	Logger     *slog.Logger
	Serializer Serializer // Defaults to LineSerializer.
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	serializer := config.Serializer
	if serializer == nil {
		serializer = LineSerializer{}
	}
	return &Repository{
		Path:       config.Path,
		config:     config,
		logger:     logger,
		serializer: serializer,
	}
}

// Initialize creates the notes directory, or checks it exists when MustExist is set.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("notes directory does not exist: %s", r.Path)
		}
		if err != nil {
			return &core.IOError{Op: "stat", Path: r.Path, Err: err}
		}
		if !info.IsDir() {
			return fmt.Errorf("notes path is not a directory: %s", r.Path)
		}
		return nil
	}

	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", &core.IOError{Op: "mkdir", Path: r.Path, Err: err})
	}
	return nil
}

// List returns every addressable note (one whose name carries an ID).
// Bodies are not read.
//
// Notes are ordered by ID, ties broken by filename. With SortByName the raw
// filename order is kept instead.
func (r *Repository) List(ctx context.Context) ([]core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names, err := r.scan()
	if err != nil {
		return nil, err
	}

	notes := make([]core.Note, 0, len(names))
	for _, name := range names {
		id, ok := filename.IDPrefix(name)
		if !ok {
			continue
		}
		notes = append(notes, core.Note{
			ID:       id,
			Title:    filename.Decode(name),
			Filename: name,
		})
	}

	if !r.config.SortByName {
		sort.SliceStable(notes, func(i, j int) bool {
			if notes[i].ID != notes[j].ID {
				return notes[i].ID < notes[j].ID
			}
			return notes[i].Filename < notes[j].Filename
		})
	}

	return notes, nil
}

// Get retrieves a note and its body.
// When several files share the ID the first by filename wins.
func (r *Repository) Get(ctx context.Context, id int) (core.Note, error) {
	if err := ctx.Err(); err != nil {
		return core.Note{}, err
	}

	name, err := r.resolve(id)
	if err != nil {
		return core.Note{}, err
	}
	return r.load(id, name)
}

// Read loads the body of the file named by n.Filename.
func (r *Repository) Read(ctx context.Context, n core.Note) (core.Note, error) {
	if err := ctx.Err(); err != nil {
		return core.Note{}, err
	}

	name := n.Filename
	id, ok := filename.IDPrefix(name)
	if name != filepath.Base(name) || !filename.Matches(name) || !ok {
		return core.Note{}, fmt.Errorf("%w: %q", core.ErrNotFound, name)
	}
	return r.load(id, name)
}

// load reads and parses one note file.
func (r *Repository) load(id int, name string) (core.Note, error) {
	fullPath := filepath.Join(r.Path, name)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, name)
		}
		return core.Note{}, &core.IOError{Op: "read", Path: fullPath, Err: err}
	}

	body, err := r.serializer.Parse(bytes.NewReader(data))
	if err != nil {
		return core.Note{}, &core.IOError{Op: "parse", Path: fullPath, Err: err}
	}

	return core.Note{
		ID:       id,
		Title:    filename.Decode(name),
		Body:     body,
		Filename: name,
	}, nil
}

// Create allocates the next ID from the current directory contents and
// writes the note. A file with the exact same name is overwritten.
func (r *Repository) Create(ctx context.Context, title string, body []string) (core.Note, error) {
	if err := ctx.Err(); err != nil {
		return core.Note{}, err
	}

	names, err := r.scan()
	if err != nil {
		// Allocation falls back to 1; the write below reports the real failure.
		r.logger.Debug("id allocation could not list notes", "path", r.Path, "error", err)
		names = nil
	}
	id := filename.NextID(names)
	name := filename.Encode(id, title)

	if err := r.write(name, body); err != nil {
		return core.Note{}, err
	}

	r.logger.Debug("note written", "id", id, "file", name, "lines", len(body))
	return core.Note{
		ID:       id,
		Title:    filename.Decode(name),
		Body:     body,
		Filename: name,
	}, nil
}

// Update replaces the body of a note. The file is never renamed.
func (r *Repository) Update(ctx context.Context, id int, body []string) (core.Note, error) {
	if err := ctx.Err(); err != nil {
		return core.Note{}, err
	}

	name, err := r.resolve(id)
	if err != nil {
		return core.Note{}, err
	}

	if err := r.write(name, body); err != nil {
		return core.Note{}, err
	}

	return core.Note{
		ID:       id,
		Title:    filename.Decode(name),
		Body:     body,
		Filename: name,
	}, nil
}

// Delete removes the file resolved for id.
func (r *Repository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := r.resolve(id)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(r.Path, name)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %d", core.ErrNotFound, id)
		}
		return &core.IOError{Op: "delete", Path: fullPath, Err: err}
	}
	return nil
}

// DeleteAll removes every file carrying the note extension, including ones
// without an ID. Individual failures are logged and skipped.
func (r *Repository) DeleteAll(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	names, err := r.scan()
	if err != nil {
		return 0, err
	}

	for _, name := range names {
		fullPath := filepath.Join(r.Path, name)
		if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
			r.logger.Warn("failed to delete note", "file", name, "error", err)
		}
	}

	return len(names), nil
}

// scan lists the names of all files carrying the note extension, sorted by name.
func (r *Repository) scan() ([]string, error) {
	entries, err := os.ReadDir(r.Path)
	if err != nil {
		return nil, &core.IOError{Op: "list", Path: r.Path, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !filename.Matches(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// resolve maps an ID to a filename.
func (r *Repository) resolve(id int) (string, error) {
	names, err := r.scan()
	if err != nil {
		return "", err
	}

	var matched []string
	for _, name := range names {
		if got, ok := filename.IDPrefix(name); ok && got == id {
			matched = append(matched, name)
		}
	}

	switch len(matched) {
	case 0:
		return "", fmt.Errorf("%w: %d", core.ErrNotFound, id)
	case 1:
		return matched[0], nil
	default:
		r.logger.Warn("several notes share an id, using the first", "id", id, "files", matched)
		return matched[0], nil
	}
}

func (r *Repository) write(name string, body []string) error {
	fullPath := filepath.Join(r.Path, name)

	data, err := r.serializer.Serialize(body)
	if err != nil {
		return fmt.Errorf("failed to serialize note: %w", err)
	}

	return writeFileAtomic(fullPath, data, 0644)
}
