package core

import "context"

// Repository defines the contract for storing and retrieving notes.
// Implementations keep no state between calls: every call observes the
// current contents of the store.
type Repository interface {
	// List returns every note with ID, Title and Filename set. Bodies are not loaded.
	List(ctx context.Context) ([]Note, error)

	// Get retrieves a note and its body by ID.
	Get(ctx context.Context, id int) (Note, error)

	// Read loads the body of the exact note n names, as returned by List.
	// Unlike Get it never resolves the ID again, so notes sharing an ID stay distinct.
	Read(ctx context.Context, n Note) (Note, error)

	// Create allocates a fresh ID and persists a new note.
	Create(ctx context.Context, title string, body []string) (Note, error)

	// Update replaces the body of an existing note. ID and title never change.
	Update(ctx context.Context, id int, body []string) (Note, error)

	// Delete removes a note by its ID.
	Delete(ctx context.Context, id int) error

	// DeleteAll removes every note, continuing past individual failures.
	// It returns how many notes existed before the call.
	DeleteAll(ctx context.Context) (int, error)

	// Initialize ensures the underlying storage is ready (e.g. create the directory).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can report changes.
type Watchable interface {
	// Watch emits an Event for every note change matching pattern until ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
