package jot

import (
	"log/slog"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Service is a public alias for the core service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithMustExist requires the notes directory to exist already.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithSortByName lists notes in raw filename order instead of by ID.
func WithSortByName(byName bool) Option {
	return platform.WithSortByName(byName)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// --- Factory ---

// New creates a new jot Service over the notes directory at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a repository explicitly.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}
