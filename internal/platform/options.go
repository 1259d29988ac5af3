package platform

import (
	"log/slog"

	"github.com/aretw0/jot/pkg/core"
)

// options holds the internal configuration for the jot service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	adapter    string
	config     map[string]interface{}
}

// Option defines a functional option for configuring jot.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		adapter:    "fs",
		config:     make(map[string]interface{}),
	}
}

// WithMustExist requires the notes directory to exist already.
// By default it is created on startup.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithSortByName lists notes in raw filename order instead of by ID.
// Filename order puts "10_" before "2_".
func WithSortByName(byName bool) Option {
	return func(o *options) {
		o.config["sort_by_name"] = byName
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter allows specifying the storage adapter to use by name (e.g. "fs").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}
