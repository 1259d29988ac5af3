package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

// Init prepares the storage for the notes directory and returns the repository.
// The 'uri' argument is adapter-specific (a directory path for 'fs').
//
// Failing here is the one unrecoverable error: callers should stop.
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected repository
	if o.repository != nil {
		return o.repository, nil
	}

	// 2. Initialize based on Adapter
	var repo core.Repository
	switch o.adapter {
	case "fs":
		repo = initFS(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	// 3. Run Initialization
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// initFS builds the filesystem adapter from the parsed options.
func initFS(path string, o *options) core.Repository {
	mustExist, _ := o.config["must_exist"].(bool)
	sortByName, _ := o.config["sort_by_name"].(bool)

	if path == "" {
		path = DefaultDir
	}

	if o.logger != nil {
		o.logger.Debug("opening notes directory", "path", path, "must_exist", mustExist, "sort_by_name", sortByName)
	}

	return fs.NewRepository(fs.Config{
		Path:       path,
		MustExist:  mustExist,
		SortByName: sortByName,
		Logger:     o.logger,
	})
}
