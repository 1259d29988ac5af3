package platform

import (
	"github.com/aretw0/jot/pkg/core"
)

// New initializes the storage and wires the domain service.
//
//	svc, err := jot.New("./notes", jot.WithLogger(logger))
func New(uri string, opts ...Option) (*core.Service, error) {
	repo, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	// Parse options again to get the logger for wiring
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(repo, o.logger), nil
}
