// Package lifecycle exposes note change events as a lifecycle.Source.
package lifecycle

import (
	"context"
	"errors"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/jot/pkg/core"
)

type noteSource struct {
	events <-chan core.Event
	types  map[core.EventType]bool
	out    chan lifecycle.Event
}

// SourceOption configures a note source.
type SourceOption func(*noteSource)

// OnlyTypes forwards just the given event types. With no call every type passes.
func OnlyTypes(types ...core.EventType) SourceOption {
	return func(s *noteSource) {
		if s.types == nil {
			s.types = make(map[core.EventType]bool)
		}
		for _, t := range types {
			s.types[t] = true
		}
	}
}

// NewSource creates a lifecycle.Source over a note event channel, such as
// the one returned by Service.Watch.
func NewSource(events <-chan core.Event, opts ...SourceOption) lifecycle.Source {
	s := &noteSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until ctx is done or the input channel closes.
// Events() is closed afterwards.
func (s *noteSource) Start(ctx context.Context) error {
	if s.events == nil {
		return errors.New("note source has no event channel")
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if s.types != nil && !s.types[e.Type] {
					continue
				}
				// core.Event satisfies lifecycle.Event through String().
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
