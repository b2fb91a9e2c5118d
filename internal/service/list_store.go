package service

import (
	"context"
	"slices"
	"sync"

	"backoffice/pkg/logger"
)

// Fetcher retrieves the full contents of a list from its source
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// State is a point-in-time view of a remotely loaded list
type State[T any] struct {
	Items      []T
	Loading    bool
	Err        error
	Generation uint64
}

// Store holds one remotely loaded list. Loads always replace the whole list.
// When loads overlap, only the most recently started one may commit.
type Store[T any] struct {
	name   string
	fetch  Fetcher[T]
	logger *logger.Logger

	mu      sync.Mutex
	started uint64
	// loads started at or before staleAt predate the last Invalidate
	stale   bool
	staleAt uint64
	state   State[T]
}

// NewStore creates an empty store backed by fetch
func NewStore[T any](name string, fetch Fetcher[T], log *logger.Logger) *Store[T] {
	return &Store[T]{
		name:   name,
		fetch:  fetch,
		logger: log.WithField("list", name),
		state:  State[T]{Items: []T{}},
	}
}

// Load fetches the list and commits the result, returning the state after
// the load. A load that was overtaken by a newer one returns its own
// result to its caller without committing it. A cancelled load leaves the
// committed state alone.
func (s *Store[T]) Load(ctx context.Context) State[T] {
	s.mu.Lock()
	s.started++
	gen := s.started
	s.state.Loading = true
	s.mu.Unlock()

	items, err := s.fetch(ctx)
	if items == nil {
		items = []T{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.started {
		s.logger.WithField("generation", gen).Debug("Load overtaken, not committing")
		own := State[T]{Items: items, Err: err, Generation: gen}
		if err != nil {
			own.Items = slices.Clone(s.state.Items)
		}
		return own
	}

	s.state.Loading = false
	if err != nil && ctx.Err() != nil {
		s.logger.WithField("generation", gen).Debug("Load cancelled")
		return s.snapshotLocked()
	}

	if err != nil {
		s.state.Err = err
	} else {
		s.state.Items = items
		s.state.Err = nil
		if gen > s.staleAt {
			s.stale = false
		}
	}
	s.state.Generation = gen
	return s.snapshotLocked()
}

// Invalidate marks the committed list as outdated. The next Current call
// refetches it; Load callers are unaffected.
func (s *Store[T]) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.staleAt = s.started
	s.mu.Unlock()
}

// Current returns the committed state, loading when nothing was ever
// committed or the list was invalidated
func (s *Store[T]) Current(ctx context.Context) State[T] {
	s.mu.Lock()
	fresh := s.state.Generation > 0 && !s.stale
	s.mu.Unlock()

	if !fresh {
		return s.Load(ctx)
	}
	return s.Snapshot()
}

// Snapshot returns a copy of the current state
func (s *Store[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store[T]) snapshotLocked() State[T] {
	st := s.state
	st.Items = slices.Clone(s.state.Items)
	return st
}
