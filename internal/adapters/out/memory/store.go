// Package memory is the default storage adapter: a process-local store with
// unit of work semantics.
//
// Units of work are serialized. Begin waits for the previous unit of work to
// finish (or for ctx to be cancelled) and then works on a private copy of the
// data; Commit publishes that copy atomically and Rollback drops it. Readers
// never wait for a unit of work and always observe the last committed state.
//
// Example:
//
//	store := memory.NewStore()
//	uow := memory.NewUnitOfWorkFactory(store).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.DishRepository().Add(ctx, d); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"sync"
)

// Store holds the committed state shared by all units of work and readers.
type Store struct {
	writer chan struct{}

	mu        sync.RWMutex
	committed *state
}

func NewStore() *Store {
	return &Store{
		writer:    make(chan struct{}, 1),
		committed: newState(),
	}
}

// Reset drops all data. It waits for the running unit of work, if any.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()

	s.publish(newState())
	return nil
}

func (s *Store) lock(ctx context.Context) error {
	select {
	case s.writer <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) unlock() {
	<-s.writer
}

// snapshot returns the committed state. Callers must not modify it.
func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed
}

func (s *Store) publish(next *state) {
	s.mu.Lock()
	s.committed = next
	s.mu.Unlock()
}

// write runs fn against a copy of the committed state and publishes the
// copy if fn succeeds.
func (s *Store) write(ctx context.Context, fn func(*state) error) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()

	working := s.snapshot().clone()
	if err := fn(working); err != nil {
		return err
	}
	s.publish(working)
	return nil
}
