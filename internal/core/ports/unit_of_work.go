package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one command. Between Begin and
// Commit or Rollback, reads and writes through its repositories are isolated
// from other units of work, so a find-validate-write sequence is atomic.
type UnitOfWork interface {
	// Begin starts the transaction. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit publishes the changes made since Begin.
	Commit(ctx context.Context) error

	// Rollback discards the changes made since Begin.
	// It fails when there is no active transaction, e.g. after Commit.
	Rollback(ctx context.Context) error

	// DishRepository returns a repository bound to the current transaction.
	DishRepository() DishRepository

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}
