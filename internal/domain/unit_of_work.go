package domain

import "context"

// UnitOfWork manages transaction boundaries for multi-write operations,
// such as cascading deletes of a user and their messages.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
