// Package txn runs units of work inside atomic multi-record transactions and
// retries them when the store reports a transient, retry-safe failure.
package txn

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
)

// Session is a handle to one open transaction. Repositories bound to a
// Session read and write through it; nothing is visible to other sessions
// until Commit succeeds.
type Session interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Beginner opens transactional sessions against a store.
type Beginner interface {
	Begin(ctx context.Context) (Session, error)
}

// TransientFunc reports whether err is a retry-safe store failure such as a
// write conflict, serialization failure or deadlock.
type TransientFunc func(err error) bool

var (
	// ErrConflict is the store-agnostic transient failure. Backends wrap it
	// when they detect a concurrent modification.
	ErrConflict = errors.New("transaction conflict")

	// ErrExhausted is matched by every *ExhaustedError.
	ErrExhausted = errors.New("transaction exhausted retries")

	// ErrNestedUnit is returned when Run is called with a context that already
	// belongs to an active unit. Join the existing Session instead.
	ErrNestedUnit = errors.New("nested transactional unit")
)

// ExhaustedError is returned after every attempt failed transiently. It does
// not unwrap to the last cause: callers must treat it as its own kind.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("transaction failed after %d attempts: %v", e.Attempts, e.Last)
}

// Is reports whether target is ErrExhausted.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}

// IsConflict is the default TransientFunc. It only recognizes ErrConflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

type unitKey struct{}

// InUnit reports whether ctx belongs to an active unit of work.
func InUnit(ctx context.Context) bool {
	v, _ := ctx.Value(unitKey{}).(bool)
	return v
}

func withUnit(ctx context.Context) context.Context {
	return context.WithValue(ctx, unitKey{}, true)
}
