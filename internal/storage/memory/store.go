// Package memory is an in-process transactional store with optimistic
// concurrency control. It backs tests and single-node development setups.
//
// Every session reads a consistent snapshot: the first time a key is read,
// its committed version must not be newer than the session's start. Commit
// succeeds only if no key the session read or wrote was committed by another
// session in the meantime; otherwise it fails with an error wrapping
// txn.ErrConflict and nothing is applied.
package memory

import (
	"context"
	"sync"

	"github.com/go-faster/errors"

	"github.com/xenking/shop-ledger/internal/txn"
)

// ErrSessionClosed is returned by operations on a committed or rolled back
// session.
var ErrSessionClosed = errors.New("session closed")

const (
	tableWallets        = "wallets"
	tableProducts       = "products"
	tableProductsByName = "products_by_name"
	tableOrders         = "orders"
)

type key struct {
	table string
	id    string
}

// entry is a committed value. A nil value is a tombstone.
type entry struct {
	version uint64
	value   any
}

var _ txn.Beginner = (*Store)(nil)

// Store holds committed records.
type Store struct {
	mu    sync.RWMutex
	data  map[key]entry
	clock uint64
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: make(map[key]entry)}
}

// Begin starts a session reading the state committed so far.
func (s *Store) Begin(ctx context.Context) (txn.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	start := s.clock
	s.mu.RUnlock()

	return &Session{
		store:  s,
		start:  start,
		reads:  make(map[key]struct{}),
		writes: make(map[key]any),
	}, nil
}

// Ping implements the readiness check. The store is always reachable.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// IsTransient reports whether err is a commit or read conflict.
func IsTransient(err error) bool {
	return errors.Is(err, txn.ErrConflict)
}

// load returns the committed entry for k.
func (s *Store) load(k key) (entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[k]
	return e, ok
}

// scan calls fn for every committed entry of table, tombstones included.
func (s *Store) scan(table string, fn func(k key, e entry)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for k, e := range s.data {
		if k.table == table {
			fn(k, e)
		}
	}
}

func (s *Store) commit(start uint64, reads map[key]struct{}, writes map[key]any) error {
	// A read-only session saw a consistent snapshot and has nothing to apply.
	if len(writes) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range reads {
		if e, ok := s.data[k]; ok && e.version > start {
			return errors.Wrapf(txn.ErrConflict, "%s %q changed", k.table, k.id)
		}
	}
	for k := range writes {
		if e, ok := s.data[k]; ok && e.version > start {
			return errors.Wrapf(txn.ErrConflict, "%s %q changed", k.table, k.id)
		}
	}
	s.clock++
	for k, v := range writes {
		s.data[k] = entry{version: s.clock, value: v}
	}
	return nil
}
