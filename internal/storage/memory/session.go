package memory

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/shop-ledger/internal/txn"
)

var _ txn.Session = (*Session)(nil)

// Session is a single optimistic transaction. It is not safe for concurrent
// use; the executor drives it from one goroutine.
type Session struct {
	store  *Store
	start  uint64
	reads  map[key]struct{}
	writes map[key]any
	done   bool
}

// Commit applies the buffered writes if no conflicting commit happened since
// the session started.
func (s *Session) Commit(ctx context.Context) error {
	if s.done {
		return ErrSessionClosed
	}
	s.done = true
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.commit(s.start, s.reads, s.writes)
}

// Rollback discards the buffered writes. Rolling back a finished session is
// a no-op.
func (s *Session) Rollback(context.Context) error {
	s.done = true
	s.writes = nil
	return nil
}

// get returns the value of k as seen by the session, or nil if absent.
func (s *Session) get(k key) (any, error) {
	if s.done {
		return nil, ErrSessionClosed
	}
	if v, ok := s.writes[k]; ok {
		return v, nil
	}
	e, ok := s.store.load(k)
	if ok && e.version > s.start {
		return nil, errors.Wrapf(txn.ErrConflict, "%s %q changed after snapshot", k.table, k.id)
	}
	s.reads[k] = struct{}{}
	if !ok {
		return nil, nil
	}
	return e.value, nil
}

// put buffers v as the new value of k. A nil v deletes k.
func (s *Session) put(k key, v any) error {
	if s.done {
		return ErrSessionClosed
	}
	s.writes[k] = v
	return nil
}

// scan returns the live values of table as seen by the session, committed
// entries overlaid with the session's own writes. Keys inserted by other
// sessions after the snapshot fail the scan with a conflict.
func (s *Session) scan(table string) ([]any, error) {
	if s.done {
		return nil, ErrSessionClosed
	}

	var conflict error
	seen := make(map[key]any)
	s.store.scan(table, func(k key, e entry) {
		if e.version > s.start && conflict == nil {
			conflict = errors.Wrapf(txn.ErrConflict, "%s %q changed after snapshot", k.table, k.id)
		}
		seen[k] = e.value
	})
	if conflict != nil {
		return nil, conflict
	}
	for k := range seen {
		s.reads[k] = struct{}{}
	}
	for k, v := range s.writes {
		if k.table == table {
			seen[k] = v
		}
	}

	out := make([]any, 0, len(seen))
	for _, v := range seen {
		if v != nil {
			out = append(out, v)
		}
	}
	return out, nil
}

func session(s txn.Session) *Session {
	ms, ok := s.(*Session)
	if !ok {
		panic(errors.Errorf("memory: unexpected session type %T", s))
	}
	return ms
}
