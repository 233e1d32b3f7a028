// Package repository implements the transactional store and the domain
// repositories on PostgreSQL.
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/shop-ledger/db"
	"github.com/xenking/shop-ledger/internal/txn"
)

// SQLSTATE codes the store cares about.
const (
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
	uniqueViolationCode      = "23505"
)

// NewPool creates a pgxpool.Pool configured with shopspring/decimal support
// for NUMERIC columns.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	return pool, nil
}

// RunMigrations applies the embedded migrations up to the latest version.
func RunMigrations(databaseURL string) error {
	src, err := iofs.New(db.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("opening migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(databaseURL))
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// migrateURL rewrites a postgres:// URL to the scheme of the pgx/v5
// migrate driver.
func migrateURL(databaseURL string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(databaseURL, scheme); ok {
			return "pgx5://" + rest
		}
	}
	return databaseURL
}

// ParseIsolation maps a configuration value to a transaction isolation level.
func ParseIsolation(s string) (pgx.TxIsoLevel, error) {
	switch strings.ToLower(strings.ReplaceAll(s, " ", "_")) {
	case "", "repeatable_read":
		return pgx.RepeatableRead, nil
	case "serializable":
		return pgx.Serializable, nil
	default:
		return "", errors.Errorf("unsupported isolation level %q", s)
	}
}

var _ txn.Beginner = (*Store)(nil)

// Store opens transactional sessions on a pool. Every session runs at the
// configured isolation level, REPEATABLE READ by default, so concurrent
// writers of the same row fail with a serialization error instead of
// overwriting each other.
type Store struct {
	pool      *pgxpool.Pool
	isolation pgx.TxIsoLevel
}

// NewStore returns a Store over pool.
func NewStore(pool *pgxpool.Pool, isolation pgx.TxIsoLevel) *Store {
	if isolation == "" {
		isolation = pgx.RepeatableRead
	}
	return &Store{pool: pool, isolation: isolation}
}

// Begin starts a read-write transaction.
func (s *Store) Begin(ctx context.Context) (txn.Session, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   s.isolation,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	return &Session{tx: tx}, nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

var _ txn.Session = (*Session)(nil)

// Session wraps a pgx transaction.
type Session struct {
	tx pgx.Tx
}

// Commit commits the transaction.
func (s *Session) Commit(ctx context.Context) error {
	return s.tx.Commit(ctx)
}

// Rollback aborts the transaction. Rolling back a finished transaction is a
// no-op.
func (s *Session) Rollback(ctx context.Context) error {
	if err := s.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

func session(s txn.Session) pgx.Tx {
	ps, ok := s.(*Session)
	if !ok {
		panic(errors.Errorf("repository: unexpected session type %T", s))
	}
	return ps.tx
}

// IsTransient reports whether err is a serialization failure, a deadlock,
// a failure that is safe to retry on another connection or a conflict
// raised by a repository.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, txn.ErrConflict) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case serializationFailureCode, deadlockDetectedCode:
			return true
		}
		return false
	}
	return pgconn.SafeToRetry(err)
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
