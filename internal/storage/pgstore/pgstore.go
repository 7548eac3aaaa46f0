// Package pgstore keeps storage keys as rows of a Postgres table.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kwadjo-wusu-ansah/notes/internal/storage"
)

const schema = `CREATE TABLE IF NOT EXISTS notes_kv (
	namespace  TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      BYTEA       NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (namespace, key)
)`

const (
	getSQL = `SELECT value FROM notes_kv WHERE namespace = $1 AND key = $2`
	putSQL = `INSERT INTO notes_kv (namespace, key, value) VALUES ($1, $2, $3)
ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is a storage.Backend over a single table. Namespace separates the
// data of several users sharing one database.
type Store struct {
	db        querier
	namespace string
	close     func()
}

// Open connects to dsn and creates the table when it does not exist.
func Open(ctx context.Context, dsn, namespace string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn cannot be empty")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}

	s := &Store{db: pool, namespace: namespace, close: pool.Close}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create notes_kv: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(ctx, getSQL, s.namespace, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.Exec(ctx, putSQL, s.namespace, key, value); err != nil {
		if isQuota(err) {
			return fmt.Errorf("%w: %w", storage.ErrQuotaExceeded, err)
		}
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}

func isQuota(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgerrcode.DiskFull, pgerrcode.ProgramLimitExceeded, pgerrcode.OutOfMemory:
		return true
	}
	return false
}
