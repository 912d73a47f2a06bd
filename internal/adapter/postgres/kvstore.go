package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

const kvTable = "kv_entries"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// KVStore keeps one JSON document per key in the kv_entries table.
// Values must be valid JSON.
type KVStore struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewKVStore creates a key-value store over pool. Run Migrate first.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool, now: time.Now}
}

// Get returns the value stored under key or domain.ErrNotFound.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var value []byte
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return nil, mapError(err, "kv", key)
	}

	return value, nil
}

// Put overwrites the value stored under key.
func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := psql.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), s.now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build put query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, "kv", key)
	}

	return nil
}

// Delete removes key. Deleting a missing key returns domain.ErrNotFound.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	query, args, err := psql.
		Delete(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "kv", key)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("kv %s: %w", key, domain.ErrNotFound)
	}

	return nil
}

// Ping checks that the database is reachable.
func (s *KVStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: ping: %w", err)
	}
	return nil
}
