package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedEntry inserts value under a fresh unique key and returns the key.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, value string) string {
	t.Helper()

	key := "seed-" + uuid.New().String()[:8]
	_, err := pool.Exec(context.Background(),
		`INSERT INTO kv_entries (key, value) VALUES ($1, $2)`,
		key, value,
	)
	if err != nil {
		t.Fatalf("testhelper: seed entry: %v", err)
	}

	return key
}
