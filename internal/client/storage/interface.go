// Package storage provides the persistent key/value backends that hold the
// client's local state (bearer token, display language).
//
// Three backends satisfy Store:
//   - SQLiteStore: a local database file migrated with goose (default).
//   - RedisStore:  a shared Redis instance, keys namespaced by a prefix.
//   - MemoryStore: process-local, used by tests and the "memory" driver.
//
// Contract: Get returns (nil, nil) for an absent key; Delete of an absent key
// is not an error. No backend applies a TTL.
package storage

import "context"

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
