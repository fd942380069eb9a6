package storage

import (
	"context"
	"fmt"
)

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Options selects and configures a backend for Open.
type Options struct {
	Driver string
	DSN    string // SQLite file path
	Redis  RedisOptions
}

// Open returns the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverSQLite, "":
		return OpenSQLite(ctx, opts.DSN)
	case DriverRedis:
		return OpenRedis(ctx, opts.Redis)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
