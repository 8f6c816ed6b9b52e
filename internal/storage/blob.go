package storage

import (
	"context"
	"fmt"
)

const (
	DriverBolt     = "bolt"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// BlobStore keeps opaque values under string keys. Load returns ErrNotFound
// for a key that was never stored.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Store(ctx context.Context, key string, value []byte) error
	Close() error
}

// Open connects the backend named by driver. dsn is a file path for bolt and
// sqlite and a connection string for postgres; memory ignores it.
func Open(ctx context.Context, driver, dsn string) (BlobStore, error) {
	switch driver {
	case DriverBolt:
		return NewBolt(dsn)
	case DriverSQLite:
		return NewSQLite(ctx, dsn)
	case DriverPostgres:
		pool, err := InitDB(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return NewPostgres(pool), nil
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
