// Package postgres holds shared Postgres wiring for the postgres adapters.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolOptions tunes pool construction; zero values select the defaults below.
type PoolOptions struct {
	MaxConns       int32
	ConnectTimeout time.Duration
}

// NewPool builds and pings a pgx connection pool.
func NewPool(ctx context.Context, dsn string, opts PoolOptions) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty postgres dsn")
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	connectTimeout := opts.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 5 * time.Second
	}
	cfg.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// Migrate creates the schema if it does not exist.
//
// The pos column records insertion sequence; List orders by it descending to keep
// the ledger head-first. Entry ids are assigned by the ledger adapter, not the
// database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS ledger_entries (
			pos         BIGSERIAL PRIMARY KEY,
			id          INTEGER NOT NULL,
			description TEXT    NOT NULL,
			amount      BIGINT  NOT NULL,
			entry_date  TEXT    NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate ledger_entries: %w", err)
	}
	return nil
}
