// Package db archives generated items in PostgreSQL.
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// applicationName tags archive connections in pg_stat_activity.
const applicationName = "arpgcore-item-archive"

// DB wraps the pgx pool of the item archive.
type DB struct {
	pool *pgxpool.Pool
}

// New connects to the item archive. maxConns caps the pool; values below 1
// keep the pgx default.
func New(ctx context.Context, dsn string, maxConns int32) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing item archive dsn: %w", err)
	}
	cfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to item archive: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging item archive %s:%d: %w", cfg.ConnConfig.Host, cfg.ConnConfig.Port, err)
	}

	slog.Debug("item archive connected",
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database,
		"maxConns", cfg.MaxConns)
	return &DB{pool: pool}, nil
}

// Close closes the pool.
func (d *DB) Close() {
	d.pool.Close()
}

// Pool returns the underlying pgx pool for repositories.
func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}
