// Package database provides the shared PostgreSQL connection pool.
// One pool is created per process and injected into repositories; never
// construct pools ad hoc inside services.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rasmoura/GestaoPedidosTmb/pkg/logger"
)

// Database wraps a pgxpool.Pool with project-standard configuration.
type Database struct {
	pool *pgxpool.Pool
}

// NewPool connects to PostgreSQL at databaseURL and verifies connectivity.
// The pool is long-lived; call Close on process shutdown.
func NewPool(ctx context.Context, databaseURL string, log logger.Logger) (*Database, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("database: parse config: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("database: create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	log.Info("database pool ready", "max_conns", poolCfg.MaxConns)
	return &Database{pool: pool}, nil
}

// Pool returns the underlying pgxpool.Pool for query execution.
func (d *Database) Pool() *pgxpool.Pool {
	return d.pool
}

// Ping checks the database connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close releases all pool connections.
func (d *Database) Close() {
	d.pool.Close()
}
