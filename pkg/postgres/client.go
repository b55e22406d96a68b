// Package postgres wraps database/sql with the connection handling the count
// store relies on. Pool limits are sized for the pipeline's workload of a few
// flush writers plus batch merges.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/corpustools/freqpipe/pkg/config"
	_ "github.com/lib/pq"
)

// Client is a pooled PostgreSQL connection.
type Client struct {
	DB  *sql.DB
	cfg config.PostgresConfig
}

// New opens a connection pool and verifies it with a ping before returning.
func New(cfg config.PostgresConfig) (*Client, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	open, idle, lifetime := poolLimits(cfg)
	db.SetMaxOpenConns(open)
	db.SetMaxIdleConns(idle)
	db.SetConnMaxLifetime(lifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return &Client{DB: db, cfg: cfg}, nil
}

// poolLimits resolves the effective pool settings, filling in defaults for
// zero values. The store sees a handful of flush writers plus occasional
// batch merges, so the fallback pool is small, and idle connections never
// exceed the open limit.
func poolLimits(cfg config.PostgresConfig) (open, idle int, lifetime time.Duration) {
	open = cfg.MaxOpenConns
	if open <= 0 {
		open = 10
	}
	idle = cfg.MaxIdleConns
	if idle <= 0 {
		idle = 2
	}
	if idle > open {
		idle = open
	}
	lifetime = cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = 30 * time.Minute
	}
	return open, idle, lifetime
}

// Ping reports whether the pool can still reach the database.
func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.DB.Close()
}

// InTx runs fn inside a transaction, rolling back if fn returns an error and
// committing otherwise.
func (c *Client) InTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rolling back transaction after error %v: %w", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
