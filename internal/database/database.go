package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSettings carries the pgx pool tuning knobs from config. Zero
// values fall back to the defaults below.
type PoolSettings struct {
	MaxConns          int32
	MinConns          int32
	ConnLifetime      time.Duration
	ConnIdleTime      time.Duration
	HealthCheckPeriod time.Duration
}

func (s PoolSettings) withDefaults() PoolSettings {
	if s.MaxConns <= 0 {
		s.MaxConns = 10
	}
	if s.MinConns < 0 {
		s.MinConns = 0
	}
	if s.ConnLifetime <= 0 {
		s.ConnLifetime = 30 * time.Minute
	}
	if s.ConnIdleTime <= 0 {
		s.ConnIdleTime = 5 * time.Minute
	}
	if s.HealthCheckPeriod <= 0 {
		s.HealthCheckPeriod = 30 * time.Second
	}
	return s
}

type DB struct {
	Pool *pgxpool.Pool
}

// New opens a pgx pool against databaseURL and verifies connectivity
// with a ping before returning.
func New(ctx context.Context, databaseURL string, settings PoolSettings) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	settings = settings.withDefaults()
	cfg.MaxConns = settings.MaxConns
	cfg.MinConns = settings.MinConns
	cfg.MaxConnLifetime = settings.ConnLifetime
	cfg.MaxConnIdleTime = settings.ConnIdleTime
	cfg.HealthCheckPeriod = settings.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("postgres pool ready",
		"max_conns", settings.MaxConns,
		"min_conns", settings.MinConns,
		"conn_lifetime", settings.ConnLifetime)
	return &DB{Pool: pool}, nil
}

func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Health is what the /health endpoint reports: a live round trip to
// the database, not just process liveness.
func (db *DB) Health(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}
