// Package archive persists rendered metric snapshots to Postgres on a
// fixed interval, so a history of the document survives process
// restarts. Archiving is best effort: failures are logged, never
// fatal, and the HTTP surface is unaffected.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/mkarpov/metricserve/internal/app/server/render"
	"github.com/mkarpov/metricserve/internal/pkg/retry"
)

const createTableSQL = `
    CREATE TABLE IF NOT EXISTS metric_snapshots (
        id       bigserial PRIMARY KEY,
        taken_at timestamptz NOT NULL DEFAULT now(),
        body     jsonb NOT NULL
    );
`

type Archiver struct {
	pool       *pgxpool.Pool
	serializer *render.Serializer
	logger     *logrus.Logger
	interval   time.Duration
	stopChan   chan struct{}
}

// New connects to Postgres, ensures the snapshot table exists and
// returns a ready archiver. Call Run to start the periodic loop.
func New(ctx context.Context, dsn string, serializer *render.Serializer, interval time.Duration, logger *logrus.Logger) (*Archiver, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database DSN: %w", err)
	}

	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return &Archiver{
		pool:       pool,
		serializer: serializer,
		logger:     logger,
		interval:   interval,
		stopChan:   make(chan struct{}),
	}, nil
}

// Store renders one compact snapshot and inserts it, retrying
// transient network and connection-class failures.
func (a *Archiver) Store(ctx context.Context) error {
	var buf bytes.Buffer
	if err := a.serializer.WriteSnapshot(&buf, render.Options{}); err != nil {
		return fmt.Errorf("failed to render snapshot: %w", err)
	}

	return retry.DoWithRetry(func() error {
		_, err := a.pool.Exec(ctx, `INSERT INTO metric_snapshots (body) VALUES ($1)`, buf.Bytes())
		return err
	})
}

// Run archives on the configured interval until Shutdown.
func (a *Archiver) Run() {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.Store(context.Background()); err != nil {
				a.logger.WithError(err).Error("Failed to archive metrics snapshot")
			}
		case <-a.stopChan:
			return
		}
	}
}

// Shutdown stops the loop, stores a final snapshot and closes the pool.
func (a *Archiver) Shutdown() error {
	close(a.stopChan)
	err := a.Store(context.Background())
	a.pool.Close()
	return err
}
