package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const createPageViewsTableSQL = `
CREATE TABLE IF NOT EXISTS page_views (
    page VARCHAR(255) NOT NULL,
    view_hour TIMESTAMP NOT NULL,
    views INTEGER NOT NULL DEFAULT 0,
    partition INTEGER NOT NULL,
    shard_key SMALLINT NOT NULL DEFAULT 0,
    PRIMARY KEY (page, view_hour, shard_key)
);
`

// Open opens the connection pool, verifies connectivity and ensures the
// page_views table exists.
func Open(ctx context.Context, dsn string, log *logrus.Entry) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.ExecContext(ctx, createPageViewsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create page_views table: %w", err)
	}

	log.WithField("table", "page_views").Info("database tables ensured")

	return db, nil
}
