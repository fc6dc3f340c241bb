package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// sqliteSchema mirrors the PostgreSQL migrations. Timestamps are stored as
// unix milliseconds so range predicates compare integers.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS ad_placements (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		name           TEXT    NOT NULL,
		code           TEXT    NOT NULL UNIQUE,
		placement_type TEXT    NOT NULL,
		description    TEXT    NOT NULL DEFAULT '',
		width          INTEGER NOT NULL DEFAULT 300,
		height         INTEGER NOT NULL DEFAULT 250,
		active         INTEGER NOT NULL DEFAULT 1,
		max_ads        INTEGER NOT NULL DEFAULT 5,
		priority       INTEGER NOT NULL DEFAULT 1,
		created_at     INTEGER NOT NULL,
		updated_at     INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS advertisements (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid             TEXT    NOT NULL UNIQUE,
		title            TEXT    NOT NULL,
		placement_id     INTEGER NOT NULL REFERENCES ad_placements (id) ON DELETE CASCADE,
		ad_type          TEXT    NOT NULL,
		content          TEXT    NOT NULL DEFAULT '',
		link             TEXT    NOT NULL,
		target_blank     INTEGER NOT NULL DEFAULT 1,
		nofollow         INTEGER NOT NULL DEFAULT 1,
		start_date       INTEGER NOT NULL,
		end_date         INTEGER NOT NULL,
		active           INTEGER NOT NULL DEFAULT 1,
		priority         INTEGER NOT NULL DEFAULT 1,
		impressions      INTEGER NOT NULL DEFAULT 0,
		clicks           INTEGER NOT NULL DEFAULT 0,
		last_impression  INTEGER,
		last_click       INTEGER,
		advertiser_name  TEXT    NOT NULL DEFAULT '',
		advertiser_email TEXT    NOT NULL DEFAULT '',
		notes            TEXT    NOT NULL DEFAULT '',
		created_at       INTEGER NOT NULL,
		updated_at       INTEGER NOT NULL,
		CHECK (start_date < end_date)
	)`,
	`CREATE INDEX IF NOT EXISTS advertisements_active_window_idx ON advertisements (active, start_date, end_date)`,
	`CREATE INDEX IF NOT EXISTS advertisements_placement_active_idx ON advertisements (placement_id, active)`,
}

// NewSQLite opens the SQLite database at path, creating parent directories,
// and applies the schema. WAL and a busy timeout keep concurrent tracking
// writes from failing on lock contention.
func NewSQLite(ctx context.Context, path string) (*sql.DB, error) {
	clean := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)", clean)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single writer connection serialises counter updates.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err = sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}
	for _, stmt := range sqliteSchema {
		if _, err = sqlDB.ExecContext(ctx, stmt); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return sqlDB, nil
}
