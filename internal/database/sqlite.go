package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

// OpenSQLite opens the SQLite database at path and applies the embedded
// schema. Times are written in SQLite's own text format so they sort and
// compare correctly.
//
// An in-memory database lives on a single connection, so the pool is
// capped at one connection for MemoryPath.
func OpenSQLite(ctx context.Context, path string, logger *zerolog.Logger) (*sql.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_time_format=sqlite"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := ApplySQLiteSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info().Str("path", path).Msg("opened sqlite database")
	return db, nil
}

// ApplySQLiteSchema runs every embedded SQLite migration in file-name order.
// Statements are idempotent, so running it twice is harmless.
func ApplySQLiteSchema(ctx context.Context, db *sql.DB) error {
	files, err := fs.Glob(migrations, "migrations/sqlite/*.sql")
	if err != nil {
		return fmt.Errorf("listing sqlite migrations: %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		body, err := fs.ReadFile(migrations, name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		for _, stmt := range strings.Split(string(body), ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("applying %s: %w", name, err)
			}
		}
	}
	return nil
}
