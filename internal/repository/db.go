// Package repository persists extraction run history to a local SQLite
// database so repeated runs over the same catalog can be compared.
package repository

import (
	"context"
	"database/sql"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/ecom-insights/listing-attributes/internal/common"
)

const schema = `
CREATE TABLE IF NOT EXISTS extraction_run (
	id          TEXT PRIMARY KEY,
	input_path  TEXT NOT NULL,
	mode        TEXT NOT NULL,
	status      TEXT NOT NULL,
	total_rows  INTEGER NOT NULL DEFAULT 0,
	completed   INTEGER NOT NULL DEFAULT 0,
	started_at  TIMESTAMP NOT NULL,
	finished_at TIMESTAMP,
	error       TEXT
);

CREATE TABLE IF NOT EXISTS attribute_coverage (
	run_id    TEXT NOT NULL REFERENCES extraction_run(id),
	attribute TEXT NOT NULL,
	extracted INTEGER NOT NULL,
	total     INTEGER NOT NULL,
	PRIMARY KEY (run_id, attribute)
);
`

// Open opens (or creates) the run database at path and applies the schema.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapError(err, "open run database")
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, common.WrapError(err, "ping run database")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, common.WrapError(err, "apply run database schema")
	}
	logger.Info("repository.open.ok", "path", path)
	return db, nil
}
