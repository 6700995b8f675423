package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS mints (
	url          TEXT PRIMARY KEY,
	trusted      INTEGER NOT NULL DEFAULT 0,
	last_checked TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS mint_quotes (
	quote_id TEXT NOT NULL,
	mint_url TEXT NOT NULL,
	amount   INTEGER,
	state    TEXT NOT NULL,
	expiry   INTEGER NOT NULL DEFAULT 0,
	request  TEXT NOT NULL DEFAULT '',
	unit     TEXT NOT NULL DEFAULT 'sat',
	PRIMARY KEY (mint_url, quote_id)
);

CREATE TABLE IF NOT EXISTS melt_quotes (
	quote_id    TEXT NOT NULL,
	mint_url    TEXT NOT NULL,
	amount      INTEGER NOT NULL,
	fee_reserve INTEGER NOT NULL DEFAULT 0,
	state       TEXT NOT NULL,
	expiry      INTEGER NOT NULL DEFAULT 0,
	preimage    TEXT,
	unit        TEXT NOT NULL DEFAULT 'sat',
	request     TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (mint_url, quote_id)
);

CREATE TABLE IF NOT EXISTS history (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	mint_url   TEXT NOT NULL,
	unit       TEXT NOT NULL DEFAULT 'sat',
	amount     INTEGER NOT NULL,
	quote_id   TEXT NOT NULL DEFAULT '',
	token      TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_mint_quotes_state ON mint_quotes (state);
CREATE INDEX IF NOT EXISTS idx_history_created_at ON history (created_at DESC);
`

// Open opens (creating if needed) the wallet database at path and applies the
// schema. The parent directory is created when missing.
func Open(ctx context.Context, path string, log zerolog.Logger) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating wallet db directory: %w", err)
		}
	}

	// WAL keeps the watcher's polling reads from blocking writers.
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening wallet db: %w", err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging wallet db: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying wallet db schema: %w", err)
	}

	log.Info().Str("path", path).Msg("wallet database opened")
	return db, nil
}
