// Package database provides database access for the transfer journal
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the SQL database connection
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(ctx context.Context, driver, dsn string) (*DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Migrate creates all required tables
func (db *DB) Migrate(ctx context.Context) error {
	schema := `
	-- One row per money-movement call made through the client
	CREATE TABLE IF NOT EXISTS transfer_journal (
		id UUID PRIMARY KEY,
		endpoint VARCHAR(100) NOT NULL,
		ext_transaction_id VARCHAR(255),
		transaction_id VARCHAR(255),
		amount_minor BIGINT NOT NULL,
		currency VARCHAR(3) NOT NULL,
		success BOOLEAN NOT NULL,
		response_code VARCHAR(50),
		next_step VARCHAR(100),
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_transfer_journal_ext ON transfer_journal(ext_transaction_id);
	CREATE INDEX IF NOT EXISTS idx_transfer_journal_tx ON transfer_journal(transaction_id);
	CREATE INDEX IF NOT EXISTS idx_transfer_journal_created ON transfer_journal(created_at);
	`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Reset drops all tables (for testing)
func (db *DB) Reset(ctx context.Context) error {
	_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS transfer_journal CASCADE;`)
	return err
}

// CleanData truncates all tables without dropping them (for testing)
func (db *DB) CleanData(ctx context.Context) error {
	_, err := db.ExecContext(ctx, `TRUNCATE TABLE transfer_journal;`)
	return err
}
