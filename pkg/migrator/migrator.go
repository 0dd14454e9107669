// Package migrator creates the music-library tables in a database.
//
// The schema text comes from a schema.Loader and is executed as a single
// script. Each successful run is recorded in rolas_migrations together with
// the SHA-256 checksum of the text, so running the migrator again with an
// unchanged schema is a no-op.
package migrator

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/pthm/rolas/pkg/schema"
)

// MigrateOptions controls migration behavior.
type MigrateOptions struct {
	// DryRun outputs SQL to the provided writer without applying changes to the database.
	// If nil, migration proceeds normally.
	DryRun io.Writer

	// Force re-runs the schema even if its checksum matches the last migration.
	Force bool
}

// Option configures a Migrator.
type Option func(*Migrator)

// WithDialect sets the dialect used for bookkeeping queries.
// The default is DialectPostgres.
func WithDialect(d Dialect) Option {
	return func(m *Migrator) {
		m.dialect = d
	}
}

// Migrator applies schema text to a database.
// It is idempotent - safe to run on every application startup.
type Migrator struct {
	db      Execer
	loader  schema.Loader
	dialect Dialect
}

// NewMigrator creates a new schema migrator.
// The Execer is typically *sql.DB but can be *sql.Tx for testing.
func NewMigrator(db Execer, loader schema.Loader, opts ...Option) *Migrator {
	m := &Migrator{db: db, loader: loader, dialect: DialectPostgres}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ComputeChecksum returns a SHA256 hash of the schema content.
func ComputeChecksum(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:])
}

// Migrate loads the schema and applies it.
//
// Returns skipped=true when the schema checksum matches the last recorded
// migration and neither Force nor DryRun is set. Uses a transaction when the
// Execer supports BeginTx.
func (m *Migrator) Migrate(ctx context.Context, opts MigrateOptions) (skipped bool, err error) {
	content, err := m.loader.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("loading schema: %w", err)
	}
	checksum := ComputeChecksum(content)

	if opts.DryRun != nil {
		m.outputDryRun(opts.DryRun, content, checksum)
		return false, nil
	}

	if txer, ok := m.db.(txBeginner); ok {
		tx, err := txer.BeginTx(ctx, nil)
		if err != nil {
			return false, fmt.Errorf("starting transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		skipped, err := m.apply(ctx, tx, content, checksum, opts.Force)
		if err != nil {
			return false, err
		}
		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("committing migration: %w", err)
		}
		return skipped, nil
	}

	log.Printf("[rolas] WARNING: database handle does not support transactions, applying schema without one")
	return m.apply(ctx, m.db, content, checksum, opts.Force)
}

// apply runs the bookkeeping DDL, the skip check, the schema and the record
// insert against db.
func (m *Migrator) apply(ctx context.Context, db Execer, content, checksum string, force bool) (bool, error) {
	if _, err := db.ExecContext(ctx, m.dialect.migrationsDDL()); err != nil {
		return false, fmt.Errorf("applying migrations DDL: %w", err)
	}

	if !force {
		last, err := m.lastChecksum(ctx, db)
		if err != nil {
			return false, fmt.Errorf("checking last migration: %w", err)
		}
		if last == checksum {
			return true, nil
		}
	}

	if _, err := db.ExecContext(ctx, content); err != nil {
		return false, fmt.Errorf("applying schema: %w", err)
	}

	insert := "INSERT INTO rolas_migrations (schema_checksum) VALUES (" + m.dialect.placeholder(1) + ")"
	if _, err := db.ExecContext(ctx, insert, checksum); err != nil {
		return false, fmt.Errorf("inserting migration record: %w", err)
	}
	return false, nil
}

// lastChecksum returns the checksum of the most recent migration, or "" if
// none was recorded.
func (m *Migrator) lastChecksum(ctx context.Context, db Execer) (string, error) {
	var checksum string
	err := db.QueryRowContext(ctx, `
		SELECT schema_checksum
		FROM rolas_migrations
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&checksum)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying last migration: %w", err)
	}
	return checksum, nil
}

// Status represents the current migration state.
type Status struct {
	// SchemaExists indicates the loader returned schema text.
	SchemaExists bool

	// Checksum is the checksum of the current schema text, empty when
	// SchemaExists is false.
	Checksum string

	// LastChecksum is the checksum recorded by the last migration, empty when
	// the database was never migrated.
	LastChecksum string
}

// UpToDate reports whether the last migration applied the current schema.
func (s *Status) UpToDate() bool {
	return s.SchemaExists && s.LastChecksum != "" && s.LastChecksum == s.Checksum
}

// GetStatus returns the current migration status without modifying the
// database.
func (m *Migrator) GetStatus(ctx context.Context) (*Status, error) {
	status := &Status{}

	if content, err := m.loader.Load(ctx); err == nil {
		status.SchemaExists = true
		status.Checksum = ComputeChecksum(content)
	}

	var exists bool
	if err := m.db.QueryRowContext(ctx, m.dialect.migrationsExistQuery()).Scan(&exists); err != nil {
		return nil, fmt.Errorf("checking rolas_migrations: %w", err)
	}
	if !exists {
		return status, nil
	}

	last, err := m.lastChecksum(ctx, m.db)
	if err != nil {
		return nil, err
	}
	status.LastChecksum = last
	return status, nil
}

// outputDryRun writes the migration SQL to the provided writer.
func (m *Migrator) outputDryRun(w io.Writer, content, checksum string) {
	_, _ = fmt.Fprintf(w, "-- Rolas Migration (dry-run)\n")
	_, _ = fmt.Fprintf(w, "-- Schema checksum: %s\n", checksum)
	_, _ = fmt.Fprintf(w, "\n")

	_, _ = fmt.Fprintf(w, "-- ============================================================\n")
	_, _ = fmt.Fprintf(w, "-- DDL: Migration Tracking Table\n")
	_, _ = fmt.Fprintf(w, "-- ============================================================\n\n")
	_, _ = fmt.Fprintf(w, "%s;\n\n", m.dialect.migrationsDDL())

	_, _ = fmt.Fprintf(w, "-- ============================================================\n")
	_, _ = fmt.Fprintf(w, "-- Schema\n")
	_, _ = fmt.Fprintf(w, "-- ============================================================\n\n")
	_, _ = fmt.Fprintf(w, "%s\n\n", content)

	_, _ = fmt.Fprintf(w, "-- ============================================================\n")
	_, _ = fmt.Fprintf(w, "-- Migration Record\n")
	_, _ = fmt.Fprintf(w, "-- ============================================================\n\n")
	_, _ = fmt.Fprintf(w, "INSERT INTO rolas_migrations (schema_checksum) VALUES ('%s');\n", checksum)
}
