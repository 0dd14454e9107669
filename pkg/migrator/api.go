package migrator

import (
	"context"

	"github.com/pthm/rolas/pkg/schema"
)

// Migrate reads the schema file at schemaPath and applies it to the database
// in one operation. An empty schemaPath means schema.DefaultPath.
//
// The function is idempotent - safe to call on every application startup:
//
//	if err := migrator.Migrate(ctx, db, "tables.sql"); err != nil {
//	    log.Fatalf("migration failed: %v", err)
//	}
//
// File errors are wrapped, so errors.Is(err, fs.ErrNotExist) still reports a
// missing file.
func Migrate(ctx context.Context, db Execer, schemaPath string, opts ...Option) error {
	_, err := NewMigrator(db, schema.NewFileLoader(schemaPath), opts...).Migrate(ctx, MigrateOptions{})
	return err
}

// MigrateFromString applies schema content held in memory.
// Useful for testing or with the schema bundled in the binary:
//
//	err := migrator.MigrateFromString(ctx, db, rolassql.TablesSQL)
func MigrateFromString(ctx context.Context, db Execer, content string, opts ...Option) error {
	_, err := NewMigrator(db, schema.StringLoader(content), opts...).Migrate(ctx, MigrateOptions{})
	return err
}

// MigrateWithOptions performs migration with control over dry-run and skip
// behavior. See Migrator.Migrate for the meaning of skipped.
func MigrateWithOptions(ctx context.Context, db Execer, schemaPath string, opts MigrateOptions, migratorOpts ...Option) (skipped bool, err error) {
	return NewMigrator(db, schema.NewFileLoader(schemaPath), migratorOpts...).Migrate(ctx, opts)
}
