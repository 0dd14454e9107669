package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/rolas/pkg/migrator"
)

var (
	migrateDB       string
	migrateSchema   string
	migrateEmbedded bool
	migrateDryRun   bool
	migrateForce    bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the music tables",
	Long:  `Apply tables.sql to the database, recording its checksum in rolas_migrations.`,
	Example: `  # Apply schema to database
  rolas migrate --db postgres://localhost/music

  # Apply the schema bundled with rolas to a SQLite file
  ROLAS_DATABASE_DRIVER=sqlite rolas migrate --db music.db --embedded

  # Preview migration without applying
  rolas migrate --dry-run

  # Force re-apply even if schema unchanged
  rolas migrate --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath := resolveString(migrateSchema, cfg.ResolvedSchema())
		dryRun := resolveBool(migrateDryRun, cfg.Migrate.DryRun)
		force := resolveBool(migrateForce, cfg.Migrate.Force)

		dsn, err := resolveDSN(migrateDB)
		if err != nil {
			return err
		}

		return runMigrate(dsn, schemaPath, dryRun, force)
	},
}

func init() {
	f := migrateCmd.Flags()
	f.StringVar(&migrateDB, "db", "", "database URL")
	f.StringVar(&migrateSchema, "schema", "", "path to tables.sql")
	f.BoolVar(&migrateEmbedded, "embedded", false, "apply the schema bundled with rolas")
	f.BoolVar(&migrateDryRun, "dry-run", false, "output migration SQL without applying")
	f.BoolVar(&migrateForce, "force", false, "force migration even if schema unchanged")
}

func runMigrate(dsn, schemaPath string, dryRun, force bool) error {
	ctx := context.Background()

	db, dialect, err := openDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	opts := migrator.MigrateOptions{
		Force: force,
	}

	if dryRun {
		opts.DryRun = os.Stdout
		if !quiet {
			fmt.Fprintln(os.Stderr, "-- Dry-run mode: SQL will be output but not applied")
			fmt.Fprintln(os.Stderr, "")
		}
	} else if !quiet {
		fmt.Println("Applying music schema...")
	}

	m := migrator.NewMigrator(db, schemaLoader(schemaPath, migrateEmbedded), migrator.WithDialect(dialect))
	skipped, err := m.Migrate(ctx, opts)
	if err != nil {
		return classifySchemaErr("migration failed", err)
	}

	if dryRun || quiet {
		return nil
	}

	if skipped {
		fmt.Println("Schema unchanged, migration skipped.")
		fmt.Println("Use --force to re-apply.")
	} else {
		fmt.Println("Music schema applied successfully.")
	}
	return nil
}
