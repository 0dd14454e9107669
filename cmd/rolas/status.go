package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/rolas/internal/cli"
	"github.com/pthm/rolas/pkg/migrator"
)

var (
	statusDB     string
	statusSchema string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current schema status",
	Long:  `Show whether the schema file is present and whether the database was migrated with it.`,
	Example: `  # Check status
  rolas status --db postgres://localhost/music`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath := resolveString(statusSchema, cfg.ResolvedSchema())

		dsn, err := resolveDSN(statusDB)
		if err != nil {
			return err
		}

		return runStatus(dsn, schemaPath)
	},
}

func init() {
	f := statusCmd.Flags()
	f.StringVar(&statusDB, "db", "", "database URL")
	f.StringVar(&statusSchema, "schema", "", "path to tables.sql")
}

func runStatus(dsn, schemaPath string) error {
	ctx := context.Background()

	db, dialect, err := openDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	m := migrator.NewMigrator(db, schemaLoader(schemaPath, false), migrator.WithDialect(dialect))
	s, err := m.GetStatus(ctx)
	if err != nil {
		return cli.GeneralError("getting status", err)
	}

	if s.SchemaExists {
		fmt.Println("Schema file:  present")
	} else {
		fmt.Println("Schema file:  missing")
	}
	switch {
	case s.LastChecksum == "":
		fmt.Println("Migration:    never applied")
	case s.UpToDate():
		fmt.Println("Migration:    up to date")
	default:
		fmt.Println("Migration:    outdated")
	}

	if !s.SchemaExists {
		fmt.Printf("\nNo schema found at %s\n", schemaPath)
	} else if !s.UpToDate() {
		fmt.Println("\nRun 'rolas migrate' to apply the current schema.")
	}

	return nil
}
