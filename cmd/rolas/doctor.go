package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/rolas/internal/cli"
	"github.com/pthm/rolas/internal/doctor"
)

var (
	doctorDB      string
	doctorSchema  string
	doctorVerbose bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks",
	Long:  `Run health checks on the schema file, the migration state and every music table.`,
	Example: `  # Run health checks
  rolas doctor --db postgres://localhost/music

  # Run with verbose output
  rolas doctor --db postgres://localhost/music --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath := resolveString(doctorSchema, cfg.ResolvedSchema())
		verboseFlag := resolveBool(doctorVerbose, cfg.Doctor.Verbose, verbose > 0)

		dsn, err := resolveDSN(doctorDB)
		if err != nil {
			return err
		}

		return runDoctor(dsn, schemaPath, verboseFlag)
	},
}

func init() {
	f := doctorCmd.Flags()
	f.StringVar(&doctorDB, "db", "", "database URL")
	f.StringVar(&doctorSchema, "schema", "", "path to tables.sql")
	f.BoolVar(&doctorVerbose, "verbose", false, "show detailed output")
}

func runDoctor(dsn, schemaPath string, verboseFlag bool) error {
	ctx := context.Background()

	db, dialect, err := openDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if !quiet {
		fmt.Println("rolas doctor - Health Check")
	}

	d := doctor.New(db, schemaLoader(schemaPath, false), dialect)
	report, err := d.Run(ctx)
	if err != nil {
		return cli.GeneralError("running doctor", err)
	}

	report.Print(os.Stdout, verboseFlag)

	if report.HasErrors() {
		return cli.GeneralError("health checks failed", nil)
	}

	return nil
}
