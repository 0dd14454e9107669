// Package doctor provides health checks for a rolas music-library database.
//
// The doctor validates that the schema resource loads, that the database was
// migrated with the current schema, and that every table of the model can be
// queried.
//
// Example usage:
//
//	d := doctor.New(db, schema.NewFileLoader("tables.sql"))
//	report, err := d.Run(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	report.Print(os.Stdout, true) // verbose=true
package doctor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/pthm/rolas"
	"github.com/pthm/rolas/pkg/migrator"
	"github.com/pthm/rolas/pkg/schema"
)

// Status represents the result of a health check.
type Status int

const (
	// StatusPass indicates the check passed.
	StatusPass Status = iota
	// StatusWarn indicates a non-critical issue.
	StatusWarn
	// StatusFail indicates a critical issue that will cause failures.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns a status indicator symbol for terminal output.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "✓"
	case StatusWarn:
		return "⚠"
	case StatusFail:
		return "✗"
	default:
		return "?"
	}
}

// CheckResult represents the outcome of a single health check.
type CheckResult struct {
	// Category groups related checks (e.g., "Schema", "Tables").
	Category string

	// Name is a short identifier for the check.
	Name string

	Status  Status
	Message string

	// Details provides additional information for verbose output.
	Details string

	// FixHint suggests how to resolve issues.
	FixHint string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult

	// Summary counts.
	Passed   int
	Warnings int
	Errors   int
}

// AddCheck adds a check result and updates summary counts.
func (r *Report) AddCheck(check CheckResult) {
	r.Checks = append(r.Checks, check)
	switch check.Status {
	case StatusPass:
		r.Passed++
	case StatusWarn:
		r.Warnings++
	case StatusFail:
		r.Errors++
	}
}

// Print writes the report to the given writer.
func (r *Report) Print(w io.Writer, verbose bool) {
	categories := make(map[string][]CheckResult)
	var categoryOrder []string
	for _, check := range r.Checks {
		if _, exists := categories[check.Category]; !exists {
			categoryOrder = append(categoryOrder, check.Category)
		}
		categories[check.Category] = append(categories[check.Category], check)
	}

	for _, cat := range categoryOrder {
		_, _ = fmt.Fprintf(w, "\n%s\n", cat)
		for _, check := range categories[cat] {
			_, _ = fmt.Fprintf(w, "  %s %s\n", check.Status.Symbol(), check.Message)
			if verbose && check.Details != "" {
				for _, line := range strings.Split(check.Details, "\n") {
					_, _ = fmt.Fprintf(w, "      %s\n", line)
				}
			}
			if check.Status != StatusPass && check.FixHint != "" {
				_, _ = fmt.Fprintf(w, "      Fix: %s\n", check.FixHint)
			}
		}
	}

	_, _ = fmt.Fprintf(w, "\nSummary: %d passed, %d warnings, %d errors\n",
		r.Passed, r.Warnings, r.Errors)
}

// HasErrors returns true if any check failed.
func (r *Report) HasErrors() bool {
	return r.Errors > 0
}

// Doctor performs health checks on a music-library database.
type Doctor struct {
	db      *sql.DB
	loader  schema.Loader
	dialect migrator.Dialect
}

// New creates a new Doctor instance.
func New(db *sql.DB, loader schema.Loader, dialect migrator.Dialect) *Doctor {
	return &Doctor{db: db, loader: loader, dialect: dialect}
}

// Run executes all health checks and returns a report.
// Errors are returned only when a check itself cannot run.
func (d *Doctor) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	d.checkSchema(ctx, report)
	if err := d.checkMigrationState(ctx, report); err != nil {
		return nil, fmt.Errorf("checking migration state: %w", err)
	}
	d.checkTables(ctx, report)

	return report, nil
}

// checkSchema validates the schema resource loads.
func (d *Doctor) checkSchema(ctx context.Context, report *Report) {
	content, err := d.loader.Load(ctx)
	if err != nil {
		report.AddCheck(CheckResult{
			Category: "Schema",
			Name:     "loads",
			Status:   StatusFail,
			Message:  "Schema could not be loaded",
			Details:  err.Error(),
			FixHint:  "Create tables.sql or point 'schema' in rolas.yaml at your schema file",
		})
		return
	}

	report.AddCheck(CheckResult{
		Category: "Schema",
		Name:     "loads",
		Status:   StatusPass,
		Message:  fmt.Sprintf("Schema loaded (%d bytes)", len(content)),
		Details:  "checksum " + migrator.ComputeChecksum(content),
	})
}

// checkMigrationState compares the last recorded migration with the schema.
func (d *Doctor) checkMigrationState(ctx context.Context, report *Report) error {
	status, err := migrator.NewMigrator(d.db, d.loader, migrator.WithDialect(d.dialect)).GetStatus(ctx)
	if err != nil {
		return err
	}

	switch {
	case status.LastChecksum == "":
		report.AddCheck(CheckResult{
			Category: "Migration State",
			Name:     "applied",
			Status:   StatusFail,
			Message:  "No migration recorded",
			FixHint:  "Run 'rolas migrate' to create the tables",
		})
	case !status.SchemaExists:
		report.AddCheck(CheckResult{
			Category: "Migration State",
			Name:     "applied",
			Status:   StatusWarn,
			Message:  "Migration recorded but the schema cannot be compared",
			Details:  "last checksum " + status.LastChecksum,
		})
	case !status.UpToDate():
		report.AddCheck(CheckResult{
			Category: "Migration State",
			Name:     "applied",
			Status:   StatusWarn,
			Message:  "Schema changed since the last migration",
			Details:  fmt.Sprintf("last checksum %s\ncurrent checksum %s", status.LastChecksum, status.Checksum),
			FixHint:  "Run 'rolas migrate' to apply the current schema",
		})
	default:
		report.AddCheck(CheckResult{
			Category: "Migration State",
			Name:     "applied",
			Status:   StatusPass,
			Message:  "Database is up to date with the schema",
		})
	}
	return nil
}

// checkTables probes every table of the model with a query built by rolas.
func (d *Doctor) checkTables(ctx context.Context, report *Report) {
	for _, table := range rolas.AllTables() {
		query := probeQuery(table)
		err := d.probe(ctx, query)

		check := CheckResult{
			Category: "Tables",
			Name:     table.String(),
			Status:   StatusPass,
			Message:  fmt.Sprintf("%s is queryable", table),
			Details:  query,
		}
		if err != nil {
			check.Status = StatusFail
			check.Message = fmt.Sprintf("%s cannot be queried", table)
			check.Details = query + "\n" + err.Error()
			if isUndefinedTable(err) {
				check.Message = fmt.Sprintf("%s does not exist", table)
				check.FixHint = "Run 'rolas migrate' to create the tables"
			}
		}
		report.AddCheck(check)
	}
}

func (d *Doctor) probe(ctx context.Context, query string) error {
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
	}
	return rows.Err()
}

// probeQuery selects every column of table, limited to one row.
func probeQuery(table rolas.Table) string {
	return rolas.Select([]rolas.TableColumn{{Table: table, Column: "*"}}, nil) + " LIMIT 1"
}

// pgUndefinedTable is the PostgreSQL undefined_table error code.
const pgUndefinedTable = "42P01"

// isUndefinedTable reports whether err is PostgreSQL's undefined_table, from
// either lib/pq or pgx, or SQLite's equivalent message.
func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUndefinedTable
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTable
	}
	return strings.Contains(err.Error(), "no such table")
}
