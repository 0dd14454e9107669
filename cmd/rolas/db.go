package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/pthm/rolas/internal/cli"
	"github.com/pthm/rolas/pkg/migrator"
	"github.com/pthm/rolas/pkg/schema"
)

// resolveDSN gets the database DSN from flag or config.
func resolveDSN(flagDSN string) (string, error) {
	if flagDSN != "" {
		return flagDSN, nil
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return "", cli.ConfigError("database configuration", err)
	}
	if dsn == "" {
		return "", cli.ConfigError("database URL is required (use --db or set in config)", nil)
	}
	return dsn, nil
}

// openDB opens and pings the configured database. The driver name is one
// registered above: postgres, pgx or sqlite.
func openDB(ctx context.Context, dsn string) (*sql.DB, migrator.Dialect, error) {
	driver := resolveString(cfg.Database.Driver, "postgres")
	dialect := migrator.ParseDialect(driver)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, dialect, cli.DBConnectError("connecting to database", err)
	}
	if dialect == migrator.DialectSQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, dialect, cli.DBConnectError("connecting to database", err)
	}
	return db, dialect, nil
}

// schemaLoader returns a file loader for path, or the schema bundled with
// the binary when embedded is set.
func schemaLoader(path string, embedded bool) schema.Loader {
	if embedded {
		return schema.Embedded()
	}
	return schema.NewFileLoader(path)
}

// classifySchemaErr maps file system errors to ExitSchemaLoad.
func classifySchemaErr(msg string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || errors.Is(err, schema.ErrInvalidEncoding) {
		return cli.SchemaLoadError(msg, err)
	}
	return cli.GeneralError(msg, err)
}
