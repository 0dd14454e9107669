package migrator

import "strconv"

// Dialect selects the SQL flavor used for the migrator's own bookkeeping.
// The schema text itself is executed as given.
type Dialect string

// Supported dialects.
const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// placeholder returns the bind parameter for the n-th argument (1-based).
func (d Dialect) placeholder(n int) string {
	if d == DialectSQLite {
		return "?"
	}
	return "$" + strconv.Itoa(n)
}

// migrationsDDL creates the table recording applied schema checksums.
func (d Dialect) migrationsDDL() string {
	id := "id BIGSERIAL PRIMARY KEY"
	if d == DialectSQLite {
		id = "id INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	return `CREATE TABLE IF NOT EXISTS rolas_migrations (
    ` + id + `,
    schema_checksum TEXT NOT NULL,
    applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
}

// migrationsExistQuery returns a query yielding one boolean row telling
// whether rolas_migrations exists.
func (d Dialect) migrationsExistQuery() string {
	if d == DialectSQLite {
		return `SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name = 'rolas_migrations'
		)`
	}
	return `SELECT EXISTS (
		SELECT 1 FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		WHERE c.relname = 'rolas_migrations'
		AND n.nspname = current_schema()
	)`
}

// ParseDialect maps a database/sql driver name to a Dialect.
func ParseDialect(driver string) Dialect {
	switch driver {
	case "sqlite", "sqlite3":
		return DialectSQLite
	default:
		return DialectPostgres
	}
}
