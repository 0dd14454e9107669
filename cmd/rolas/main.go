// Package main provides a CLI for building and running music-library queries.
//
// The CLI supports:
//   - query: Render a SELECT over the music tables, optionally executing it
//   - migrate: Create the tables from tables.sql
//   - status: Check current migration state
//   - doctor: Run health checks on the database
//
// Usage:
//
//	rolas [flags] <command>
//
// Commands that require database access (migrate, status, doctor, query --exec)
// read the connection from rolas.yaml, ROLAS_DATABASE_* or --db.
package main

func main() {
	Execute()
}
