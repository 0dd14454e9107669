// Package sql provides the embedded SQL files for the music-library schema.
package sql

import (
	_ "embed"
)

// TablesSQL contains the table definitions and seed rows of the
// music-library schema (types, performers, persons, groups, albums, rolas
// and in_group).
//
// The file is embedded at compile time so the schema can be created without
// a tables.sql next to the binary.
//
//go:embed tables.sql
var TablesSQL string
