package rolas

import "strconv"

// Table identifies one of the tables of the music-library schema.
type Table int

// Tables of the schema, in declaration order.
const (
	Types Table = iota
	Performers
	Persons
	Groups
	Albums
	Rolas
	InGroup
)

var tableNames = [...]string{
	Types:      "types",
	Performers: "performers",
	Persons:    "persons",
	Groups:     "groups",
	Albums:     "albums",
	Rolas:      "rolas",
	InGroup:    "in_group",
}

// tableAliases maps every accepted spelling to its table.
// in_group has no separate singular form.
var tableAliases = map[string]Table{
	"types":      Types,
	"type":       Types,
	"performers": Performers,
	"performer":  Performers,
	"persons":    Persons,
	"person":     Persons,
	"groups":     Groups,
	"group":      Groups,
	"albums":     Albums,
	"album":      Albums,
	"rolas":      Rolas,
	"rola":       Rolas,
	"in_group":   InGroup,
}

// AllTables returns every table in declaration order.
func AllTables() []Table {
	return []Table{Types, Performers, Persons, Groups, Albums, Rolas, InGroup}
}

// String returns the table name as it appears in SQL.
func (t Table) String() string {
	if t < 0 || int(t) >= len(tableNames) {
		return "table(" + strconv.Itoa(int(t)) + ")"
	}
	return tableNames[t]
}

// ParseTable resolves a table name or its singular alias.
// Matching is exact; unknown names return an *UnknownTableError.
func ParseTable(name string) (Table, error) {
	t, ok := tableAliases[name]
	if !ok {
		return 0, &UnknownTableError{Name: name}
	}
	return t, nil
}
