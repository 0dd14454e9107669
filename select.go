package rolas

// Select renders "SELECT <columns> FROM <tables> [WHERE <conditionals>]".
//
// Columns are listed in input order. Tables are derived from the columns,
// each listed once in order of first appearance. The WHERE clause is present
// whenever at least one conditional is given; conditionals are joined with
// AND in input order.
//
// Select does no validation: an empty column list yields "SELECT  FROM ".
func Select(columns []TableColumn, conditionals []Conditional) string {
	q, _ := defaultBuilder.Build(columns, conditionals)
	return q
}

// SelectLegacy renders like Select but only emits the WHERE clause when two
// or more conditionals are given, so a single conditional is dropped.
//
// It reproduces the behavior of older callers and should not be used in new
// code.
func SelectLegacy(columns []TableColumn, conditionals []Conditional) string {
	q, _ := legacyBuilder.Build(columns, conditionals)
	return q
}

// Tables returns the tables owning columns, each once, in order of first
// appearance.
func Tables(columns []TableColumn) []Table {
	seen := make(map[Table]bool, len(columns))
	tables := make([]Table, 0, len(columns))
	for _, c := range columns {
		if seen[c.Table] {
			continue
		}
		seen[c.Table] = true
		tables = append(tables, c.Table)
	}
	return tables
}
