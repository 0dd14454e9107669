package sqldsl

import (
	"fmt"
	"strings"
)

// Optf returns formatted string if condition is true, empty string otherwise.
// Useful for optional SQL clauses.
func Optf(cond bool, format string, args ...any) string {
	if !cond {
		return ""
	}
	return fmt.Sprintf(format, args...)
}

// SelectStmt represents a single-line SELECT query.
type SelectStmt struct {
	Columns []Expr
	From    []string
	Where   []Expr

	// WhereMin is the number of Where expressions required before a WHERE
	// clause is rendered. Values below 1 behave like 1.
	WhereMin int
}

// SQL renders the SELECT statement.
func (s SelectStmt) SQL() string {
	return "SELECT " + s.columnsSQL() + " FROM " + strings.Join(s.From, ", ") + s.whereSQL()
}

func (s SelectStmt) columnsSQL() string {
	return joinExprs(s.Columns, ", ")
}

func (s SelectStmt) whereSQL() string {
	threshold := s.WhereMin
	if threshold < 1 {
		threshold = 1
	}
	return Optf(len(s.Where) >= threshold, " WHERE %s", And(s.Where...).SQL())
}
