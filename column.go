package rolas

import "github.com/pthm/rolas/internal/sqldsl"

// TableColumn is a column reference tagged with its owning table.
//
// The Column string is used verbatim; it must be a valid identifier.
type TableColumn struct {
	Table  Table
	Column string
}

// TypesCol returns a column of the types table.
func TypesCol(column string) TableColumn { return TableColumn{Table: Types, Column: column} }

// PerformersCol returns a column of the performers table.
func PerformersCol(column string) TableColumn { return TableColumn{Table: Performers, Column: column} }

// PersonsCol returns a column of the persons table.
func PersonsCol(column string) TableColumn { return TableColumn{Table: Persons, Column: column} }

// GroupsCol returns a column of the groups table.
func GroupsCol(column string) TableColumn { return TableColumn{Table: Groups, Column: column} }

// AlbumsCol returns a column of the albums table.
func AlbumsCol(column string) TableColumn { return TableColumn{Table: Albums, Column: column} }

// RolasCol returns a column of the rolas table.
func RolasCol(column string) TableColumn { return TableColumn{Table: Rolas, Column: column} }

// InGroupCol returns a column of the in_group table.
func InGroupCol(column string) TableColumn { return TableColumn{Table: InGroup, Column: column} }

// ParseColumn builds a TableColumn from raw table and column names.
// The table name may be plural or singular ("rolas" or "rola"), except
// in_group which is only accepted as is.
func ParseColumn(table, column string) (TableColumn, error) {
	t, err := ParseTable(table)
	if err != nil {
		return TableColumn{}, err
	}
	return TableColumn{Table: t, Column: column}, nil
}

// TableName returns the name of the table owning the column.
func (c TableColumn) TableName() string {
	return c.Table.String()
}

// QualifiedName renders the column as "table.column".
func (c TableColumn) QualifiedName() string {
	return c.expr().SQL()
}

// String implements fmt.Stringer.
func (c TableColumn) String() string {
	return c.QualifiedName()
}

func (c TableColumn) expr() sqldsl.Col {
	return sqldsl.Col{Table: c.TableName(), Column: c.Column}
}
