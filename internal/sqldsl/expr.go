package sqldsl

// Expr is the interface that all SQL expression types implement.
type Expr interface {
	SQL() string
}

// Col represents a table column reference (e.g., rolas.titulo).
type Col struct {
	Table  string
	Column string
}

// SQL renders the column reference.
func (c Col) SQL() string {
	if c.Table == "" {
		return c.Column
	}
	return c.Table + "." + c.Column
}

// Lit represents a literal string value wrapped in single quotes.
// The value is not escaped.
type Lit string

// SQL renders the literal with single quotes.
func (l Lit) SQL() string {
	return "'" + string(l) + "'"
}

// Pattern represents a substring match literal for LIKE.
// Example: Pattern("amor") renders as '%amor%'
type Pattern string

// SQL renders the pattern wrapped in wildcards and single quotes.
func (p Pattern) SQL() string {
	return "'%" + string(p) + "%'"
}
