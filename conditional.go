package rolas

import "github.com/pthm/rolas/internal/sqldsl"

// Conditional is a single WHERE predicate. Conditionals are always combined
// with AND.
//
// The set of implementations is closed: Eq, EqVal and Like.
type Conditional interface {
	SQL() string
	String() string

	// render returns the predicate with literal values passed through lit.
	render(lit func(string) (string, error)) (sqldsl.Expr, error)
}

// Eq compares two columns for equality.
type Eq struct {
	Left  TableColumn
	Right TableColumn
}

// EqVal compares a column with a string literal.
type EqVal struct {
	Column TableColumn
	Value  string
}

// Like matches a column against a literal substring ('%value%').
type Like struct {
	Column TableColumn
	Value  string
}

func verbatim(v string) (string, error) { return v, nil }

func (e Eq) render(func(string) (string, error)) (sqldsl.Expr, error) {
	return sqldsl.Eq{Left: e.Left.expr(), Right: e.Right.expr()}, nil
}

// SQL renders "left = right".
func (e Eq) SQL() string { return mustRender(e) }

func (e Eq) String() string { return e.SQL() }

func (e EqVal) render(lit func(string) (string, error)) (sqldsl.Expr, error) {
	v, err := lit(e.Value)
	if err != nil {
		return nil, err
	}
	return sqldsl.Eq{Left: e.Column.expr(), Right: sqldsl.Lit(v)}, nil
}

// SQL renders "column = 'value'" with the value embedded verbatim.
func (e EqVal) SQL() string { return mustRender(e) }

func (e EqVal) String() string { return e.SQL() }

func (l Like) render(lit func(string) (string, error)) (sqldsl.Expr, error) {
	v, err := lit(l.Value)
	if err != nil {
		return nil, err
	}
	return sqldsl.Like{Expr: l.Column.expr(), Pattern: sqldsl.Pattern(v)}, nil
}

// SQL renders "column LIKE '%value%'" with the value embedded verbatim.
func (l Like) SQL() string { return mustRender(l) }

func (l Like) String() string { return l.SQL() }

// mustRender renders c without escaping, which cannot fail.
func mustRender(c Conditional) string {
	expr, _ := c.render(verbatim)
	return expr.SQL()
}
