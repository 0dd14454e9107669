package rolas

import "github.com/pthm/rolas/internal/sqldsl"

var (
	defaultBuilder = NewBuilder()
	legacyBuilder  = NewBuilder(WithWhereThreshold(2))
)

// Builder renders SELECT statements with configurable WHERE and literal
// handling. A Builder is immutable and safe for concurrent use.
type Builder struct {
	whereThreshold int
	escape         bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithWhereThreshold sets how many conditionals are needed before the WHERE
// clause is rendered. Values below 1 are treated as 1.
func WithWhereThreshold(n int) Option {
	return func(b *Builder) {
		if n < 1 {
			n = 1
		}
		b.whereThreshold = n
	}
}

// WithLiteralEscaping runs every EqVal and Like value through EscapeLiteral.
func WithLiteralEscaping() Option {
	return func(b *Builder) {
		b.escape = true
	}
}

// NewBuilder creates a Builder. Without options it behaves like Select.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{whereThreshold: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build renders the statement. It only fails when literal escaping is
// enabled and a value is rejected by EscapeLiteral.
func (b *Builder) Build(columns []TableColumn, conditionals []Conditional) (string, error) {
	lit := verbatim
	if b.escape {
		lit = EscapeLiteral
	}

	stmt := sqldsl.SelectStmt{
		Columns:  make([]sqldsl.Expr, len(columns)),
		From:     make([]string, 0, len(columns)),
		WhereMin: b.whereThreshold,
	}
	for i, c := range columns {
		stmt.Columns[i] = c.expr()
	}
	for _, t := range Tables(columns) {
		stmt.From = append(stmt.From, t.String())
	}

	// Conditionals that would not be rendered are not escaped either.
	if len(conditionals) >= b.whereThreshold {
		stmt.Where = make([]sqldsl.Expr, len(conditionals))
		for i, c := range conditionals {
			expr, err := c.render(lit)
			if err != nil {
				return "", err
			}
			stmt.Where[i] = expr
		}
	}

	return stmt.SQL(), nil
}
