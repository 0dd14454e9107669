package sqldsl

import "strings"

// Eq represents an equality comparison (=).
type Eq struct {
	Left  Expr
	Right Expr
}

func (e Eq) SQL() string { return e.Left.SQL() + " = " + e.Right.SQL() }

// Like represents a pattern match (LIKE).
type Like struct {
	Expr    Expr
	Pattern Expr
}

func (l Like) SQL() string { return l.Expr.SQL() + " LIKE " + l.Pattern.SQL() }

// filterNilExprs removes nil expressions from the slice.
func filterNilExprs(exprs []Expr) []Expr {
	filtered := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// joinExprs renders expressions in order joined by sep.
func joinExprs(exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.SQL()
	}
	return strings.Join(parts, sep)
}

// AndExpr represents a flat conjunction. Unlike a general boolean AND it is
// never parenthesized, matching the WHERE lists rolas produces.
type AndExpr struct {
	Exprs []Expr
}

func (a AndExpr) SQL() string { return joinExprs(a.Exprs, " AND ") }

// And creates an AND expression from multiple expressions.
func And(exprs ...Expr) AndExpr {
	return AndExpr{Exprs: filterNilExprs(exprs)}
}
