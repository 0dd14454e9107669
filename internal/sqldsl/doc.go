// Package sqldsl provides the typed building blocks that rolas renders SELECT
// statements from.
//
// # Overview
//
// Rather than concatenating query fragments by hand, callers compose small
// expression values and ask the outermost one for its SQL. Every type renders
// on a single line so the output can be compared byte for byte.
//
// # Expression Types
//
//	Col{Table: "rolas", Column: "titulo"}   // rolas.titulo
//	Lit("rock")                             // 'rock'
//	Pattern("amor")                         // '%amor%'
//
// Operators:
//
//	Eq{Left: col, Right: Lit("rock")}       // rolas.genre = 'rock'
//	Like{Expr: col, Pattern: Pattern("a")}  // rolas.titulo LIKE '%a%'
//	And(expr1, expr2)                       // expr1 AND expr2
//
// # Statements
//
//	SelectStmt{
//	    Columns:  []Expr{Col{Table: "albums", Column: "nombre"}},
//	    From:     []string{"albums"},
//	    Where:    []Expr{Eq{...}},
//	    WhereMin: 1,
//	}
//
// Literal values are embedded verbatim. Escaping, when wanted, happens before
// the value reaches this package.
package sqldsl
