// Package rolas builds SQL SELECT statements over the music-library schema.
//
// The schema is fixed: types, performers, persons, groups, albums, rolas and
// in_group. Columns are typed values tagged with their owning table, so table
// and column names never go through ad-hoc string formatting.
//
// # Usage
//
//	q := rolas.Select(
//	    []rolas.TableColumn{rolas.AlbumsCol("nombre"), rolas.PerformersCol("nombre")},
//	    []rolas.Conditional{rolas.Eq{
//	        Left:  rolas.AlbumsCol("performer_id"),
//	        Right: rolas.PerformersCol("id"),
//	    }},
//	)
//	// SELECT albums.nombre, performers.nombre FROM albums, performers
//	// WHERE albums.performer_id = performers.id
//
// Columns coming from user input are resolved with ParseColumn, which accepts
// singular and plural table names:
//
//	col, err := rolas.ParseColumn("rola", "titulo") // rolas.titulo
//
// # Literal values
//
// EqVal and Like embed their values verbatim between single quotes. Values are
// not escaped by Select; callers must never pass untrusted input there. A
// Builder created with WithLiteralEscaping runs every value through
// EscapeLiteral instead.
package rolas
