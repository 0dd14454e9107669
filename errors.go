package rolas

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel errors returned by the package. Use errors.Is or the Is*Err
// helpers; the concrete error types carry the offending input.
var (
	// ErrUnknownTable is returned by ParseTable and ParseColumn when the
	// table name is not part of the schema.
	ErrUnknownTable = errors.New("rolas: unknown table")

	// ErrInvalidLiteral is returned by EscapeLiteral for values that cannot
	// be embedded in a query.
	ErrInvalidLiteral = errors.New("rolas: invalid literal")
)

// UnknownTableError reports a table name outside the schema.
type UnknownTableError struct {
	Name string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("rolas: unknown table %q", e.Name)
}

func (e *UnknownTableError) Unwrap() error { return ErrUnknownTable }

// InvalidLiteralError reports a literal value containing a control character
// or invalid UTF-8. Rune is utf8.RuneError for the latter.
type InvalidLiteralError struct {
	Value string
	Rune  rune
}

func (e *InvalidLiteralError) Error() string {
	if e.Rune == utf8.RuneError {
		return fmt.Sprintf("rolas: invalid literal %q: invalid UTF-8", e.Value)
	}
	return fmt.Sprintf("rolas: invalid literal %q: control character %U", e.Value, e.Rune)
}

func (e *InvalidLiteralError) Unwrap() error { return ErrInvalidLiteral }

// IsUnknownTableErr returns true if err is or wraps ErrUnknownTable.
func IsUnknownTableErr(err error) bool {
	return errors.Is(err, ErrUnknownTable)
}

// IsInvalidLiteralErr returns true if err is or wraps ErrInvalidLiteral.
func IsInvalidLiteralErr(err error) bool {
	return errors.Is(err, ErrInvalidLiteral)
}
