package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pthm/rolas"
)

// ErrInvalidArgument is returned for malformed column or conditional
// arguments.
var ErrInvalidArgument = errors.New("invalid argument")

// ConditionalKind names the conditional flags of the query command.
type ConditionalKind string

// Conditional kinds.
const (
	KindEq    ConditionalKind = "eq"
	KindEqVal ConditionalKind = "eq-val"
	KindLike  ConditionalKind = "like"
)

// ParseColumnRef parses "table.column". The table may be singular or plural.
func ParseColumnRef(ref string) (rolas.TableColumn, error) {
	table, column, ok := strings.Cut(ref, ".")
	if !ok || table == "" || column == "" {
		return rolas.TableColumn{}, fmt.Errorf("%w: column %q must be table.column", ErrInvalidArgument, ref)
	}
	return rolas.ParseColumn(table, column)
}

// ParseColumnRefs parses every ref in order.
func ParseColumnRefs(refs []string) ([]rolas.TableColumn, error) {
	cols := make([]rolas.TableColumn, 0, len(refs))
	for _, ref := range refs {
		col, err := ParseColumnRef(ref)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// ParseConditional parses "table.column=rhs". For KindEq the right-hand side
// is another column reference; for KindEqVal and KindLike it is the literal
// value, which may be empty or contain '='.
func ParseConditional(kind ConditionalKind, arg string) (rolas.Conditional, error) {
	lhs, rhs, ok := strings.Cut(arg, "=")
	if !ok {
		return nil, fmt.Errorf("%w: %s %q must be table.column=value", ErrInvalidArgument, kind, arg)
	}
	col, err := ParseColumnRef(lhs)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindEq:
		right, err := ParseColumnRef(rhs)
		if err != nil {
			return nil, err
		}
		return rolas.Eq{Left: col, Right: right}, nil
	case KindEqVal:
		return rolas.EqVal{Column: col, Value: rhs}, nil
	case KindLike:
		return rolas.Like{Column: col, Value: rhs}, nil
	default:
		return nil, fmt.Errorf("%w: unknown conditional kind %q", ErrInvalidArgument, kind)
	}
}
