package rolas_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pthm/rolas"
)

func TestErrorHelpers(t *testing.T) {
	t.Run("IsUnknownTableErr", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", rolas.ErrUnknownTable)
		if !rolas.IsUnknownTableErr(err) {
			t.Error("IsUnknownTableErr should return true for wrapped ErrUnknownTable")
		}
		if rolas.IsUnknownTableErr(errors.New("other error")) {
			t.Error("IsUnknownTableErr should return false for other errors")
		}
	})

	t.Run("IsInvalidLiteralErr", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", rolas.ErrInvalidLiteral)
		if !rolas.IsInvalidLiteralErr(err) {
			t.Error("IsInvalidLiteralErr should return true for wrapped ErrInvalidLiteral")
		}
		if rolas.IsInvalidLiteralErr(errors.New("other error")) {
			t.Error("IsInvalidLiteralErr should return false for other errors")
		}
	})
}

func TestUnknownTableError(t *testing.T) {
	_, err := rolas.ParseColumn("unknown_table", "x")

	var ute *rolas.UnknownTableError
	if !errors.As(err, &ute) {
		t.Fatalf("ParseColumn error = %v, want *UnknownTableError", err)
	}
	if ute.Name != "unknown_table" {
		t.Errorf("Name = %q, want %q", ute.Name, "unknown_table")
	}
	if got, want := err.Error(), `rolas: unknown table "unknown_table"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestInvalidLiteralError(t *testing.T) {
	_, err := rolas.EscapeLiteral("a\nb")

	var ile *rolas.InvalidLiteralError
	if !errors.As(err, &ile) {
		t.Fatalf("EscapeLiteral error = %v, want *InvalidLiteralError", err)
	}
	if ile.Rune != '\n' {
		t.Errorf("Rune = %U, want U+000A", ile.Rune)
	}
}
