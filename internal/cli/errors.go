// Package cli provides shared configuration and utilities for the rolas CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	ExitSuccess    = 0
	ExitGeneral    = 1
	ExitConfig     = 2
	ExitParse      = 3
	ExitDBConnect  = 4
	ExitSchemaLoad = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err: the code of a wrapped ExitError,
// ExitSuccess for nil, ExitGeneral otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneral
}

// ExitWithError prints the error and exits with the appropriate code.
func ExitWithError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(ExitCode(err))
}

// ConfigError creates an ExitError with ExitConfig code.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// ParseError creates an ExitError with ExitParse code.
func ParseError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitParse, Message: msg, Err: err}
}

// DBConnectError creates an ExitError with ExitDBConnect code.
func DBConnectError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitDBConnect, Message: msg, Err: err}
}

// SchemaLoadError creates an ExitError with ExitSchemaLoad code.
func SchemaLoadError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitSchemaLoad, Message: msg, Err: err}
}

// GeneralError creates an ExitError with ExitGeneral code.
func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}
