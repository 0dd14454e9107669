// Package schema loads the SQL text that creates the music-library tables.
//
// The loader is a narrow collaborator of the migrator: it returns the whole
// schema text or the error that prevented reading it, without interpreting
// either.
package schema

import (
	"context"
	"errors"
	"os"
	"unicode/utf8"

	rolassql "github.com/pthm/rolas/sql"
)

// DefaultPath is the conventional schema file, relative to the working
// directory.
const DefaultPath = "tables.sql"

// ErrInvalidEncoding is returned when the schema file is not valid UTF-8.
var ErrInvalidEncoding = errors.New("schema: invalid UTF-8 in schema file")

// Loader supplies schema text.
type Loader interface {
	Load(ctx context.Context) (string, error)
}

// FileLoader reads the schema from a file on disk.
type FileLoader struct {
	path string
}

// NewFileLoader creates a FileLoader for path. An empty path means
// DefaultPath.
func NewFileLoader(path string) *FileLoader {
	if path == "" {
		path = DefaultPath
	}
	return &FileLoader{path: path}
}

// Path returns the file the loader reads.
func (l *FileLoader) Path() string {
	return l.path
}

// Exists reports whether the schema file is present.
func (l *FileLoader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Load reads the whole file. Errors from the file system are returned
// unchanged, so errors.Is(err, fs.ErrNotExist) works on the result.
func (l *FileLoader) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return string(data), nil
}

// StringLoader serves schema text held in memory.
type StringLoader string

// Load returns the string.
func (s StringLoader) Load(ctx context.Context) (string, error) {
	return string(s), nil
}

// Embedded returns a loader over the schema bundled with the module.
func Embedded() StringLoader {
	return StringLoader(rolassql.TablesSQL)
}
