package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/rolas/internal/cli"
	"github.com/pthm/rolas/pkg/schema"
	rolassql "github.com/pthm/rolas/sql"
)

func TestClassifySchemaErr(t *testing.T) {
	_, loadErr := schema.NewFileLoader(filepath.Join(t.TempDir(), "tables.sql")).Load(context.Background())
	require.Error(t, loadErr)

	err := classifySchemaErr("migration failed", fmt.Errorf("loading schema: %w", loadErr))
	assert.Equal(t, cli.ExitSchemaLoad, cli.ExitCode(err))

	err = classifySchemaErr("migration failed", fmt.Errorf("loading schema: %w", schema.ErrInvalidEncoding))
	assert.Equal(t, cli.ExitSchemaLoad, cli.ExitCode(err))

	err = classifySchemaErr("migration failed", errors.New("applying schema: syntax error"))
	assert.Equal(t, cli.ExitGeneral, cli.ExitCode(err))
}

func TestSchemaLoader(t *testing.T) {
	content, err := schemaLoader("does-not-matter.sql", true).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rolassql.TablesSQL, content)

	l, ok := schemaLoader("custom.sql", false).(*schema.FileLoader)
	require.True(t, ok)
	assert.Equal(t, "custom.sql", l.Path())
}
