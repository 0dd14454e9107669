package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/rolas/internal/cli"
)

func TestConfigShow(t *testing.T) {
	t.Setenv("ROLAS_QUERY_LEGACY_WHERE", "true")
	t.Setenv("ROLAS_DATABASE_DRIVER", "sqlite")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	loaded, path, err := cli.LoadConfig("")
	require.NoError(t, err)

	oldCfg, oldPath, oldSource := cfg, configPath, configShowSource
	t.Cleanup(func() { cfg, configPath, configShowSource = oldCfg, oldPath, oldSource })
	cfg, configPath, configShowSource = loaded, path, true

	var buf bytes.Buffer
	configShowCmd.SetOut(&buf)
	t.Cleanup(func() { configShowCmd.SetOut(nil) })
	require.NoError(t, configShowCmd.RunE(configShowCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Config file: (none, using defaults)")
	assert.Contains(t, out, "schema: tables.sql")
	assert.Contains(t, out, "driver: sqlite")
	assert.Contains(t, out, "legacy_where: true")
	assert.Contains(t, out, "escape_literals: false")
	assert.NotContains(t, out, "password")
}
