package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangefilter/source/sqlite"
	"rangefilter/testutil"
)

func seed(t *testing.T) (path, table string) {
	t.Helper()
	ctx := context.Background()
	path = filepath.Join(t.TempDir(), "survey.db")

	db, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	table, _, err = testutil.CreateSurvey(ctx, db, 10)
	require.NoError(t, err)
	return path, table
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestApplyTicks(t *testing.T) {
	path, table := seed(t)

	out, err := run(t, "apply", "--dsn", path, "--table", table, "--ticks", "elevation=20:100")
	require.NoError(t, err)
	assert.Contains(t, out, `predicate: "elevation" >= 280 AND "elevation" <= 1000`)
	assert.Contains(t, out, "matched 8 of 10 rows")
}

func TestApplyBetween(t *testing.T) {
	path, table := seed(t)

	out, err := run(t, "apply", "--dsn", path, "--table", table,
		"--between", "ratio=0.3:0.5", "--rows", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `predicate: "ratio" >= 0.30 AND "ratio" <= 0.50`)
	assert.Contains(t, out, "matched 3 of 10 rows")
	assert.Contains(t, out, "site-3")
	assert.Contains(t, out, "site-4")
	assert.NotContains(t, out, "site-5")
}

func TestApplyErrors(t *testing.T) {
	path, table := seed(t)

	_, err := run(t, "apply", "--dsn", path, "--table", table, "--ticks", "missing=0:10")
	assert.ErrorContains(t, err, "unknown field")

	_, err = run(t, "apply", "--dsn", path, "--table", table, "--ticks", "elevation=80:20")
	assert.Error(t, err)

	_, err = run(t, "apply", "--dsn", path, "--table", table, "--ticks", "elevation")
	assert.ErrorContains(t, err, "want name=low:high")

	_, err = run(t, "fields", "--dsn", path)
	assert.ErrorContains(t, err, "--table is required")
}

func TestRemovePersists(t *testing.T) {
	path, table := seed(t)

	out, err := run(t, "remove", "ratio", "missing", "--dsn", path, "--table", table)
	require.NoError(t, err)
	assert.Contains(t, out, "fields: id, elevation, score")

	out, err = run(t, "fields", "--dsn", path, "--table", table)
	require.NoError(t, err)
	assert.Contains(t, out, "elevation")
	assert.NotContains(t, out, "ratio")
}

func TestSettingsFile(t *testing.T) {
	path, table := seed(t)
	settingsFile := filepath.Join(t.TempDir(), "settings.yaml")

	_, err := run(t, "remove", "id", "--dsn", path, "--table", table, "--settings-file", settingsFile)
	require.NoError(t, err)

	// the database keeps its own order
	out, err := run(t, "remove", "score", "--dsn", path, "--table", table)
	require.NoError(t, err)
	assert.Contains(t, out, "fields: id, elevation, ratio")

	out, err = run(t, "remove", "score", "--dsn", path, "--table", table, "--settings-file", settingsFile)
	require.NoError(t, err)
	assert.Contains(t, out, "fields: elevation, ratio")
}
