package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dame620/firstbackjhipstergradle/internal/database"
	"github.com/dame620/firstbackjhipstergradle/internal/executor"
	"github.com/dame620/firstbackjhipstergradle/internal/model"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/dame620/firstbackjhipstergradle/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDatabase(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scheduler.db")
	t.Setenv("SCHEDULER_PRIMARY__ENV", "test")
	t.Setenv("SCHEDULER_DATABASE__DRIVER", "sqlite")
	t.Setenv("SCHEDULER_DATABASE__PATH", path)

	ctx := context.Background()
	logger := zerolog.Nop()
	db, err := database.OpenSQLite(ctx, path, &logger)
	require.NoError(t, err)
	defer db.Close()

	repos, err := repository.New(executor.NewSQL(db, query.SQLite), logger)
	require.NoError(t, err)
	for _, name := range []string{"BNP", "CBAO", "Ecobank"} {
		_, err := repos.Bank.Save(ctx, &model.Bank{Name: model.Ptr(name)})
		require.NoError(t, err)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCountCommand(t *testing.T) {
	seedDatabase(t)

	out, err := run(t, "bank", "count")

	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestListCommandRendersSortedPage(t *testing.T) {
	seedDatabase(t)

	out, err := run(t, "bank", "list", "--size", "2", "--sort", "name,desc")

	require.NoError(t, err)
	assert.Contains(t, out, "Ecobank")
	assert.Contains(t, out, "CBAO")
	assert.NotContains(t, out, "BNP")
	// Footers are upper-cased by the table style.
	assert.Contains(t, strings.ToUpper(out), "PAGE 0, 2 OF 3")
}

func TestGetCommandJSON(t *testing.T) {
	seedDatabase(t)

	out, err := run(t, "bank", "get", "1", "--json")

	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1, "name": "BNP", "address": null}`, out)
}

func TestGetCommandMissingID(t *testing.T) {
	seedDatabase(t)

	_, err := run(t, "adviser", "get", "42")

	assert.ErrorContains(t, err, "not found")
}

func TestMigrateCommandSQLite(t *testing.T) {
	seedDatabase(t)

	_, err := run(t, "migrate")

	assert.NoError(t, err)
}

func TestParseSort(t *testing.T) {
	got, err := parseSort([]string{"name", "date, DESC"})
	require.NoError(t, err)
	assert.Equal(t, []query.Order{{Column: "name"}, {Column: "date", Desc: true}}, got)

	_, err = parseSort([]string{"name,sideways"})
	assert.Error(t, err)

	_, err = parseSort([]string{"name; drop table bank"})
	assert.Error(t, err)
}

func TestCell(t *testing.T) {
	assert.Equal(t, "", cell[string](nil))
	assert.Equal(t, "7", cell(model.Ptr(int64(7))))
	assert.Equal(t, "yes", cell(model.Ptr(true)))
	assert.Equal(t, "2024-01-02T03:04:05Z", cell(model.Ptr(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))))
}

func TestHealthCommand(t *testing.T) {
	seedDatabase(t)

	out, err := run(t, "health")

	require.NoError(t, err)
	assert.Contains(t, out, `"status": "healthy"`)
}
