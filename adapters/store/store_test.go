package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgchat/domain/grid"
	"esgchat/internal/errors"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := Open("sqlite", ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func productionTable() grid.NormalizedTable {
	return grid.NormalizedTable{
		Columns: []string{"Parameter", "April", "Unit"},
		Rows: []grid.Row{
			{grid.TextCell("Crude Steel"), grid.NumberCell(100.5), grid.TextCell("MT")},
			{grid.TextCell("Hot Metal"), grid.NullCell(), grid.TextCell("MT")},
		},
	}
}

func TestReplaceTableAndExecuteQuery(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceTable(ctx, "production", productionTable()))

	rows, err := s.ExecuteQuery(ctx, `SELECT * FROM production ORDER BY "Parameter"`)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Parameter", "April", "Unit"}, rows[0].Columns())

	v, ok := rows[0].Get("Parameter")
	require.True(t, ok)
	assert.Equal(t, "Crude Steel", v)

	v, _ = rows[0].Get("April")
	assert.Equal(t, 100.5, v)

	v, _ = rows[1].Get("April")
	assert.Nil(t, v, "null cells round-trip as nil")
}

func TestReplaceTableDropsPriorContents(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceTable(ctx, "production", productionTable()))

	replacement := grid.NormalizedTable{
		Columns: []string{"Parameter"},
		Rows:    []grid.Row{{grid.TextCell("Pellets")}},
	}
	require.NoError(t, s.ReplaceTable(ctx, "production", replacement))

	rows, err := s.ExecuteQuery(ctx, "SELECT * FROM production")
	require.NoError(t, err)
	require.Len(t, rows, 1, "replace is wholesale, not additive")
	assert.Equal(t, []string{"Parameter"}, rows[0].Columns())
}

func TestListTablesAlphabetical(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	small := grid.NormalizedTable{Columns: []string{"a"}, Rows: []grid.Row{{grid.TextCell("x")}}}
	require.NoError(t, s.ReplaceTable(ctx, "water_resource", small))
	require.NoError(t, s.ReplaceTable(ctx, "emission", small))
	require.NoError(t, s.ReplaceTable(ctx, "production", small))

	tables, err := s.ListTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"emission", "production", "water_resource"}, tables)
}

func TestDescribeTable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceTable(ctx, "production", productionTable()))

	columns, err := s.DescribeTable(ctx, "production")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	assert.Equal(t, "Parameter", columns[0].Name)
	assert.Equal(t, "TEXT", columns[0].Type)
	assert.Equal(t, "April", columns[1].Name)
	assert.Equal(t, "REAL", columns[1].Type, "all-numeric column gets a numeric affinity")
}

func TestDescribeTableMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.DescribeTable(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaIntrospection, errors.GetCode(err))
}

func TestExecuteQueryBadSQL(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ExecuteQuery(context.Background(), "SELECT * FROM does_not_exist")
	require.Error(t, err)
	assert.Equal(t, errors.CodeExecution, errors.GetCode(err))
	assert.Contains(t, err.Error(), "does_not_exist", "execution errors carry the offending query")
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "dsn", nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
