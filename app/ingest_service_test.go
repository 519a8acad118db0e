package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgchat/adapters/store"
	"esgchat/domain/grid"
)

func newTestStore(t *testing.T) *store.SQLStore {
	t.Helper()
	s, err := store.Open("sqlite", ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func cells(values ...string) grid.Row {
	r := make(grid.Row, len(values))
	for i, v := range values {
		r[i] = grid.CellFromString(v)
	}
	return r
}

func esgGrid() grid.RawGrid {
	return grid.RawGrid{
		Headers: []string{"Parameter", "April", "May"},
		Rows: []grid.Row{
			cells("Crude Steel", "100", "110"),
			cells("Hot Metal", "90", "95"),
			cells("Pellets", "50", "55"),
			cells("EMISSION", "", ""),
			cells("Total CO2", "1.2", "1.3"),
			cells("SOx", "0.4", "0.5"),
		},
	}
}

func TestRunGrid_CreatesOneTablePerSection(t *testing.T) {
	s := newTestStore(t)
	svc := NewIngestService(s, nil)
	ctx := context.Background()

	require.NoError(t, svc.RunGrid(ctx, esgGrid()))

	tables, err := s.ListTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"emission", "production"}, tables)

	prod, err := s.ExecuteQuery(ctx, "SELECT * FROM production")
	require.NoError(t, err)
	assert.Len(t, prod, 3)

	emis, err := s.ExecuteQuery(ctx, "SELECT * FROM emission")
	require.NoError(t, err)
	assert.Len(t, emis, 2)
}

func TestRunGrid_MonthColumnsStoredNumeric(t *testing.T) {
	s := newTestStore(t)
	svc := NewIngestService(s, nil)
	ctx := context.Background()

	require.NoError(t, svc.RunGrid(ctx, esgGrid()))

	rows, err := s.ExecuteQuery(ctx, `SELECT SUM(April) as total FROM emission`)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	total, ok := rows[0].Get("total")
	require.True(t, ok)
	assert.InDelta(t, 1.6, total.(float64), 1e-9)
}

func TestRunGrid_ReplacesOnReingest(t *testing.T) {
	s := newTestStore(t)
	svc := NewIngestService(s, nil)
	ctx := context.Background()

	require.NoError(t, svc.RunGrid(ctx, esgGrid()))
	require.NoError(t, svc.RunGrid(ctx, esgGrid()))

	rows, err := s.ExecuteQuery(ctx, "SELECT * FROM production")
	require.NoError(t, err)
	assert.Len(t, rows, 3, "re-ingestion must not accumulate rows")
}

func TestRun_MissingFileIsNonFatal(t *testing.T) {
	s := newTestStore(t)
	svc := NewIngestService(s, nil)
	ctx := context.Background()

	require.NoError(t, svc.Run(ctx, "does/not/exist.csv"))

	tables, err := s.ListTables(ctx)
	require.NoError(t, err)
	assert.Empty(t, tables)
}
