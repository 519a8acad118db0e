package ai

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"esgchat/domain/grid"
	"esgchat/models"
	"esgchat/ports"
)

// fakeStore stubs ports.Store for summarizer tests.
type fakeStore struct {
	tables      []string
	columns     map[string][]ports.ColumnInfo
	listErr     error
	describeErr map[string]error
}

func (f *fakeStore) ExecuteQuery(ctx context.Context, query string) ([]*models.ResultRow, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeStore) ReplaceTable(ctx context.Context, name string, table grid.NormalizedTable) error {
	return fmt.Errorf("not implemented")
}

func (f *fakeStore) ListTables(ctx context.Context) ([]string, error) {
	return f.tables, f.listErr
}

func (f *fakeStore) DescribeTable(ctx context.Context, name string) ([]ports.ColumnInfo, error) {
	if err := f.describeErr[name]; err != nil {
		return nil, err
	}
	return f.columns[name], nil
}

func (f *fakeStore) Close() error { return nil }

func TestSummarizeSchema_RendersTablesAndColumns(t *testing.T) {
	store := &fakeStore{
		tables: []string{"emission", "production"},
		columns: map[string][]ports.ColumnInfo{
			"emission":   {{Name: "Parameter", Type: "TEXT"}, {Name: "April", Type: "REAL"}},
			"production": {{Name: "Parameter", Type: "TEXT"}},
		},
	}

	summary := SummarizeSchema(context.Background(), store, nil)
	text := summary.Text()

	if !strings.Contains(text, "Table: emission") || !strings.Contains(text, "Table: production") {
		t.Errorf("summary missing tables: %q", text)
	}
	if !strings.Contains(text, "Parameter (TEXT)") || !strings.Contains(text, "April (REAL)") {
		t.Errorf("summary missing column types: %q", text)
	}
}

func TestSummarizeSchema_CapsAtTenTables(t *testing.T) {
	store := &fakeStore{columns: map[string][]ports.ColumnInfo{}}
	for i := 0; i < 14; i++ {
		name := fmt.Sprintf("table_%02d", i)
		store.tables = append(store.tables, name)
		store.columns[name] = []ports.ColumnInfo{{Name: "a", Type: "TEXT"}}
	}

	summary := SummarizeSchema(context.Background(), store, nil)
	if len(summary.Tables) != 10 {
		t.Errorf("summary tables = %d, want 10", len(summary.Tables))
	}
	if summary.Tables[0].Name != "table_00" {
		t.Errorf("cap should keep the first tables, got %s first", summary.Tables[0].Name)
	}
}

func TestSummarizeSchema_OmitsFailingTable(t *testing.T) {
	store := &fakeStore{
		tables: []string{"broken", "production"},
		columns: map[string][]ports.ColumnInfo{
			"production": {{Name: "Parameter", Type: "TEXT"}},
		},
		describeErr: map[string]error{"broken": fmt.Errorf("corrupt")},
	}

	summary := SummarizeSchema(context.Background(), store, nil)
	if len(summary.Tables) != 1 || summary.Tables[0].Name != "production" {
		t.Errorf("failing table should be omitted, got %+v", summary.Tables)
	}
	if summary.Degraded {
		t.Error("a single table failure must not degrade the whole summary")
	}
}

func TestSummarizeSchema_ListFailureDegrades(t *testing.T) {
	store := &fakeStore{listErr: fmt.Errorf("store down")}

	summary := SummarizeSchema(context.Background(), store, nil)
	if !summary.Degraded {
		t.Fatal("list failure should degrade the summary")
	}
	if summary.Text() != "Schema information not available" {
		t.Errorf("degraded text = %q", summary.Text())
	}
}
