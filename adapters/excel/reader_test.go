package excel

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadGrid_CSV(t *testing.T) {
	path := writeCSV(t, "Parameter,April,May\nCrude Steel,100,110\nEMISSION,,\nTotal CO2,1.2,1.3\n")

	g, err := NewDataReader(path).ReadGrid()
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}

	want := []string{"Parameter", "April", "May"}
	for i, h := range want {
		if g.Headers[i] != h {
			t.Errorf("header %d = %q, want %q", i, g.Headers[i], h)
		}
	}
	if len(g.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(g.Rows))
	}
	if g.Rows[0].At(0).Text != "Crude Steel" {
		t.Errorf("first cell = %q", g.Rows[0].At(0).Text)
	}
	if !g.Rows[1].At(1).IsNull() {
		t.Error("empty CSV cell should map to null")
	}
}

func TestReadGrid_RaggedRows(t *testing.T) {
	path := writeCSV(t, "a,b,c\nx\ny,2\n")

	g, err := NewDataReader(path).ReadGrid()
	if err != nil {
		t.Fatalf("ReadGrid should tolerate ragged rows: %v", err)
	}
	if len(g.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(g.Rows))
	}
	// Short rows read as null beyond their own width.
	if !g.Rows[0].At(2).IsNull() {
		t.Error("missing trailing cell should read as null")
	}
}

func TestReadGrid_MissingFile(t *testing.T) {
	if _, err := NewDataReader("no/such/file.csv").ReadGrid(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadGrid_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "a,b,c\n")
	if _, err := NewDataReader(path).ReadGrid(); err == nil {
		t.Fatal("expected error for a file with no data rows")
	}
}
