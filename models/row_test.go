package models

import (
	"encoding/json"
	"testing"
)

func TestResultRow_MarshalPreservesColumnOrder(t *testing.T) {
	row := NewResultRow([]string{"zulu", "alpha", "mike"})
	row.Set("zulu", 1.0)
	row.Set("alpha", "two")
	row.Set("mike", nil)

	raw, err := json.Marshal(row)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"zulu":1,"alpha":"two","mike":null}`
	if string(raw) != want {
		t.Errorf("marshal = %s, want %s", raw, want)
	}
}

func TestResultRow_RoundTrip(t *testing.T) {
	var row ResultRow
	if err := json.Unmarshal([]byte(`{"b":2,"a":1}`), &row); err != nil {
		t.Fatal(err)
	}
	cols := row.Columns()
	if len(cols) != 2 || cols[0] != "b" || cols[1] != "a" {
		t.Errorf("columns = %v, want [b a]", cols)
	}
}

func TestResultRow_NonNullFields(t *testing.T) {
	row := NewResultRow([]string{"a", "b", "c"})
	row.Set("a", "x")
	row.Set("b", nil)
	row.Set("c", 3.0)

	fields := row.NonNullFields()
	if len(fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(fields))
	}
	if fields[0].Key != "a" || fields[1].Key != "c" {
		t.Errorf("field order = %v", fields)
	}
}
