package ai

import (
	"fmt"
	"strings"
	"testing"

	"esgchat/models"
)

func makeRows(n int, columns ...string) []*models.ResultRow {
	if len(columns) == 0 {
		columns = []string{"Parameter", "April", "May", "June", "July", "August", "September"}
	}
	rows := make([]*models.ResultRow, n)
	for i := range rows {
		row := models.NewResultRow(columns)
		for j, col := range columns {
			row.Set(col, fmt.Sprintf("v%d_%d", i, j))
		}
		rows[i] = row
	}
	return rows
}

func TestSummarizeResults_NoRows(t *testing.T) {
	question := "show unicorn data"
	got := SummarizeResults(question, "SELECT * FROM production", nil)
	if !strings.Contains(got, question) {
		t.Errorf("zero-row message should contain the question, got %q", got)
	}
	if !strings.Contains(got, "No data found") {
		t.Errorf("zero-row message missing marker, got %q", got)
	}
}

func TestSummarizeResults_SmallResultShowsEveryRecord(t *testing.T) {
	got := SummarizeResults("q", "SELECT 1", makeRows(3))

	for i := 1; i <= 3; i++ {
		if !strings.Contains(got, fmt.Sprintf("Record %d:", i)) {
			t.Errorf("missing Record %d block in %q", i, got)
		}
	}
	if strings.Contains(got, "Record 4:") {
		t.Errorf("unexpected extra record in %q", got)
	}
	if strings.Contains(got, "more records") {
		t.Errorf("small result should not have a trailer: %q", got)
	}
}

func TestSummarizeResults_SmallResultSkipsNullFields(t *testing.T) {
	row := models.NewResultRow([]string{"Parameter", "April"})
	row.Set("Parameter", "Crude Steel")
	row.Set("April", nil)

	got := SummarizeResults("q", "SELECT 1", []*models.ResultRow{row})
	if !strings.Contains(got, "Parameter: Crude Steel") {
		t.Errorf("non-null field missing: %q", got)
	}
	if strings.Contains(got, "April") {
		t.Errorf("null field should be omitted: %q", got)
	}
}

func TestSummarizeResults_LargeResultSampled(t *testing.T) {
	got := SummarizeResults("q", "SELECT 1", makeRows(8))

	if !strings.Contains(got, "Total records found: 8") {
		t.Errorf("missing total in %q", got)
	}
	for i := 1; i <= 3; i++ {
		if !strings.Contains(got, fmt.Sprintf("Record %d:", i)) {
			t.Errorf("missing sampled Record %d in %q", i, got)
		}
	}
	if strings.Contains(got, "Record 4:") {
		t.Errorf("sample should stop at 3 records: %q", got)
	}
	if !strings.Contains(got, "... and 5 more records") {
		t.Errorf("trailer should report total-3 records: %q", got)
	}

	// Each sampled record shows at most its first 5 non-null fields.
	if strings.Contains(got, "v0_5") {
		t.Errorf("sampled record shows more than 5 fields: %q", got)
	}
	if !strings.Contains(got, "v0_4") {
		t.Errorf("sampled record should include its fifth field: %q", got)
	}
}
