package ai

import (
	"fmt"
	"strings"

	"esgchat/models"
)

// detail thresholds for the result narrative
const (
	fullDetailRows  = 5
	sampleRecords   = 3
	sampleFieldsMax = 5
)

// SummarizeResults renders query result rows as a bounded, human-readable
// narrative. Deterministic and total: no completion call. Small result
// sets are shown in full, larger ones as a count plus a three-record
// sample.
func SummarizeResults(question string, query string, rows []*models.ResultRow) string {
	if len(rows) == 0 {
		return fmt.Sprintf("No data found for your query: '%s'", question)
	}

	var b strings.Builder
	if len(rows) <= fullDetailRows {
		fmt.Fprintf(&b, "Here are the results for '%s':\n\n", question)
		for i, row := range rows {
			fmt.Fprintf(&b, "Record %d:\n", i+1)
			for _, f := range row.NonNullFields() {
				fmt.Fprintf(&b, "  %s: %v\n", f.Key, f.Value)
			}
			b.WriteString("\n")
		}
		return b.String()
	}

	fmt.Fprintf(&b, "Here's a summary for '%s':\n\n", question)
	fmt.Fprintf(&b, "Total records found: %d\n\n", len(rows))
	fmt.Fprintf(&b, "Sample of first %d records:\n", sampleRecords)
	for i := 0; i < sampleRecords; i++ {
		fmt.Fprintf(&b, "\nRecord %d:\n", i+1)
		fields := rows[i].NonNullFields()
		if len(fields) > sampleFieldsMax {
			fields = fields[:sampleFieldsMax]
		}
		for _, f := range fields {
			fmt.Fprintf(&b, "  %s: %v\n", f.Key, f.Value)
		}
	}
	fmt.Fprintf(&b, "\n... and %d more records", len(rows)-sampleRecords)
	return b.String()
}
