package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// numericColumns are coerced to numbers during normalization. Matching is
// case-sensitive and exact: the fiscal-year months April through March
// plus the year-over-date total column.
var numericColumns = map[string]bool{
	"April": true, "May": true, "June": true, "July": true,
	"August": true, "September": true, "October": true, "November": true,
	"December": true, "January": true, "February": true, "March": true,
	"YOD": true,
}

// NormalizedTable is a rectangular table ready for storage: unique column
// names and typed rows of matching width.
type NormalizedTable struct {
	Columns []string
	Rows    []Row
}

// Empty reports whether the table has no rows.
func (t NormalizedTable) Empty() bool {
	return len(t.Rows) == 0
}

// ColumnIsNumeric reports whether column i holds only numbers (and at
// least one). Used by the store to pick a column type.
func (t NormalizedTable) ColumnIsNumeric(i int) bool {
	seen := false
	for _, row := range t.Rows {
		switch row.At(i).Kind {
		case CellNumber:
			seen = true
		case CellText:
			return false
		}
	}
	return seen
}

// Normalize cleans one section into a rectangular typed table. It never
// fails: malformed values degrade to null. Fully-null rows are dropped,
// blank column names become col_<index>, and numeric columns coerce
// non-numeric values to null. When two columns share a name the later
// one wins; earlier values are lost (known limitation of the source
// format, kept for parity with the export).
func Normalize(section Section) NormalizedTable {
	names := make([]string, len(section.Headers))
	for i, h := range section.Headers {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("col_%d", i)
		}
		names[i] = name
	}

	// Resolve duplicates: output order follows first occurrence, data
	// follows the last source column with that name.
	var columns []string
	position := make(map[string]int)
	for _, name := range names {
		if _, ok := position[name]; !ok {
			position[name] = len(columns)
			columns = append(columns, name)
		}
	}

	var rows []Row
	for _, src := range section.Rows {
		if src.AllNull() {
			continue
		}
		row := make(Row, len(columns))
		for i := range row {
			row[i] = NullCell()
		}
		for j, name := range names {
			cell := src.At(j)
			if numericColumns[name] {
				cell = coerceNumeric(cell)
			}
			row[position[name]] = cell
		}
		rows = append(rows, row)
	}

	return NormalizedTable{Columns: columns, Rows: rows}
}

// coerceNumeric maps a cell to its numeric form, null when parsing fails.
func coerceNumeric(c Cell) Cell {
	switch c.Kind {
	case CellNumber:
		return c
	case CellText:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return NullCell()
		}
		return NumberCell(v)
	default:
		return NullCell()
	}
}

// DeriveTableName maps a section name to its stored-table name:
// lower-cased, spaces to underscores, "&" to "and".
func DeriveTableName(sectionName string) string {
	name := strings.ToLower(strings.TrimSpace(sectionName))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "&", "and")
	return name
}
