package grid

import (
	"strconv"
	"strings"
)

// CellKind tags the variant held by a Cell.
type CellKind int

const (
	CellNull CellKind = iota
	CellNumber
	CellText
)

// Cell is a single spreadsheet value: null, a number, or text.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// NullCell returns the null cell.
func NullCell() Cell {
	return Cell{Kind: CellNull}
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// CellFromString maps a raw spreadsheet string to a cell. Empty or
// whitespace-only strings become null, everything else stays text;
// numeric typing happens later during normalization.
func CellFromString(s string) Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return NullCell()
	}
	return TextCell(trimmed)
}

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool {
	return c.Kind == CellNull
}

// Value returns the cell's content as a driver-friendly value,
// nil for null cells.
func (c Cell) Value() any {
	switch c.Kind {
	case CellNumber:
		return c.Number
	case CellText:
		return c.Text
	default:
		return nil
	}
}

// String renders the cell for display; null cells render empty.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// Row is an ordered sequence of cells.
type Row []Cell

// At returns the cell at index i, null when the row is shorter.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return NullCell()
	}
	return r[i]
}

// AllNull reports whether every cell in the row is null. An empty row
// counts as all-null.
func (r Row) AllNull() bool {
	for _, c := range r {
		if !c.IsNull() {
			return false
		}
	}
	return true
}

// RawGrid is the verbatim content of one spreadsheet export: the top
// header row (column names) plus the remaining data rows. Immutable
// once loaded.
type RawGrid struct {
	Headers []string
	Rows    []Row
}

// Section is a named, contiguous run of grid rows belonging to one
// topic. It carries the grid's column headers so it can be normalized
// on its own.
type Section struct {
	Name    string
	Headers []string
	Rows    []Row
}
