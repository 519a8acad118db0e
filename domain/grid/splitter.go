package grid

import (
	"strings"
)

// DefaultSectionName is assigned to rows that appear before the first
// detected section header.
const DefaultSectionName = "PRODUCTION"

// HeaderPredicate decides whether a row opens a new section and, if so,
// under what name. The detection heuristic is data-format-specific, so
// alternate input formats can plug in a different predicate without
// touching the splitter's control flow.
type HeaderPredicate func(row Row) (name string, ok bool)

// DefaultHeaderPredicate detects the section headers of the flat ESG
// export: first cell present, second and third cells empty, trimmed text
// all upper-case and at most three words.
func DefaultHeaderPredicate(row Row) (string, bool) {
	first := row.At(0)
	if first.IsNull() || !row.At(1).IsNull() || !row.At(2).IsNull() {
		return "", false
	}
	text := strings.TrimSpace(first.String())
	if !isUpper(text) {
		return "", false
	}
	if len(strings.Fields(text)) > 3 {
		return "", false
	}
	return text, true
}

// isUpper mirrors Python's str.isupper: at least one cased character and
// no lower-case ones.
func isUpper(s string) bool {
	return s != "" && s == strings.ToUpper(s) && s != strings.ToLower(s)
}

// Split partitions the grid's data rows into named sections. Header rows
// belong to no section, rows with a null first cell are skipped, and all
// other rows accumulate under the most recent header (DefaultSectionName
// before the first one). A grid with no qualifying headers yields exactly
// one section.
func Split(g RawGrid, isHeader HeaderPredicate) []Section {
	if isHeader == nil {
		isHeader = DefaultHeaderPredicate
	}

	var sections []Section
	current := DefaultSectionName
	var accum []Row

	flush := func() {
		if len(accum) > 0 {
			sections = append(sections, Section{Name: current, Headers: g.Headers, Rows: accum})
			accum = nil
		}
	}

	for _, row := range g.Rows {
		if name, ok := isHeader(row); ok {
			flush()
			current = name
			continue
		}
		if row.At(0).IsNull() {
			continue
		}
		accum = append(accum, row)
	}
	flush()

	return sections
}
