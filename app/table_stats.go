package app

import (
	"github.com/montanaflynn/stats"

	"esgchat/models"
)

// NumericColumnStats computes min/max/mean summaries for every column of
// the sample that holds numeric values. Columns without a single numeric
// value are skipped.
func NumericColumnStats(rows []*models.ResultRow) []models.ColumnStats {
	if len(rows) == 0 {
		return nil
	}

	var out []models.ColumnStats
	for _, col := range rows[0].Columns() {
		values := make(stats.Float64Data, 0, len(rows))
		for _, row := range rows {
			v, ok := row.Get(col)
			if !ok {
				continue
			}
			if f, ok := asFloat(v); ok {
				values = append(values, f)
			}
		}
		if len(values) == 0 {
			continue
		}

		min, err := stats.Min(values)
		if err != nil {
			continue
		}
		max, _ := stats.Max(values)
		mean, _ := stats.Mean(values)
		out = append(out, models.ColumnStats{
			Column: col,
			Min:    min,
			Max:    max,
			Mean:   mean,
			Count:  len(values),
		})
	}
	return out
}

// asFloat widens the numeric types the SQL drivers hand back.
func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	default:
		return 0, false
	}
}
