package models

import (
	"bytes"
	"encoding/json"
)

// ResultRow is one row of a query result: a name→value mapping that
// remembers column order, since encoding a plain map would alphabetize
// the keys.
type ResultRow struct {
	columns []string
	values  map[string]any
}

// NewResultRow creates an empty row with the given column order.
func NewResultRow(columns []string) *ResultRow {
	return &ResultRow{
		columns: columns,
		values:  make(map[string]any, len(columns)),
	}
}

// Set assigns a value; the column must be one of the row's columns.
func (r *ResultRow) Set(column string, value any) {
	r.values[column] = value
}

// Get returns the value for a column and whether it was present.
func (r *ResultRow) Get(column string) (any, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Columns returns the row's column order.
func (r *ResultRow) Columns() []string {
	return r.columns
}

// Field is one named value of a result row.
type Field struct {
	Key   string
	Value any
}

// NonNullFields returns the row's non-null fields in column order.
func (r *ResultRow) NonNullFields() []Field {
	fields := make([]Field, 0, len(r.columns))
	for _, col := range r.columns {
		if v, ok := r.values[col]; ok && v != nil {
			fields = append(fields, Field{Key: col, Value: v})
		}
	}
	return fields
}

// MarshalJSON encodes the row as a JSON object in column order.
func (r *ResultRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[col])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the row, keeping the key
// order of the JSON text as the column order.
func (r *ResultRow) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &json.UnmarshalTypeError{Value: "non-object", Type: nil}
	}
	r.columns = nil
	r.values = make(map[string]any)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		r.columns = append(r.columns, key)
		r.values[key] = value
	}
	_, err = dec.Token() // closing brace
	return err
}
