package models

import "time"

// ChatMessage is the inbound chat request body.
type ChatMessage struct {
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// ChatResponse is the outbound chat payload. Pipeline failures still
// produce a 200 with Success=false and a human-readable Error.
type ChatResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Response  string       `json:"response,omitempty"`
	SQLQuery  string       `json:"sql_query,omitempty"`
	Results   []*ResultRow `json:"results"`
	TotalRows int          `json:"total_rows"`
	Error     string       `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// SuggestionsResponse lists canned starter questions.
type SuggestionsResponse struct {
	Success     bool     `json:"success"`
	Suggestions []string `json:"suggestions"`
	Total       int      `json:"total"`
}

// DatabaseInfo describes the store's tables.
type DatabaseInfo struct {
	Tables      []string `json:"tables"`
	TotalTables int      `json:"total_tables"`
}

// ColumnStats holds summary statistics for one numeric column.
type ColumnStats struct {
	Column string  `json:"column"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Count  int     `json:"count"`
}

// TableInfo describes a single table: schema, a small sample, row count
// and per-numeric-column summary statistics.
type TableInfo struct {
	Success    bool           `json:"success"`
	TableName  string         `json:"table_name"`
	Schema     []ColumnSchema `json:"schema"`
	SampleData []*ResultRow   `json:"sample_data"`
	TotalRows  int            `json:"total_rows"`
	Stats      []ColumnStats  `json:"stats,omitempty"`
}

// ColumnSchema is one column's name and declared type.
type ColumnSchema struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// QueryRequest is the body of the custom-query endpoint.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the custom-query result payload.
type QueryResponse struct {
	Success   bool         `json:"success"`
	Query     string       `json:"query"`
	Results   []*ResultRow `json:"results"`
	TotalRows int          `json:"total_rows"`
}

// ExportResponse is the export payload; CSV conversion happens client
// side, the server always ships rows.
type ExportResponse struct {
	Success   bool         `json:"success"`
	Format    string       `json:"format"`
	Data      []*ResultRow `json:"data"`
	TotalRows int          `json:"total_rows"`
}

// ErrorResponse is the generic failure payload for non-chat endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
