package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"esgchat/ai"
	"esgchat/app"
	"esgchat/models"
)

// handleChat runs the full question pipeline. Pipeline failures come
// back as success=false with HTTP 200; only a malformed request body is
// a client error.
func (a *App) handleChat(w http.ResponseWriter, r *http.Request) {
	var msg models.ChatMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	defer func() {
		// Wrapper-level faults still produce a structured chat response.
		if rec := recover(); rec != nil {
			a.log.Error("chat handler panic: %v", rec)
			writeJSON(w, http.StatusOK, &models.ChatResponse{
				Success:   false,
				Message:   msg.Message,
				Error:     fmt.Sprintf("Internal server error: %v", rec),
				Timestamp: time.Now(),
			})
		}
	}()

	resp := a.chat.Process(r.Context(), msg.Message)
	resp.Timestamp = time.Now()
	writeJSON(w, http.StatusOK, resp)
}

func (a *App) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions := a.chat.Suggestions()
	writeJSON(w, http.StatusOK, models.SuggestionsResponse{
		Success:     true,
		Suggestions: suggestions,
		Total:       len(suggestions),
	})
}

func (a *App) handleDatabaseInfo(w http.ResponseWriter, r *http.Request) {
	tables, err := a.store.ListTables(r.Context())
	if err != nil {
		a.log.Error("failed to get database info: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get database information"})
		return
	}
	writeJSON(w, http.StatusOK, models.DatabaseInfo{Tables: tables, TotalTables: len(tables)})
}

func (a *App) handleTableInfo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !a.tableExists(r, name) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("table %s not found", name)})
		return
	}

	schema, err := a.store.DescribeTable(r.Context(), name)
	if err != nil {
		a.log.Error("failed to describe table %s: %v", name, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to get information for table %s", name)})
		return
	}

	sample, err := a.store.ExecuteQuery(r.Context(), fmt.Sprintf("SELECT * FROM %s LIMIT 5", name))
	if err != nil {
		a.log.Error("failed to sample table %s: %v", name, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to get information for table %s", name)})
		return
	}

	count, err := a.store.ExecuteQuery(r.Context(), fmt.Sprintf("SELECT COUNT(*) as total_rows FROM %s", name))
	if err != nil {
		a.log.Error("failed to count table %s: %v", name, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to get information for table %s", name)})
		return
	}

	columns := make([]models.ColumnSchema, len(schema))
	for i, col := range schema {
		columns[i] = models.ColumnSchema{Name: col.Name, Type: col.Type}
	}

	writeJSON(w, http.StatusOK, models.TableInfo{
		Success:    true,
		TableName:  name,
		Schema:     columns,
		SampleData: sample,
		TotalRows:  countValue(count),
		Stats:      app.NumericColumnStats(sample),
	})
}

func (a *App) handleCustomQuery(w http.ResponseWriter, r *http.Request) {
	var req models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	query := strings.TrimSpace(req.Query)
	if err := ai.ValidateReadOnly(query); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: rejectionMessage(query)})
		return
	}

	results, err := a.store.ExecuteQuery(r.Context(), query)
	if err != nil {
		a.log.Error("custom query failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Query execution failed: %v", err)})
		return
	}

	writeJSON(w, http.StatusOK, models.QueryResponse{
		Success:   true,
		Query:     query,
		Results:   results,
		TotalRows: len(results),
	})
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(chi.URLParam(r, "format"))
	if format != "csv" && format != "json" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Supported formats: csv, json"})
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	tableName := strings.TrimSpace(r.URL.Query().Get("table_name"))

	var exportQuery string
	switch {
	case query != "":
		if err := ai.ValidateReadOnly(query); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: rejectionMessage(query)})
			return
		}
		exportQuery = query
	case tableName != "":
		if !a.tableExists(r, tableName) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("table %s not found", tableName)})
			return
		}
		exportQuery = fmt.Sprintf("SELECT * FROM %s", tableName)
	default:
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Either table_name or query parameter is required"})
		return
	}

	results, err := a.store.ExecuteQuery(r.Context(), exportQuery)
	if err != nil {
		a.log.Error("export query failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Export failed: %v", err)})
		return
	}

	writeJSON(w, http.StatusOK, models.ExportResponse{
		Success:   true,
		Format:    format,
		Data:      results,
		TotalRows: len(results),
	})
}

// tableExists resolves a caller-supplied table name against the store's
// actual table list before it gets interpolated into a query.
func (a *App) tableExists(r *http.Request, name string) bool {
	tables, err := a.store.ListTables(r.Context())
	if err != nil {
		return false
	}
	for _, t := range tables {
		if t == name {
			return true
		}
	}
	return false
}

// rejectionMessage maps a guard rejection to the user-facing string.
func rejectionMessage(query string) string {
	if strings.TrimSpace(query) == "" {
		return "Query cannot be empty"
	}
	return "Only SELECT queries are allowed"
}

// countValue pulls the total_rows value out of a COUNT(*) result.
func countValue(rows []*models.ResultRow) int {
	if len(rows) == 0 {
		return 0
	}
	v, ok := rows[0].Get("total_rows")
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case int64:
		return int(t)
	case int:
		return t
	case float64:
		return int(t)
	default:
		return 0
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
