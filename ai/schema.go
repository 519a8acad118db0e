package ai

import (
	"context"
	"fmt"
	"strings"

	"esgchat/internal"
	"esgchat/ports"
)

// maxSchemaTables bounds the summary so the synthesis prompt stays
// within token limits.
const maxSchemaTables = 10

// degradedSchemaText is returned when table listing itself fails.
const degradedSchemaText = "Schema information not available"

// TableSchema is one table's contribution to the schema summary.
type TableSchema struct {
	Name    string
	Columns []ports.ColumnInfo
}

// SchemaSummary is a compact textual description of the store's tables,
// used as grounding context for query generation.
type SchemaSummary struct {
	Tables   []TableSchema
	Degraded bool
}

// Text renders the summary for prompt embedding.
func (s SchemaSummary) Text() string {
	if s.Degraded {
		return degradedSchemaText
	}
	parts := make([]string, 0, len(s.Tables))
	for _, t := range s.Tables {
		cols := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cols[i] = fmt.Sprintf("%s (%s)", c.Name, c.Type)
		}
		parts = append(parts, fmt.Sprintf("Table: %s\nColumns: %s\n", t.Name, strings.Join(cols, ", ")))
	}
	return strings.Join(parts, "\n")
}

// SummarizeSchema describes at most the first maxSchemaTables tables,
// alphabetically. A table whose introspection fails is logged and
// omitted; only a failure to list tables at all degrades the summary.
func SummarizeSchema(ctx context.Context, store ports.Store, logger *internal.Logger) SchemaSummary {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	log := logger.Named("schema")

	tables, err := store.ListTables(ctx)
	if err != nil {
		log.Error("failed to list tables: %v", err)
		return SchemaSummary{Degraded: true}
	}
	log.Debug("found %d tables in store", len(tables))

	if len(tables) > maxSchemaTables {
		tables = tables[:maxSchemaTables]
	}

	summary := SchemaSummary{Tables: make([]TableSchema, 0, len(tables))}
	for _, table := range tables {
		columns, err := store.DescribeTable(ctx, table)
		if err != nil {
			log.Warn("could not get info for table %s: %v", table, err)
			continue
		}
		summary.Tables = append(summary.Tables, TableSchema{Name: table, Columns: columns})
	}
	return summary
}
