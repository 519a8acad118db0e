package ports

import (
	"context"

	"esgchat/domain/grid"
	"esgchat/models"
)

// ColumnInfo is one column's name and declared type as reported by
// schema introspection.
type ColumnInfo struct {
	Name string
	Type string
}

// Store is the relational store collaborator. Implementations must keep
// result-column order intact and give ReplaceTable drop-and-recreate
// semantics.
type Store interface {
	// ExecuteQuery runs an arbitrary read query and returns its rows.
	ExecuteQuery(ctx context.Context, query string) ([]*models.ResultRow, error)

	// ReplaceTable replaces the named table's contents wholesale with
	// the given normalized table.
	ReplaceTable(ctx context.Context, name string, table grid.NormalizedTable) error

	// ListTables returns all table names in alphabetical order.
	ListTables(ctx context.Context) ([]string, error)

	// DescribeTable returns the table's column name/type pairs in
	// declaration order.
	DescribeTable(ctx context.Context, name string) ([]ColumnInfo, error)

	Close() error
}
