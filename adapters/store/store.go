package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"esgchat/domain/grid"
	"esgchat/internal"
	"esgchat/internal/errors"
	"esgchat/models"
	"esgchat/ports"
)

// SQLStore implements ports.Store over sqlx with driver-specific schema
// introspection. Supported drivers: "sqlite" (modernc) and "postgres"
// (lib/pq). The connection is shared and lazily reused for the process
// lifetime; database/sql serializes access under light concurrency.
type SQLStore struct {
	db     *sqlx.DB
	driver string
	log    *internal.Logger
}

// Open connects to the store and verifies the connection.
func Open(driver, dsn string, logger *internal.Logger) (*SQLStore, error) {
	switch driver {
	case "sqlite", "postgres":
	default:
		return nil, errors.ConfigInvalid(fmt.Sprintf("unsupported database driver %q", driver))
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s store", driver)
	}

	if driver == "sqlite" {
		// One shared connection: sqlite serializes writers anyway, and
		// an in-memory database exists per connection.
		db.SetMaxOpenConns(1)
	}

	return &SQLStore{db: db, driver: driver, log: logger.Named("store")}, nil
}

// DB exposes the underlying handle for callers that need it (tests).
func (s *SQLStore) DB() *sqlx.DB {
	return s.db
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// ExecuteQuery runs an arbitrary read query and returns its rows as
// ordered name→value mappings.
func (s *SQLStore) ExecuteQuery(ctx context.Context, query string) ([]*models.ResultRow, error) {
	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, errors.ExecutionError(query, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.ExecutionError(query, err)
	}

	results := make([]*models.ResultRow, 0)
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, errors.ExecutionError(query, err)
		}
		row := models.NewResultRow(columns)
		for i, col := range columns {
			row.Set(col, normalizeValue(values[i]))
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ExecutionError(query, err)
	}

	return results, nil
}

// normalizeValue converts driver byte slices to strings so results
// serialize as text rather than base64.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// ReplaceTable drops any existing table of the same name and recreates
// it from the normalized table. No incremental merge.
func (s *SQLStore) ReplaceTable(ctx context.Context, name string, table grid.NormalizedTable) error {
	if len(table.Columns) == 0 {
		return errors.IngestionError(fmt.Sprintf("table %s has no columns", name))
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "begin replace of table %s", name)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(name)); err != nil {
		return errors.Wrapf(err, "drop table %s", name)
	}

	defs := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		sqlType := "TEXT"
		if table.ColumnIsNumeric(i) {
			sqlType = "REAL"
		}
		if s.driver == "postgres" && sqlType == "REAL" {
			sqlType = "DOUBLE PRECISION"
		}
		defs[i] = quoteIdent(col) + " " + sqlType
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(name), strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return errors.Wrapf(err, "create table %s", name)
	}

	if len(table.Rows) > 0 {
		quoted := make([]string, len(table.Columns))
		marks := make([]string, len(table.Columns))
		for i, col := range table.Columns {
			quoted[i] = quoteIdent(col)
			marks[i] = "?"
		}
		insertSQL := s.db.Rebind(fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s)",
			quoteIdent(name), strings.Join(quoted, ", "), strings.Join(marks, ", "),
		))

		stmt, err := tx.PreparexContext(ctx, insertSQL)
		if err != nil {
			return errors.Wrapf(err, "prepare insert for table %s", name)
		}
		defer stmt.Close()

		args := make([]any, len(table.Columns))
		for _, row := range table.Rows {
			for i := range table.Columns {
				args[i] = row.At(i).Value()
			}
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return errors.Wrapf(err, "insert into table %s", name)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "commit replace of table %s", name)
	}

	s.log.Debug("replaced table %s (%d rows, %d columns)", name, len(table.Rows), len(table.Columns))
	return nil
}

// ListTables returns all user table names in alphabetical order.
func (s *SQLStore) ListTables(ctx context.Context) ([]string, error) {
	var query string
	switch s.driver {
	case "postgres":
		query = "SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname = 'public' ORDER BY tablename"
	default:
		query = "SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name"
	}

	tables := make([]string, 0)
	if err := s.db.SelectContext(ctx, &tables, query); err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}
	return tables, nil
}

// DescribeTable returns the table's column name/type pairs in
// declaration order via the driver's introspection query.
func (s *SQLStore) DescribeTable(ctx context.Context, name string) ([]ports.ColumnInfo, error) {
	var (
		rows *sqlx.Rows
		err  error
	)
	switch s.driver {
	case "postgres":
		query := s.db.Rebind("SELECT column_name, data_type FROM information_schema.columns WHERE table_name = ? ORDER BY ordinal_position")
		rows, err = s.db.QueryxContext(ctx, query, name)
	default:
		rows, err = s.db.QueryxContext(ctx, "SELECT name, type FROM pragma_table_info("+quoteLiteral(name)+")")
	}
	if err != nil {
		return nil, errors.WithCode(errors.CodeSchemaIntrospection, err)
	}
	defer rows.Close()

	columns := make([]ports.ColumnInfo, 0)
	for rows.Next() {
		var col ports.ColumnInfo
		if err := rows.Scan(&col.Name, &col.Type); err != nil {
			return nil, errors.WithCode(errors.CodeSchemaIntrospection, err)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WithCode(errors.CodeSchemaIntrospection, err)
	}
	if len(columns) == 0 {
		return nil, errors.New(errors.CodeSchemaIntrospection, fmt.Sprintf("table %s not found", name))
	}
	return columns, nil
}

// quoteIdent double-quotes an identifier for both supported drivers.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteLiteral single-quotes a string literal (pragma_table_info takes
// the table name as a literal, not an identifier).
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
