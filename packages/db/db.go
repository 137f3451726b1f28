// Package db loads CSV fixtures into SQLite so tests can assert against
// them with SQL.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/testkit-dev/testkit/packages/csv"
)

// QueryResult holds the rows returned by a query.
type QueryResult struct {
	Columns []string
	Rows    []map[string]any
}

// Client wraps a SQLite database holding imported fixture tables.
type Client struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// Open creates a client backed by the SQLite file at path. Use ":memory:"
// for a throwaway in-memory database.
func Open(path string) (*Client, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &Client{
		db:           sqlDB,
		queryTimeout: 30 * time.Second,
	}, nil
}

// Close closes the underlying database.
func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ImportTable creates a table named name with one TEXT column per fixture
// column and inserts every row inside a single transaction. An existing
// table of the same name is dropped first, so re-importing a fixture is
// idempotent. Table and column names must be plain identifiers.
func (c *Client) ImportTable(ctx context.Context, name string, table *csv.Table) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("invalid table name %q", name)
	}
	if len(table.Columns) == 0 {
		return fmt.Errorf("table %q has no columns", name)
	}
	for _, col := range table.Columns {
		if !identPattern.MatchString(col) {
			return fmt.Errorf("invalid column name %q", col)
		}
	}

	cols := make([]string, len(table.Columns))
	placeholders := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		cols[i] = fmt.Sprintf("%q TEXT", col)
		placeholders[i] = "?"
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %q", name)); err != nil {
		return fmt.Errorf("drop existing table %s: %w", name, err)
	}
	create := fmt.Sprintf("CREATE TABLE %q (%s)", name, strings.Join(cols, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create table %s: %w", name, err)
	}

	insert := fmt.Sprintf("INSERT INTO %q VALUES (%s)", name, strings.Join(placeholders, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert for %s: %w", name, err)
	}
	defer stmt.Close()

	for i, row := range table.Rows {
		values := make([]any, len(table.Columns))
		for j, col := range table.Columns {
			values[j] = row[col]
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("insert row %d into %s: %w", i+1, name, err)
		}
	}

	return tx.Commit()
}

// ImportCSV parses CSV content and imports it under the given table name.
func (c *Client) ImportCSV(ctx context.Context, name, content string, opts csv.ParseOptions) error {
	return c.ImportTable(ctx, name, csv.Parse(content, opts))
}

// Query runs a SQL statement and returns all rows, with []byte values
// converted to strings.
func (c *Client) Query(ctx context.Context, query string, args ...any) (*QueryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.queryTimeout)
	defer cancel()

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("get columns: %w", err)
	}

	result := &QueryResult{
		Columns: columns,
		Rows:    make([]map[string]any, 0),
	}

	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return result, nil
}
