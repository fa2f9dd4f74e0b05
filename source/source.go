// Package source implements the filter data source over a single SQL table.
package source

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"

	"rangefilter/filter"
)

var (
	_ filter.DataSource = (*Table)(nil)
	_ filter.Settings   = (*Table)(nil)
)

// column types aggregated as numbers, compared after stripping any "(p,s)" suffix
var numericTypes = map[string]bool{
	"INT": true, "INTEGER": true, "TINYINT": true, "SMALLINT": true, "MEDIUMINT": true, "BIGINT": true,
	"INT2": true, "INT4": true, "INT8": true,
	"REAL": true, "FLOAT": true, "FLOAT4": true, "FLOAT8": true, "DOUBLE": true, "DOUBLE PRECISION": true,
	"NUMERIC": true, "DECIMAL": true,
}

// Table is a dataset backed by one table.
//
// The predicate set by a field set is applied as the WHERE clause of every
// query the table runs, aggregates included. It is passed through unchecked.
type Table struct {
	db      *sqlx.DB
	name    string
	dataset string

	mu        sync.RWMutex
	predicate string
}

// Creates a Table over the named table.
// Settings are kept under the table name unless SetDataset is called.
func New(db *sqlx.DB, name string) *Table {
	return &Table{db: db, name: name, dataset: name}
}

// SetDataset changes the key settings are stored under
func (t *Table) SetDataset(dataset string) *Table {
	t.dataset = dataset
	return t
}

func (t *Table) Name() string { return t.name }

func (t *Table) SetPredicate(expr string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.predicate = expr
}

func (t *Table) ClearPredicate() {
	t.SetPredicate("")
}

func (t *Table) Predicate() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.predicate
}

// Columns lists the table's columns in table order
func (t *Table) Columns(ctx context.Context) ([]filter.Column, error) {
	query := fmt.Sprintf("SELECT * FROM %s LIMIT 0", filter.QuoteIdent(t.name))
	rows, err := t.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("describing %s: %w", t.name, err)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("describing %s: %w", t.name, err)
	}

	columns := make([]filter.Column, 0, len(types))
	for _, ct := range types {
		columns = append(columns, filter.Column{
			Name:    ct.Name(),
			Numeric: isNumeric(ct.DatabaseTypeName()),
		})
	}
	return columns, rows.Err()
}

func (t *Table) Min(ctx context.Context, column string) (float64, error) {
	return t.aggregate(ctx, "MIN", column)
}

func (t *Table) Max(ctx context.Context, column string) (float64, error) {
	return t.aggregate(ctx, "MAX", column)
}

// Count returns the number of rows matching the current predicate
func (t *Table) Count(ctx context.Context) (int64, error) {
	var n int64
	query := t.where(fmt.Sprintf("SELECT COUNT(*) FROM %s", filter.QuoteIdent(t.name)))
	if err := t.db.GetContext(ctx, &n, query); err != nil {
		return 0, fmt.Errorf("counting %s: %w", t.name, err)
	}
	return n, nil
}

// Select scans the rows matching the current predicate into dest
func (t *Table) Select(ctx context.Context, dest interface{}) error {
	query := t.where(fmt.Sprintf("SELECT * FROM %s", filter.QuoteIdent(t.name)))
	if err := t.db.SelectContext(ctx, dest, query); err != nil {
		return fmt.Errorf("selecting %s: %w", t.name, err)
	}
	return nil
}

// Rows returns up to limit matching rows as column maps
func (t *Table) Rows(ctx context.Context, limit int) ([]map[string]interface{}, error) {
	query := t.where(fmt.Sprintf("SELECT * FROM %s", filter.QuoteIdent(t.name)))
	query = fmt.Sprintf("%s LIMIT %d", query, limit)

	rows, err := t.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting %s: %w", t.name, err)
	}
	defer rows.Close()

	var result []map[string]interface{}
	for rows.Next() {
		row := make(map[string]interface{})
		if err = rows.MapScan(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (t *Table) aggregate(ctx context.Context, fn, column string) (float64, error) {
	var v sql.NullFloat64
	query := t.where(fmt.Sprintf("SELECT %s(%s) FROM %s", fn, filter.QuoteIdent(column), filter.QuoteIdent(t.name)))
	if err := t.db.GetContext(ctx, &v, query); err != nil {
		return 0, fmt.Errorf("%s of %s.%s: %w", strings.ToLower(fn), t.name, column, err)
	}
	if !v.Valid {
		return math.NaN(), nil
	}
	return v.Float64, nil
}

func (t *Table) where(query string) string {
	if p := t.Predicate(); p != "" {
		return fmt.Sprintf("%s WHERE %s", query, p)
	}
	return query
}

func isNumeric(typeName string) bool {
	name := strings.ToUpper(strings.TrimSpace(typeName))
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	return numericTypes[name]
}
