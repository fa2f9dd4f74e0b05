package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Setting reads a value from the range_filter_setting table
func (t *Table) Setting(ctx context.Context, key, def string) (string, error) {
	var value string
	query := t.db.Rebind("SELECT value FROM range_filter_setting WHERE dataset = ? AND name = ?")
	err := t.db.GetContext(ctx, &value, query, t.dataset, key)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	return value, nil
}

func (t *Table) SetSetting(ctx context.Context, key, value string) error {
	query := t.db.Rebind(`INSERT INTO range_filter_setting (dataset, name, value) VALUES (?, ?, ?)
	ON CONFLICT (dataset, name) DO UPDATE SET value = excluded.value`)
	_, err := t.db.ExecContext(ctx, query, t.dataset, key, value)
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}
