package source

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// CreateSettingsTable creates the table field sets persist their order in
func CreateSettingsTable(ctx context.Context, db *sqlx.DB) error {
	var schema = `
	CREATE TABLE IF NOT EXISTS range_filter_setting (
	dataset TEXT NOT NULL,
	name    TEXT NOT NULL,
	value   TEXT NOT NULL,

	 PRIMARY KEY (dataset, name)
	                         )
	`
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return err
	}
	return nil
}
