package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Survey is a row of the table created by CreateSurvey
type Survey struct {
	ID        int     `db:"id"`
	Label     string  `db:"label"`
	Elevation int     `db:"elevation"`
	Ratio     float64 `db:"ratio"`
	Score     float64 `db:"score"`
}

func NewUUID() string {
	id := uuid.New()
	return id.String()
}

// TableName returns a unique table name so tests can share a database
func TableName(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(NewUUID(), "-", "")
}

// CreateSurvey creates a table with rows elevation = i*100, ratio = i/10 and
// score = i*100 for i in 1..length.
func CreateSurvey(ctx context.Context, db *sqlx.DB, length int) (string, []Survey, error) {
	name := TableName("survey")

	schema := fmt.Sprintf(`
	CREATE TABLE %q (
	id        INTEGER NOT NULL PRIMARY KEY,
	label     TEXT NOT NULL,
	elevation INTEGER NOT NULL,
	ratio     REAL NOT NULL,
	score     NUMERIC(12, 4) NOT NULL
	                         )
	`, name)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return "", nil, err
	}

	var rows []Survey
	for i := 1; i <= length; i++ {
		rows = append(rows, Survey{
			ID:        i,
			Label:     fmt.Sprintf("site-%d", i),
			Elevation: i * 100,
			Ratio:     float64(i) / 10,
			Score:     float64(i * 100),
		})
	}
	if length == 0 {
		return name, rows, nil
	}

	query := fmt.Sprintf("INSERT INTO %q (id, label, elevation, ratio, score) VALUES (:id, :label, :elevation, :ratio, :score)", name)
	if _, err := db.NamedExecContext(ctx, query, rows); err != nil {
		return "", nil, err
	}
	return name, rows, nil
}
