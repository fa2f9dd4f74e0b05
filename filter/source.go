package filter

import "context"

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks -source=source.go DataSource,Settings

// Column describes one column reported by a data source
type Column struct {
	Name    string
	Numeric bool
}

// PredicateSink receives the composite predicate of a field set
type PredicateSink interface {
	// SetPredicate applies expr as the dataset's row filter
	SetPredicate(expr string)
	// ClearPredicate removes any row filter
	ClearPredicate()
}

// DataSource is the dataset a field set filters
type DataSource interface {
	PredicateSink
	Columns(ctx context.Context) ([]Column, error)
	// Min and Max return NaN when the aggregate has no value
	Min(ctx context.Context, column string) (float64, error)
	Max(ctx context.Context, column string) (float64, error)
}

// Settings is the host's key-value store for one dataset
type Settings interface {
	// Setting returns def when key has never been set
	Setting(ctx context.Context, key, def string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}
