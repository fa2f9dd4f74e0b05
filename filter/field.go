package filter

import (
	"fmt"

	"go.uber.org/zap"

	"rangefilter/filter/options"
)

var _ options.Range = (*Field)(nil)

// Field holds the slider state of one numeric column.
//
// A Field starts clean and covers its whole domain. The first accepted tick
// change marks it dirty, and from then on it contributes a clause to the
// set's predicate until it is removed.
type Field struct {
	name       string
	lo, hi     float64
	resolution int
	start, end int
	dirty      bool

	// called after every accepted change; nil once the field is removed
	notify func(*Field)
	logger *zap.Logger
}

func newField(name string, lo, hi float64, resolution int, logger *zap.Logger) *Field {
	return &Field{
		name:       name,
		lo:         lo,
		hi:         hi,
		resolution: resolution,
		start:      0,
		end:        resolution,
		logger:     logger,
	}
}

func (f *Field) Name() string { return f.name }

// Bounds returns the domain of the field
func (f *Field) Bounds() (lo, hi float64) { return f.lo, f.hi }

func (f *Field) Resolution() int { return f.resolution }

// Ticks returns the current start and end handle positions
func (f *Field) Ticks() (start, end int) { return f.start, f.end }

func (f *Field) Dirty() bool { return f.dirty }

// Interactive reports whether the slider can be moved at all.
// A field whose min equals its max is shown disabled.
func (f *Field) Interactive() bool { return !Degenerate(f.lo, f.hi) }

// Values returns the domain values under both handles
func (f *Field) Values() (lo, hi float64) {
	return ToDomain(f.start, f.resolution, f.lo, f.hi),
		ToDomain(f.end, f.resolution, f.lo, f.hi)
}

// Labels returns the formatted values under both handles
func (f *Field) Labels() (lo, hi string) {
	start, end := f.Values()
	return Pretty(start, f.lo, f.hi), Pretty(end, f.lo, f.hi)
}

func (f *Field) SetStart(tick int) error {
	return f.SetTicks(tick, f.end)
}

func (f *Field) SetEnd(tick int) error {
	return f.SetTicks(f.start, tick)
}

// SetTicks moves both handles. It is the handler for every user drag.
func (f *Field) SetTicks(start, end int) error {
	if !f.Interactive() {
		return fmt.Errorf("%s: %w", f.name, ErrNonInteractive)
	}
	if start < 0 || end > f.resolution || start > end {
		return fmt.Errorf("%s: ticks %d..%d outside 0..%d: %w",
			f.name, start, end, f.resolution, ErrTickRange)
	}

	f.start, f.end = start, end
	if !f.dirty {
		f.logger.Info("switching field to dirty", zap.String("field", f.name))
		f.dirty = true
	}

	if f.notify != nil {
		f.notify(f)
	}
	return nil
}

func (f *Field) From() (string, bool) {
	if !f.dirty {
		return "", false
	}
	lo, _ := f.Labels()
	return lo, true
}

func (f *Field) To() (string, bool) {
	if !f.dirty {
		return "", false
	}
	_, hi := f.Labels()
	return hi, true
}

// RangeFilter returns the clause this field adds to the predicate,
// or "" while the field is clean
func (f *Field) RangeFilter() string {
	return RangeClause(f.name, f)
}

// RangeClause renders r as inclusive comparisons on a quoted column
func RangeClause(column string, r options.Range) string {
	var clauses []string

	if from, ok := r.From(); ok {
		clauses = append(clauses, fmt.Sprintf("%s >= %s", QuoteIdent(column), from))
	}
	if to, ok := r.To(); ok {
		clauses = append(clauses, fmt.Sprintf("%s <= %s", QuoteIdent(column), to))
	}

	return joinClauses(clauses)
}
