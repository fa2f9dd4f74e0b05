package filter

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"rangefilter/filter/options"
)

// Set owns the ordered range fields of one dataset and keeps the dataset's
// predicate in sync with them.
//
// A Set is driven from a single event loop and is not safe for concurrent use.
type Set struct {
	sink     PredicateSink
	settings Settings
	opts     *options.SetOptions
	logger   *zap.Logger

	fields    []*Field
	index     map[string]*Field
	predicate string
	listeners []func(string)

	// re-entrancy guard for Recompute
	busy    bool
	pending bool
	closed  bool
}

// Creates a new Set pushing its predicate to sink.
// settings may be nil, in which case Save is a no-op.
func NewSet(sink PredicateSink, settings Settings, opts ...*options.SetOptions) *Set {
	o := options.Merge(opts...)
	return &Set{
		sink:     sink,
		settings: settings,
		opts:     o,
		logger:   o.Logger,
		index:    make(map[string]*Field),
	}
}

// AddField appends a clean field covering [lo, hi]
func (s *Set) AddField(name string, lo, hi float64) (*Field, error) {
	if !finite(lo) || !finite(hi) || lo > hi {
		return nil, fmt.Errorf("field %s [%v, %v]: %w", name, lo, hi, ErrInvalidBounds)
	}
	if _, ok := s.index[name]; ok {
		return nil, fmt.Errorf("field %s: %w", name, ErrDuplicateField)
	}

	s.logger.Info("creating range field",
		zap.String("field", name),
		zap.Float64("min", lo),
		zap.Float64("max", hi),
	)

	f := newField(name, lo, hi, s.opts.Resolution, s.logger)
	f.notify = s.fieldChanged
	s.fields = append(s.fields, f)
	s.index[name] = f

	return f, nil
}

// RemoveField drops the named field and recomputes the predicate.
// Removing an absent field does nothing.
func (s *Set) RemoveField(name string) {
	f, ok := s.index[name]
	if !ok {
		return
	}

	f.notify = nil
	delete(s.index, name)
	s.fields = slices.DeleteFunc(slices.Clone(s.fields), func(each *Field) bool {
		return each == f
	})

	s.logger.Info("removed range field", zap.String("field", name))
	s.Recompute()
}

// RemoveAndSave removes the named field and persists the remaining order
func (s *Set) RemoveAndSave(ctx context.Context, name string) error {
	s.RemoveField(name)
	return s.Save(ctx)
}

func (s *Set) Field(name string) (*Field, bool) {
	f, ok := s.index[name]
	return f, ok
}

// Fields returns the fields in insertion order
func (s *Set) Fields() []*Field {
	return slices.Clone(s.fields)
}

// Names returns the field names in insertion order
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.name)
	}
	return names
}

func (s *Set) Len() int { return len(s.fields) }

// Predicate returns the last composed predicate
func (s *Set) Predicate() string { return s.predicate }

// OnChange registers fn to run after every recomputation
func (s *Set) OnChange(fn func(predicate string)) {
	s.listeners = append(s.listeners, fn)
}

// Recompute composes the predicate from all dirty fields and pushes it to the sink.
//
// A call made while a recomputation is running, for example from an OnChange
// listener removing a field, is folded into the running one.
func (s *Set) Recompute() string {
	if s.closed {
		return s.predicate
	}
	if s.busy {
		s.pending = true
		return s.predicate
	}

	s.busy = true
	defer func() { s.busy = false }()

	for {
		s.pending = false
		s.predicate = Compose(slices.Clone(s.fields))
		if s.sink != nil {
			s.sink.SetPredicate(s.predicate)
		}
		for _, fn := range slices.Clone(s.listeners) {
			fn(s.predicate)
		}
		if !s.pending {
			return s.predicate
		}
	}
}

// Save persists the field order to the set's settings
func (s *Set) Save(ctx context.Context) error {
	if s.settings == nil {
		return nil
	}
	return SaveNames(ctx, s.settings, s.Names())
}

// Close clears the dataset's predicate and detaches every field.
// The set ignores further changes.
func (s *Set) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, f := range s.fields {
		f.notify = nil
	}
	s.predicate = ""
	if s.sink != nil {
		s.sink.ClearPredicate()
	}
}

func (s *Set) fieldChanged(*Field) {
	s.Recompute()
}
