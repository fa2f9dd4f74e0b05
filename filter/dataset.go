package filter

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"rangefilter/filter/options"
)

// Open builds the field set of one dataset.
//
// The source's predicate is cleared first so stale filters never skew the
// min/max aggregates. Field names come from settings; when nothing was saved,
// every numeric column of the source gets a field. Names the source does not
// know, non-numeric columns and columns whose bounds cannot be aggregated
// are skipped. Only listing columns, reading settings and a done context
// fail the whole open.
func Open(ctx context.Context, source DataSource, settings Settings, opts ...*options.SetOptions) (*Set, error) {
	source.ClearPredicate()

	columns, err := source.Columns(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}

	var names []string
	if settings != nil {
		names, err = LoadNames(ctx, settings)
		if err != nil {
			return nil, err
		}
	}
	if len(names) == 0 {
		for _, c := range columns {
			if c.Numeric {
				names = append(names, c.Name)
			}
		}
	}

	set := NewSet(source, settings, opts...)
	numeric := make(map[string]bool, len(columns))
	for _, c := range columns {
		numeric[c.Name] = c.Numeric
	}

	for _, name := range names {
		isNumeric, known := numeric[name]
		if !known || !isNumeric {
			set.logger.Warn("skipping field", zap.String("field", name), zap.Bool("known", known))
			continue
		}
		if _, ok := set.Field(name); ok {
			continue
		}

		err = addFromSource(ctx, set, source, name)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, ErrInvalidBounds) {
			set.logger.Warn("skipping field with invalid bounds", zap.String("field", name), zap.Error(err))
			continue
		}
		if err != nil {
			set.logger.Warn("skipping field without bounds", zap.String("field", name), zap.Error(err))
			continue
		}
	}

	set.logger.Info("done adding fields", zap.Int("count", set.Len()))

	if err = set.Save(ctx); err != nil {
		return nil, err
	}
	set.Recompute()
	return set, nil
}

func addFromSource(ctx context.Context, set *Set, source DataSource, name string) error {
	hi, err := source.Max(ctx, name)
	if err != nil {
		return fmt.Errorf("max of %s: %w", name, err)
	}
	lo, err := source.Min(ctx, name)
	if err != nil {
		return fmt.Errorf("min of %s: %w", name, err)
	}

	_, err = set.AddField(name, lo, hi)
	return err
}
