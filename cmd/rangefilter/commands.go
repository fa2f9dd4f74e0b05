package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"rangefilter/filter"
)

func applyCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Move slider handles and report the rows that match",
		Args:  cobra.NoArgs,
		RunE:  c.apply,
	}

	flags := cmd.Flags()
	flags.StringArray("ticks", nil, "Handle positions as name=start:end, repeatable")
	flags.StringArray("between", nil, "Domain values as name=low:high, snapped to the nearest ticks, repeatable")
	flags.Int("rows", 0, "Print up to this many matching rows")

	return cmd
}

func (c *cli) fields(cmd *cobra.Command, args []string) error {
	d, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer d.Close()

	return writeFields(cmd.OutOrStdout(), d.set.Fields())
}

func (c *cli) apply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ticks, err := cmd.Flags().GetStringArray("ticks")
	if err != nil {
		return err
	}
	between, err := cmd.Flags().GetStringArray("between")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("rows")
	if err != nil {
		return err
	}

	d, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	total, err := d.table.Count(ctx)
	if err != nil {
		return err
	}

	for _, arg := range ticks {
		if err = applyTicks(d.set, arg); err != nil {
			return err
		}
	}
	for _, arg := range between {
		if err = applyBetween(d.set, arg); err != nil {
			return err
		}
	}

	matched, err := d.table.Count(ctx)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "predicate: %s\n", d.set.Predicate())
	fmt.Fprintf(w, "matched %s of %s rows\n", humanize.Comma(matched), humanize.Comma(total))

	if limit <= 0 {
		return nil
	}

	columns, err := d.table.Columns(ctx)
	if err != nil {
		return err
	}
	rows, err := d.table.Rows(ctx, limit)
	if err != nil {
		return err
	}
	return writeRows(w, columns, rows)
}

func (c *cli) remove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	for _, name := range args {
		if err = d.set.RemoveAndSave(ctx, name); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "fields: %s\n", strings.Join(d.set.Names(), ", "))
	return nil
}

func applyTicks(set *filter.Set, arg string) error {
	f, lo, hi, err := parseRange(set, arg)
	if err != nil {
		return err
	}

	start, err := strconv.Atoi(lo)
	if err != nil {
		return fmt.Errorf("start tick of %q: %w", arg, err)
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return fmt.Errorf("end tick of %q: %w", arg, err)
	}

	return f.SetTicks(start, end)
}

func applyBetween(set *filter.Set, arg string) error {
	f, lo, hi, err := parseRange(set, arg)
	if err != nil {
		return err
	}

	low, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return fmt.Errorf("low value of %q: %w", arg, err)
	}
	high, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return fmt.Errorf("high value of %q: %w", arg, err)
	}

	fmin, fmax := f.Bounds()
	return f.SetTicks(
		filter.ToTick(low, f.Resolution(), fmin, fmax),
		filter.ToTick(high, f.Resolution(), fmin, fmax),
	)
}

// parseRange splits name=low:high and looks up the field
func parseRange(set *filter.Set, arg string) (*filter.Field, string, string, error) {
	name, bounds, ok := strings.Cut(arg, "=")
	if !ok {
		return nil, "", "", fmt.Errorf("range %q: want name=low:high", arg)
	}
	lo, hi, ok := strings.Cut(bounds, ":")
	if !ok {
		return nil, "", "", fmt.Errorf("range %q: want name=low:high", arg)
	}

	f, ok := set.Field(name)
	if !ok {
		return nil, "", "", fmt.Errorf("range %q: unknown field %s", arg, name)
	}
	return f, strings.TrimSpace(lo), strings.TrimSpace(hi), nil
}

func writeFields(w io.Writer, fields []*filter.Field) error {
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Min", "Max", "From", "To", "Interactive")

	var rows [][]string
	for _, f := range fields {
		lo, hi := f.Bounds()
		from, to := f.Labels()
		rows = append(rows, []string{
			f.Name(),
			strconv.FormatFloat(lo, 'f', -1, 64),
			strconv.FormatFloat(hi, 'f', -1, 64),
			from,
			to,
			strconv.FormatBool(f.Interactive()),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func writeRows(w io.Writer, columns []filter.Column, rows []map[string]interface{}) error {
	table := tablewriter.NewWriter(w)

	header := make([]any, 0, len(columns))
	for _, c := range columns {
		header = append(header, c.Name)
	}
	table.Header(header...)

	var data [][]string
	for _, row := range rows {
		cells := make([]string, 0, len(columns))
		for _, c := range columns {
			cells = append(cells, cell(row[c.Name]))
		}
		data = append(data, cells)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func cell(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
