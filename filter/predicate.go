package filter

import "strings"

// Conjunction joins clauses of the composite predicate
const Conjunction = " AND "

// QuoteIdent double-quotes a column name for use in a predicate
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Compose joins the non-empty clauses of fields in order.
// It returns "" when no field is dirty.
func Compose(fields []*Field) string {
	clauses := make([]string, 0, len(fields))
	for _, f := range fields {
		clauses = append(clauses, f.RangeFilter())
	}
	return joinClauses(clauses)
}

func joinClauses(clauses []string) string {
	var where []string
	for _, c := range clauses {
		if c != "" {
			where = append(where, c)
		}
	}
	return strings.Join(where, Conjunction)
}
