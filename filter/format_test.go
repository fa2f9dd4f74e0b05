package filter

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPretty(t *testing.T) {
	cases := []struct {
		Name     string
		Value    float64
		Min, Max float64
		Want     string
	}{
		{"wide truncates", 300, 0, 1000, "300"},
		{"wide truncates fraction", 370.9, 0, 1000, "370"},
		{"wide truncates toward zero", -12.7, -20, 0, "-12"},
		{"wide max rounds up", 1000, 0, 1000, "1000"},
		{"wide fractional max rounds up", 999.2, 0, 999.2, "1000"},
		{"narrow two decimals", 0.5, 0, 1, "0.50"},
		{"narrow min", 0, 0, 1, "0.00"},
		{"narrow max adds epsilon", 1, 0, 1, "1.01"},
		{"span of exactly ten is narrow", 3.3333, 0, 10, "3.33"},
		{"narrow negative", -1.3, -5, 5, "-1.30"},
		{"narrow rounds exact value down", 0.015, 0, 0.5, "0.01"},
		{"narrow rounds exact value up", 0.025, 0, 0.5, "0.03"},
		{"narrow exact tie to even", 0.125, 0, 1, "0.12"},
		{"narrow exact tie to even upwards", 0.375, 0, 1, "0.38"},
		{"degenerate small", 5, 5, 5, "5.00"},
		{"degenerate rounds exact value", 0.145, 0.145, 0.145, "0.14"},
		{"degenerate large", 20.7, 20.7, 20.7, "20"},
		{"degenerate ignores value", 0, 42, 42, "42"},
	}
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			require.Equal(t, tc.Want, Pretty(tc.Value, tc.Min, tc.Max))
		})
	}
}

func TestPrettyTickLiterals(t *testing.T) {
	// literals of ticks on [0, 0.5] match %.2f of the tick's value
	want := map[int]string{
		1:  "0.01",
		3:  "0.01",
		5:  "0.03",
		7:  "0.04",
		9:  "0.04",
		29: "0.14",
		41: "0.20",
	}
	for tick, label := range want {
		value := ToDomain(tick, 100, 0, 0.5)
		require.Equal(t, label, Pretty(value, 0, 0.5), "tick %d", tick)
		require.Equal(t, fmt.Sprintf("%.2f", value), Pretty(value, 0, 0.5), "tick %d", tick)
	}
}

func TestPrettyNonFinite(t *testing.T) {
	require.Equal(t, "NaN", Pretty(math.NaN(), 0, 1))
	require.Equal(t, "+Inf", Pretty(math.Inf(1), 0, 1))
}
