package filter

import (
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	// WideRange is the span above which values are shown as whole numbers
	WideRange = 10
	// BoundaryEpsilon is added to a narrow-range upper bound so that
	// a "<=" comparison still includes the maximum row
	BoundaryEpsilon = 0.01
)

// Pretty formats a domain value for display and for use as a predicate literal.
//
// A value sitting on the upper bound is nudged upwards (ceiling for wide
// ranges, BoundaryEpsilon for narrow ones) so the maximum row is never lost
// to float representation.
func Pretty(value, lo, hi float64) string {
	if !finite(value) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	if Degenerate(lo, hi) {
		if hi > WideRange {
			return decimal.NewFromFloat(hi).Truncate(0).String()
		}
		return twoDecimals(hi)
	}

	wide := hi-lo > WideRange
	if value == hi {
		if wide {
			return decimal.NewFromFloat(value).Ceil().String()
		}
		return twoDecimals(value + BoundaryEpsilon)
	}

	if wide {
		return decimal.NewFromFloat(value).Truncate(0).String()
	}
	return twoDecimals(value)
}

// twoDecimals rounds the exact binary value of v, ties to even, the way
// printf's %.2f does. Rounding the shortest decimal form instead turns
// 0.01499999... (printed as 0.015) into 0.02.
func twoDecimals(v float64) string {
	return exactDecimal(v).StringFixedBank(2)
}

// exactDecimal returns the decimal expansion of v without any rounding
func exactDecimal(v float64) decimal.Decimal {
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	// m * 2^-n == m * 5^n * 10^-n
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, five), int32(exp))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
