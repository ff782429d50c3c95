package subunit

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrCurrencyNotFound is reported when a currency has no entry in the factor table.
	ErrCurrencyNotFound = errors.New("currency not found in factor table")
	// ErrRangeExceeded is reported when a scaled major-unit amount cannot be
	// represented as an int64 number of subunits.
	ErrRangeExceeded = errors.New("amount out of subunit range")
)

// ConversionError describes a failed conversion of an amount denominated
// in currency Curr.
// Err is either [ErrCurrencyNotFound] or [ErrRangeExceeded]; use [errors.Is]
// to tell them apart and [errors.As] to recover the currency.
type ConversionError[C CurrencyCode] struct {
	Curr C
	Err  error
}

func (e *ConversionError[C]) Error() string {
	return fmt.Sprintf("converting %v amount: %v", e.Curr, e.Err)
}

func (e *ConversionError[C]) Unwrap() error {
	return e.Err
}

// Bounds of the subunit domain as floats.
// float64(math.MaxInt64) rounds up to 2^63, which does not fit into an int64,
// so the upper bound is the largest float64 below it.
const (
	minSubunits float64 = math.MinInt64
	maxSubunits float64 = math.MaxInt64 - 1023
)

// toSubunits rounds f half away from zero and converts it to an int64.
// Values outside of [minSubunits, maxSubunits], NaN and infinities are rejected.
func toSubunits(f float64) (int64, error) {
	f = math.Round(f)
	if math.IsNaN(f) || f < minSubunits || f > maxSubunits {
		return 0, ErrRangeExceeded
	}
	return int64(f), nil
}
