package subunit

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
)

// Subunits represents a monetary amount as an exact number of the smallest
// units of currency C (e.g. cents, fils, yen).
// The zero value is an amount of 0 in the zero value of C.
// Subunits is immutable and safe for concurrent use by multiple goroutines.
type Subunits[C CurrencyCode] struct {
	amount int64 // number of subunits
	curr   C
}

// MajorUnits represents a monetary amount as an approximate number of the
// standard denominations of currency C (e.g. dollars, dinars, yen).
// The zero value is an amount of 0 in the zero value of C.
// MajorUnits is immutable and safe for concurrent use by multiple goroutines.
type MajorUnits[C CurrencyCode] struct {
	amount float64 // number of major units
	curr   C
}

// NewSubunits returns an amount of the given number of subunits of currency curr.
// See also method [Subunits.Convert].
func NewSubunits[C CurrencyCode](amount int64, curr C) Subunits[C] {
	return Subunits[C]{amount: amount, curr: curr}
}

// NewMajorUnits returns an amount of the given number of major units of currency curr.
// NewMajorUnits does not validate the amount: NaN, infinities and amounts
// too large for subunits are reported by [MajorUnits.Convert].
func NewMajorUnits[C CurrencyCode](amount float64, curr C) MajorUnits[C] {
	return MajorUnits[C]{amount: amount, curr: curr}
}

// Amount returns the number of subunits.
func (s Subunits[C]) Amount() int64 {
	return s.amount
}

// Curr returns the currency of the amount.
func (s Subunits[C]) Curr() C {
	return s.curr
}

// Convert returns the amount expressed in major units, computed as
// the number of subunits divided by the [Currency.Factor] of the currency.
// Amounts larger than 2^53 in absolute value may be rounded, as float64 has
// a smaller precision than int64.
//
// Convert returns a [*ConversionError] wrapping [ErrCurrencyNotFound]
// if the currency has no factor.
func (s Subunits[C]) Convert() (MajorUnits[C], error) {
	f, err := FactorOf(s.curr)
	if err != nil {
		return MajorUnits[C]{}, err
	}
	return NewMajorUnits(float64(s.amount)/f, s.curr), nil
}

// RoundTrip converts the amount to major units and back.
// The result equals s for amounts up to 2^50 in absolute value;
// amounts close to the int64 boundaries may change or fail with [ErrRangeExceeded].
func (s Subunits[C]) RoundTrip() (Subunits[C], error) {
	m, err := s.Convert()
	if err != nil {
		return Subunits[C]{}, err
	}
	return m.Convert()
}

// Decimal returns the exact value of the amount in major units, that is
// the number of subunits scaled down by [Currency.Scale] digits.
// For example, 12345 subunits of US Dollars are returned as 123.45.
//
// Decimal returns a [*ConversionError] wrapping [ErrCurrencyNotFound]
// if the currency has no factor.
func (s Subunits[C]) Decimal() (decimal.Decimal, error) {
	if _, err := FactorOf(s.curr); err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.New(s.amount, s.curr.Curr().Scale())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting subunits: %w", err)
	}
	return d, nil
}

// String method implements the [fmt.Stringer] interface and returns
// the currency code followed by the exact amount in major units, such as
// "USD 0.01".
// Amounts in currencies without a factor are printed as a number of subunits.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Subunits[C]) String() string {
	code := s.curr.Curr().Code()
	d, err := s.Decimal()
	if err != nil {
		return code + " " + strconv.FormatInt(s.amount, 10)
	}
	return code + " " + d.String()
}

// Amount returns the number of major units.
func (m MajorUnits[C]) Amount() float64 {
	return m.amount
}

// Curr returns the currency of the amount.
func (m MajorUnits[C]) Curr() C {
	return m.curr
}

// Convert returns the amount expressed in subunits, computed as the number
// of major units multiplied by the [Currency.Factor] of the currency and
// rounded to the nearest integer, with halves rounded away from zero.
//
// Convert returns a [*ConversionError] wrapping:
//   - [ErrCurrencyNotFound] if the currency has no factor;
//   - [ErrRangeExceeded] if the scaled amount is NaN, infinite, or falls
//     outside of the range that an int64 can hold.
//     The check never saturates or wraps the result.
func (m MajorUnits[C]) Convert() (Subunits[C], error) {
	f, err := FactorOf(m.curr)
	if err != nil {
		return Subunits[C]{}, err
	}
	u, err := toSubunits(m.amount * f)
	if err != nil {
		return Subunits[C]{}, &ConversionError[C]{Curr: m.curr, Err: err}
	}
	return NewSubunits(u, m.curr), nil
}

// RoundTrip converts the amount to subunits and back.
// Fractions of a subunit are lost on the way.
func (m MajorUnits[C]) RoundTrip() (MajorUnits[C], error) {
	s, err := m.Convert()
	if err != nil {
		return MajorUnits[C]{}, err
	}
	return s.Convert()
}

// String method implements the [fmt.Stringer] interface and returns
// the currency code followed by the shortest decimal representation
// of the amount, such as "USD 0.01".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m MajorUnits[C]) String() string {
	return m.curr.Curr().Code() + " " + strconv.FormatFloat(m.amount, 'f', -1, 64)
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is encoded as an object with fields "amount" and "currency",
// where the currency is encoded by its own JSON representation.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (s Subunits[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(subunitsJSON[C]{Amount: s.amount, Currency: s.curr})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A JSON null leaves the amount unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (s *Subunits[C]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v subunitsJSON[C]
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", *s, err)
	}
	*s = NewSubunits(v.Amount, v.Currency)
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Subunits.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m MajorUnits[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(majorUnitsJSON[C]{Amount: m.amount, Currency: m.curr})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A JSON null leaves the amount unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *MajorUnits[C]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v majorUnitsJSON[C]
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", *m, err)
	}
	*m = NewMajorUnits(v.Amount, v.Currency)
	return nil
}

type subunitsJSON[C any] struct {
	Amount   int64 `json:"amount"`
	Currency C     `json:"currency"`
}

type majorUnitsJSON[C any] struct {
	Amount   float64 `json:"amount"`
	Currency C       `json:"currency"`
}
