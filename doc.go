/*
Package subunit converts monetary amounts between two representations:
an exact integer number of a currency's smallest units (cents, fils, yen)
and an approximate floating-point number of its major units (dollars, dinars, yen).

Integers are what amounts should be stored and transmitted as, since they
are safe for exact arithmetic. Floats are what many display and computation
layers expect. This package moves a single amount between the two, in the
same currency, and reports every conversion it cannot perform exactly as
an error instead of silently truncating or wrapping.

# Features

  - Immutable amounts, safe for concurrent use by multiple goroutines
  - Caller-defined currency types through the [CurrencyCode] constraint
  - A read-only factor table covering zero-, two- and three-decimal currencies
  - Overflow-checked conversion from floats to int64 subunits

# Representation

An amount is a pair of a number and a currency.
[Subunits] holds an int64 number of subunits and [MajorUnits] holds
a float64 number of major units.
Both are parameterized by the currency type C, which can be the [Currency]
enumeration of this package or any comparable type of the caller that
implements the method Curr() Currency:

	type Wallet uint8

	const (
		Rupee Wallet = iota
		Dollar
	)

	func (w Wallet) Curr() subunit.Currency {
		switch w {
		case Rupee:
			return subunit.INR
		case Dollar:
			return subunit.USD
		}
		return subunit.XXX
	}

# Factors

The factor of a currency is the number of subunits in one of its major units:
1 for currencies without a minor unit (JPY), 100 for most currencies (USD, INR),
and 1000 for currencies with a thousandth minor unit (KWD).
Factors are built once during package initialization and never modified.

# Conversions

[Subunits.Convert] divides the amount by the factor and fails only when the
currency has no factor.
[MajorUnits.Convert] multiplies the amount by the factor, rounds the result
to the nearest integer, and fails when the result does not fit into an int64.
Round trips are exact for amounts up to 2^50 subunits in absolute value;
closer to the int64 boundaries float64 precision becomes insufficient and
amounts may change or fail to convert back.

# Errors

Conversions return a [*ConversionError] that wraps either
[ErrCurrencyNotFound] or [ErrRangeExceeded] and carries the currency of the
amount. The package never panics on conversion.
*/
package subunit
