package subunit

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a canonical currency identifier, the key of the
// factor table.
// The zero value is [XXX], which indicates the absence of a currency and
// has no factor.
//
// Currency is implemented as an integer index into in-memory arrays that
// store properties defined by [ISO 4217], such as code and numeric code.
// Values are never modified after package initialization, so a Currency
// can be shared by multiple goroutines without synchronization.
//
// When persisting a currency value, use the alphabetic code returned by
// the [Currency.Code] method, rather than the integer index, as mapping between
// index and a particular currency may change in future versions.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

var errUnknownCurrency = errors.New("unknown currency")

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error if the string does not represent a known currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, fmt.Errorf("parsing %q: %w", curr, errUnknownCurrency)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

func (c Currency) known() bool {
	return int(c) < len(codeLookup)
}

// Curr returns the currency itself.
// It makes Currency satisfy the [CurrencyCode] constraint, so that values
// such as Subunits[Currency] can be used without a caller-defined type.
func (c Currency) Curr() Currency {
	return c
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
// Integers outside of the enumeration are reported as "XXX".
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	if !c.known() {
		return codeLookup[XXX]
	}
	return codeLookup[c]
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	if !c.known() {
		return numLookup[XXX]
	}
	return numLookup[c]
}

// String method implements the [fmt.Stringer] interface and returns
// the alphabetic code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Factor returns the number of subunits in one major unit of the currency:
//   - 1 for currencies without a minor unit, such as the [Japanese Yen];
//   - 100 for currencies with a hundredth minor unit, such as the [US Dollar];
//   - 1000 for currencies with a thousandth minor unit, such as the [Kuwaiti Dinar].
//
// Factor returns 0 if the currency is not present in the factor table.
// See also function [FactorOf].
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Kuwaiti Dinar]: https://en.wikipedia.org/wiki/Kuwaiti_dinar
func (c Currency) Factor() int64 {
	if !c.known() {
		return 0
	}
	return factorLookup[c]
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of the currency, that is 0, 2, or 3.
// Currencies without a factor have a scale of 0.
func (c Currency) Scale() int {
	switch c.Factor() {
	case 100:
		return 2
	case 1000:
		return 3
	}
	return 0
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A JSON null leaves the currency unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return fmt.Errorf("unmarshaling %T: currency must be a JSON string", XXX)
	}
	return c.UnmarshalText(text[1 : len(text)-1])
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values", XXX)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, XXX, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}
