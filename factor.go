package subunit

// CurrencyCode is the capability required from a caller-defined currency
// type: it names the canonical [Currency] used as the factor table key.
// Implementations are usually small enumerations, copied by value.
//
// A caller type that has no matching canonical currency should return [XXX],
// which makes every conversion fail with [ErrCurrencyNotFound].
type CurrencyCode interface {
	comparable
	Curr() Currency
}

// factorLookup holds the number of subunits per major unit for each currency.
// Currencies absent from all factor classes hold 0.
// The classes are disjoint by curation of the generated data.
var factorLookup = newFactorTable()

func newFactorTable() [len(codeLookup)]int64 {
	var t [len(codeLookup)]int64
	for _, c := range zeroDecimal {
		t[c] = 1
	}
	for _, c := range twoDecimal {
		t[c] = 100
	}
	for _, c := range threeDecimal {
		t[c] = 1000
	}
	return t
}

// FactorOf returns the number of subunits in one major unit of currency curr,
// widened to a float64 multiplier.
// See also method [Currency.Factor].
//
// FactorOf returns a [*ConversionError] wrapping [ErrCurrencyNotFound]
// if the canonical currency of curr has no factor.
func FactorOf[C CurrencyCode](curr C) (float64, error) {
	f := curr.Curr().Factor()
	if f == 0 {
		return 0, &ConversionError[C]{Curr: curr, Err: ErrCurrencyNotFound}
	}
	return float64(f), nil
}
