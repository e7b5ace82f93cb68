// market/pairs.go
package market

import "strings"

// PairSpec describes how one instrument is priced for position sizing.
type PairSpec struct {
	Symbol         string  `json:"symbol" yaml:"symbol"`
	PipSize        float64 `json:"pip_size" yaml:"pip_size"`                   // price change for 1 pip
	PipValuePerLot float64 `json:"pip_value_per_lot" yaml:"pip_value_per_lot"` // USD per pip for 1.00 lot
}

// Usable reports whether both numeric fields are strictly positive.
func (p PairSpec) Usable() bool {
	return p.PipSize > 0 && p.PipValuePerLot > 0
}

// Simplified specs, good enough for a calculator. Real pip values depend
// on the quote currency and the broker.
var pairs = []PairSpec{
	{Symbol: "EURUSD", PipSize: 0.0001, PipValuePerLot: 10.0},
	{Symbol: "GBPUSD", PipSize: 0.0001, PipValuePerLot: 10.0},
	{Symbol: "AUDUSD", PipSize: 0.0001, PipValuePerLot: 10.0},
	{Symbol: "USDCHF", PipSize: 0.0001, PipValuePerLot: 10.0},
	{Symbol: "USDCAD", PipSize: 0.0001, PipValuePerLot: 10.0},

	// JPY pairs quote to two decimals.
	{Symbol: "USDJPY", PipSize: 0.01, PipValuePerLot: 10.0},
	{Symbol: "EURJPY", PipSize: 0.01, PipValuePerLot: 10.0},

	// Gold: 0.10 of price is one pip, $1 per pip per lot.
	{Symbol: "XAUUSD", PipSize: 0.10, PipValuePerLot: 1.0},
}

var catalog = func() map[string]PairSpec {
	m := make(map[string]PairSpec, len(pairs))
	for _, p := range pairs {
		m[p.Symbol] = p
	}
	return m
}()

// Normalize returns the catalog key form of a symbol.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Lookup returns the catalog spec for symbol, case-insensitively.
// The boolean is false when the pair is not in the catalog.
func Lookup(symbol string) (PairSpec, bool) {
	p, ok := catalog[Normalize(symbol)]
	return p, ok
}

// Symbols returns the catalog symbols in declaration order.
func Symbols() []string {
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, p.Symbol)
	}
	return out
}

// Manual builds a spec from user supplied values. Nothing is validated
// here; a non-positive value yields a zero lot size downstream.
func Manual(symbol string, pipSize, pipValuePerLot float64) PairSpec {
	return PairSpec{
		Symbol:         symbol,
		PipSize:        pipSize,
		PipValuePerLot: pipValuePerLot,
	}
}

// ManualFunc supplies pip size and pip value for a pair missing from the catalog.
type ManualFunc func(symbol string) (pipSize, pipValuePerLot float64, err error)

// Resolve looks symbol up in the catalog and falls back to manual entry
// when it is unknown. The returned bool is true when the catalog matched.
func Resolve(symbol string, manual ManualFunc) (PairSpec, bool, error) {
	if p, ok := Lookup(symbol); ok {
		return p, true, nil
	}

	pipSize, pipValue, err := manual(symbol)
	if err != nil {
		return PairSpec{}, false, err
	}
	return Manual(symbol, pipSize, pipValue), false, nil
}
