// Package report turns a risk calculation into what the user sees.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"

	"github.com/rustyeddy/riskmate/risk"
	"github.com/shopspring/decimal"
)

// PricePlaces is the number of decimals used to show prices of a pair:
// 5 for pips finer than 0.01, otherwise 2.
func PricePlaces(pipSize float64) int32 {
	if pipSize < 0.01 {
		return 5
	}
	return 2
}

type Target struct {
	Multiple   int     `json:"multiple"`
	Price      float64 `json:"price"`
	RewardRisk float64 `json:"reward_risk"`
}

// Result is the presentation view of a calculation.
type Result struct {
	Pair      string         `json:"pair"`
	Direction risk.Direction `json:"direction"`
	RiskUSD   float64        `json:"risk_usd"`
	StopPips  float64        `json:"stop_pips"`
	Lots      float64        `json:"lots"`
	R1        float64        `json:"r1"`
	R2        float64        `json:"r2"`
	R3        float64        `json:"r3"`
	Targets   []Target       `json:"targets"`

	// PricePlaces is derived from the pair's pip size.
	PricePlaces int32 `json:"price_places"`
}

func FromCalculation(c risk.Calculation) Result {
	r := Result{
		Pair:        c.Pair.Symbol,
		Direction:   c.Direction,
		RiskUSD:     c.RiskUSD,
		StopPips:    c.StopPips,
		Lots:        c.Lots,
		R1:          c.R1,
		R2:          c.R2,
		R3:          c.R3,
		PricePlaces: PricePlaces(c.Pair.PipSize),
	}
	for k, px := range []float64{c.R1, c.R2, c.R3} {
		r.Targets = append(r.Targets, Target{
			Multiple:   k + 1,
			Price:      px,
			RewardRisk: risk.RewardRisk(c.Entry, c.Stop, px),
		})
	}
	return r
}

// ErrNonFinite reports a result holding an infinite or NaN value, which
// JSON cannot carry.
var ErrNonFinite = errors.New("result is not finite")

// exact returns the decimal holding exactly the binary value of x.
// x must be finite.
func exact(x float64) decimal.Decimal {
	frac, exp := math.Frexp(x)
	m := big.NewInt(int64(frac * (1 << 53)))
	shift := exp - 53
	if shift >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(shift)), 0)
	}
	k := int64(-shift)
	m.Mul(m, new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil))
	return decimal.NewFromBigInt(m, int32(-k))
}

// fixed formats x with the given decimals, rounding the exact binary
// value half to even. Infinities and NaN print as inf, -inf and nan.
func fixed(x float64, places int32) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	return exact(x).RoundBank(places).StringFixed(places)
}

func finite(r Result) bool {
	vals := []float64{r.RiskUSD, r.StopPips, r.Lots, r.R1, r.R2, r.R3}
	for _, t := range r.Targets {
		vals = append(vals, t.Price, t.RewardRisk)
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Text writes the human readable result block.
func Text(w io.Writer, r Result) error {
	lines := []string{
		"",
		"--- Result ---",
		"Pair: " + r.Pair,
		"Direction: " + r.Direction.String(),
		"Risk Amount: $" + fixed(r.RiskUSD, 2),
		"Stop Distance: " + fixed(r.StopPips, 1) + " pips",
		"Suggested Lot Size: " + fixed(r.Lots, 3) + " lots",
		"",
		"TP levels (R-multiple):",
	}
	for _, t := range r.Targets {
		lines = append(lines, fmt.Sprintf("  %dR: %s", t.Multiple, fixed(t.Price, r.PricePlaces)))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the result as indented JSON. A result with infinite or NaN
// values fails with ErrNonFinite and writes nothing.
func JSON(w io.Writer, r Result) error {
	if !finite(r) {
		return fmt.Errorf("%s: %w", r.Pair, ErrNonFinite)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
