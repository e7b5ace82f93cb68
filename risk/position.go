package risk

import "math"

// LotSize returns the lot count that loses riskUSD if the stop is hit:
//
//	risk = stopPips * pipValuePerLot * lots
//
// A non-positive stop distance or pip value makes sizing undefined and
// yields exactly 0.
func LotSize(riskUSD, stopPips, pipValuePerLot float64) float64 {
	if stopPips <= 0 || pipValuePerLot <= 0 {
		return 0.0
	}
	return riskUSD / (stopPips * pipValuePerLot)
}

// RiskAmount converts a percentage of balance (1 means 1%) to dollars.
func RiskAmount(balance, riskPercent float64) float64 {
	return balance * (riskPercent / 100.0)
}

// StopDistance is the absolute price distance between entry and stop.
func StopDistance(entry, stop float64) float64 {
	return math.Abs(entry - stop)
}

// StopPips expresses a price distance in pips. A zero pip size returns 0
// so LotSize treats the trade as unsized; a negative one divides as usual.
func StopPips(distance, pipSize float64) float64 {
	if pipSize == 0 {
		return 0
	}
	return distance / pipSize
}
