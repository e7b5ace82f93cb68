package risk

import "github.com/rustyeddy/riskmate/market"

type Inputs struct {
	Balance     float64 // account balance in USD
	RiskPercent float64 // 1 means 1% of balance
	Pair        market.PairSpec
	Entry       float64
	Stop        float64
}

type Calculation struct {
	Inputs

	RiskUSD           float64
	StopDistancePrice float64
	StopPips          float64
	Lots              float64

	Targets
}

// Calculate sizes the position and projects the R-multiple targets.
// Every call is independent; nothing is retained between calls.
func Calculate(in Inputs) Calculation {
	c := Calculation{Inputs: in}

	c.RiskUSD = RiskAmount(in.Balance, in.RiskPercent)
	c.StopDistancePrice = StopDistance(in.Entry, in.Stop)
	c.StopPips = StopPips(c.StopDistancePrice, in.Pair.PipSize)
	c.Lots = LotSize(c.RiskUSD, c.StopPips, in.Pair.PipValuePerLot)
	c.Targets = ProjectTargets(in.Entry, in.Stop)

	return c
}

// RewardRisk is the reward to risk ratio of takeProfit against the stop.
func RewardRisk(entry, stop, takeProfit float64) float64 {
	risk := abs(entry - stop)
	reward := abs(takeProfit - entry)
	if risk == 0 {
		return 0
	}
	return reward / risk
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
