package finance

import "github.com/shopspring/decimal"

// SupportTier is one band of the support-agent commission table. Bounds are
// half-open [Min, Max); the last band has no upper bound.
type SupportTier struct {
	Tier    int
	Min     decimal.Decimal
	Max     *decimal.Decimal
	Percent decimal.Decimal
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
func dp(v int64) *decimal.Decimal {
	dv := decimal.NewFromInt(v)
	return &dv
}

// SupportTiers is the 9-band table keyed by cumulative GCI.
var SupportTiers = []SupportTier{
	{Tier: 1, Min: d(0), Max: dp(40000), Percent: d(50)},
	{Tier: 2, Min: d(40000), Max: dp(80000), Percent: d(60)},
	{Tier: 3, Min: d(80000), Max: dp(150000), Percent: d(70)},
	{Tier: 4, Min: d(150000), Max: dp(225000), Percent: d(75)},
	{Tier: 5, Min: d(225000), Max: dp(310000), Percent: d(80)},
	{Tier: 6, Min: d(310000), Max: dp(400000), Percent: d(84)},
	{Tier: 7, Min: d(400000), Max: dp(500000), Percent: d(88)},
	{Tier: 8, Min: d(500000), Max: dp(650000), Percent: d(90)},
	{Tier: 9, Min: d(650000), Max: nil, Percent: d(92)},
}

// SupportTierFor returns the band a support agent with the given cumulative
// GCI falls into. A GCI exactly on a boundary lands in the higher band.
func SupportTierFor(cumulativeGCI decimal.Decimal) SupportTier {
	for _, t := range SupportTiers {
		if t.Max == nil {
			return t
		}
		if cumulativeGCI.GreaterThanOrEqual(t.Min) && cumulativeGCI.LessThan(*t.Max) {
			return t
		}
	}
	// Negative GCI cannot occur, but fall back to the first band rather
	// than panic on corrupt data.
	return SupportTiers[0]
}
