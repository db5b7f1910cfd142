package finance_test

import (
	"testing"

	"brokerage-backoffice/internal/finance"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSupportTierFor(t *testing.T) {
	testCases := []struct {
		gci          string
		expectedTier int
		expectedPct  int64
	}{
		{"0", 1, 50},
		{"39999.99", 1, 50},
		{"40000", 2, 60},
		{"79999.99", 2, 60},
		{"80000", 3, 70},
		{"150000", 4, 75},
		{"225000", 5, 80},
		{"310000", 6, 84},
		{"400000", 7, 88},
		{"500000", 8, 90},
		{"649999.99", 8, 90},
		{"650000", 9, 92},
		{"2000000", 9, 92},
	}

	for _, tc := range testCases {
		tier := finance.SupportTierFor(decimal.RequireFromString(tc.gci))
		assert.Equal(t, tc.expectedTier, tier.Tier, "gci %s", tc.gci)
		assert.True(t, tier.Percent.Equal(decimal.NewFromInt(tc.expectedPct)), "gci %s: got %s", tc.gci, tier.Percent)
	}
}
