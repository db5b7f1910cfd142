package finance_test

import (
	"testing"

	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/finance"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommission(t *testing.T) {
	testCases := []struct {
		name          string
		input         finance.SplitInput
		expectedTotal string
		expectedGCI   string
		expectedAgent string
		expectedPct   string
	}{
		{
			name: "Principal self-generated lead, agent pays compliance fee",
			input: finance.SplitInput{
				SaleAmount:               decimal.NewFromInt(500000),
				CommissionPercentage:     decimal.NewFromInt(3),
				AgentType:                models.AgentTypePrincipal,
				CareerSalesCount:         10,
				ComplianceFeePaidByAgent: true,
			},
			expectedTotal: "15000",
			expectedGCI:   "2250",
			expectedAgent: "11500",
			expectedPct:   "80",
		},
		{
			name: "Client pays compliance fee, added to total as pass-through",
			input: finance.SplitInput{
				SaleAmount:               decimal.NewFromInt(500000),
				CommissionPercentage:     decimal.NewFromInt(3),
				AgentType:                models.AgentTypePrincipal,
				CareerSalesCount:         10,
				ComplianceFeePaidByAgent: false,
			},
			expectedTotal: "15500",
			expectedGCI:   "2325",
			expectedAgent: "12400",
			expectedPct:   "80",
		},
		{
			name: "Company lead with fewer than three career sales",
			input: finance.SplitInput{
				SaleAmount:               decimal.NewFromInt(500000),
				CommissionPercentage:     decimal.NewFromInt(3),
				AgentType:                models.AgentTypePrincipal,
				CareerSalesCount:         2,
				IsCompanyLead:            true,
				ComplianceFeePaidByAgent: true,
			},
			expectedTotal: "15000",
			expectedGCI:   "2250",
			expectedAgent: "4000",
			expectedPct:   "30",
		},
		{
			name: "Company lead at exactly three career sales uses experienced rate",
			input: finance.SplitInput{
				SaleAmount:               decimal.NewFromInt(500000),
				CommissionPercentage:     decimal.NewFromInt(3),
				AgentType:                models.AgentTypePrincipal,
				CareerSalesCount:         3,
				IsCompanyLead:            true,
				ComplianceFeePaidByAgent: true,
			},
			expectedTotal: "15000",
			expectedGCI:   "2250",
			expectedAgent: "5500",
			expectedPct:   "40",
		},
		{
			name: "Support agent at exactly 40k cumulative GCI lands in the 60 percent band",
			input: finance.SplitInput{
				SaleAmount:               decimal.NewFromInt(200000),
				CommissionPercentage:     decimal.NewFromInt(3),
				AgentType:                models.AgentTypeSupport,
				AgentCumulativeGCI:       decimal.NewFromInt(40000),
				CareerSalesCount:         10,
				ComplianceFeePaidByAgent: true,
			},
			expectedTotal: "6000",
			expectedGCI:   "900",
			expectedAgent: "3100",
			expectedPct:   "60",
		},
		{
			name: "Support agent below 40k stays in the 50 percent band",
			input: finance.SplitInput{
				SaleAmount:               decimal.NewFromInt(200000),
				CommissionPercentage:     decimal.NewFromInt(3),
				AgentType:                models.AgentTypeSupport,
				AgentCumulativeGCI:       decimal.NewFromFloat(39999.99),
				CareerSalesCount:         10,
				ComplianceFeePaidByAgent: true,
			},
			expectedTotal: "6000",
			expectedGCI:   "900",
			expectedAgent: "2500",
			expectedPct:   "50",
		},
		{
			name: "Agent share clamped at zero when fee exceeds the commission",
			input: finance.SplitInput{
				SaleAmount:               decimal.NewFromInt(1000),
				CommissionPercentage:     decimal.NewFromInt(1),
				AgentType:                models.AgentTypePrincipal,
				CareerSalesCount:         10,
				ComplianceFeePaidByAgent: true,
			},
			expectedTotal: "10",
			expectedGCI:   "1.5",
			expectedAgent: "0",
			expectedPct:   "80",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			breakdown, err := finance.SplitCommission(tc.input)
			require.NoError(t, err)

			assert.True(t, breakdown.TotalCommission.Equal(decimal.RequireFromString(tc.expectedTotal)),
				"total: got %s, want %s", breakdown.TotalCommission, tc.expectedTotal)
			assert.True(t, breakdown.CompanyGCI.Equal(decimal.RequireFromString(tc.expectedGCI)),
				"company GCI: got %s, want %s", breakdown.CompanyGCI, tc.expectedGCI)
			assert.True(t, breakdown.AgentCommissionAmount.Equal(decimal.RequireFromString(tc.expectedAgent)),
				"agent amount: got %s, want %s", breakdown.AgentCommissionAmount, tc.expectedAgent)
			assert.True(t, breakdown.AgentPercentage.Equal(decimal.RequireFromString(tc.expectedPct)),
				"agent percent: got %s, want %s", breakdown.AgentPercentage, tc.expectedPct)
		})
	}
}

func TestSplitCommissionValidation(t *testing.T) {
	t.Run("Zero sale amount", func(t *testing.T) {
		_, err := finance.SplitCommission(finance.SplitInput{
			SaleAmount:           decimal.Zero,
			CommissionPercentage: decimal.NewFromInt(3),
			AgentType:            models.AgentTypePrincipal,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidSaleAmount)
	})

	t.Run("Negative sale amount", func(t *testing.T) {
		_, err := finance.SplitCommission(finance.SplitInput{
			SaleAmount:           decimal.NewFromInt(-1),
			CommissionPercentage: decimal.NewFromInt(3),
			AgentType:            models.AgentTypePrincipal,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidSaleAmount)
	})

	t.Run("Zero commission percentage", func(t *testing.T) {
		_, err := finance.SplitCommission(finance.SplitInput{
			SaleAmount:           decimal.NewFromInt(500000),
			CommissionPercentage: decimal.Zero,
			AgentType:            models.AgentTypePrincipal,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCommissionPercentage)
	})

	t.Run("Commission percentage above one hundred", func(t *testing.T) {
		_, err := finance.SplitCommission(finance.SplitInput{
			SaleAmount:           decimal.NewFromInt(500000),
			CommissionPercentage: decimal.NewFromInt(101),
			AgentType:            models.AgentTypePrincipal,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCommissionPercentage)
	})
}

func TestSponsorRateFor(t *testing.T) {
	assert.True(t, finance.SponsorRateFor(models.AgentTypePrincipal).Equal(decimal.NewFromFloat(0.125)))
	assert.True(t, finance.SponsorRateFor(models.AgentTypeSupport).Equal(decimal.NewFromFloat(0.02)))
}

func TestAnnualAllowance(t *testing.T) {
	team := models.CapTypeTeam
	standard := models.CapTypeStandard

	testCases := []struct {
		name     string
		agent    models.Agent
		expected string
	}{
		{
			name:     "Principal on standard cap",
			agent:    models.Agent{AgentType: models.AgentTypePrincipal, CapType: &standard},
			expected: "2000",
		},
		{
			name:     "Principal with no cap type defaults to standard",
			agent:    models.Agent{AgentType: models.AgentTypePrincipal},
			expected: "2000",
		},
		{
			name:     "Principal on team cap",
			agent:    models.Agent{AgentType: models.AgentTypePrincipal, CapType: &team},
			expected: "1000",
		},
		{
			name:     "Support agent keeps flat cap even with team cap stored",
			agent:    models.Agent{AgentType: models.AgentTypeSupport, CapType: &team},
			expected: "2000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			allowance := finance.AnnualAllowance(&tc.agent)
			assert.True(t, allowance.Equal(decimal.RequireFromString(tc.expected)),
				"got %s, want %s", allowance, tc.expected)
		})
	}
}
