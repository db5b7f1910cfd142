package finance

import (
	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"

	"github.com/shopspring/decimal"
)

// SplitInput carries everything the splitter needs to know about a closing.
type SplitInput struct {
	SaleAmount               decimal.Decimal
	CommissionPercentage     decimal.Decimal
	AgentType                models.AgentType
	AgentCumulativeGCI       decimal.Decimal
	CareerSalesCount         int
	IsCompanyLead            bool
	ComplianceFeePaidByAgent bool
}

// CommissionBreakdown is the result of splitting one closing's commission.
type CommissionBreakdown struct {
	TotalCommission       decimal.Decimal
	CompanyGCI            decimal.Decimal
	AgentCommissionAmount decimal.Decimal
	AgentPercentage       decimal.Decimal
}

// SplitCommission computes the agent-vs-company split for a transaction.
// When the client pays the compliance fee it is added to the total before
// splitting as a pass-through; when the agent pays it, it comes out of the
// agent's side, clamped at zero.
func SplitCommission(in SplitInput) (*CommissionBreakdown, error) {
	if in.SaleAmount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.ErrInvalidSaleAmount
	}
	if in.CommissionPercentage.LessThanOrEqual(decimal.Zero) || in.CommissionPercentage.GreaterThan(oneHundred) {
		return nil, apperrors.ErrInvalidCommissionPercentage
	}

	total := in.SaleAmount.Mul(in.CommissionPercentage).Div(oneHundred).Round(2)
	if !in.ComplianceFeePaidByAgent {
		total = total.Add(ComplianceFee)
	}

	agentPercent := agentPercentage(in)

	companyGCI := total.Mul(CompanyGCIRate).Round(2)
	agentAmount := total.Mul(agentPercent).Div(oneHundred).Round(2)
	if in.ComplianceFeePaidByAgent {
		agentAmount = agentAmount.Sub(ComplianceFee)
		if agentAmount.IsNegative() {
			agentAmount = decimal.Zero
		}
	}

	return &CommissionBreakdown{
		TotalCommission:       total,
		CompanyGCI:            companyGCI,
		AgentCommissionAmount: agentAmount,
		AgentPercentage:       agentPercent,
	}, nil
}

// agentPercentage picks the closer's commission percentage.
func agentPercentage(in SplitInput) decimal.Decimal {
	if in.IsCompanyLead {
		if in.CareerSalesCount < NewAgentSalesThreshold {
			return CompanyLeadNewPercent
		}
		return CompanyLeadExperiencedPercent
	}
	if in.AgentType == models.AgentTypeSupport {
		return SupportTierFor(in.AgentCumulativeGCI).Percent
	}
	return PrincipalSplitPercent
}

// SponsorRateFor returns the flat per-tier revenue share rate keyed by the
// CLOSING agent's type, not the recipient's.
func SponsorRateFor(closerType models.AgentType) decimal.Decimal {
	if closerType == models.AgentTypeSupport {
		return SupportSponsorRate
	}
	return PrincipalSponsorRate
}

// AnnualAllowance returns a recipient's yearly revenue-share ceiling.
// Support agents are always on the flat cap; only principal agents on a
// team cap get the reduced ceiling.
func AnnualAllowance(recipient *models.Agent) decimal.Decimal {
	if recipient.AgentType == models.AgentTypeSupport {
		return SupportCap
	}
	if recipient.EffectiveCapType() == models.CapTypeTeam {
		return PrincipalTeamCap
	}
	return PrincipalStandardCap
}
