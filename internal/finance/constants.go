// Package finance holds the fixed business parameters of the commission
// plan and the pure computations over them. Nothing here touches storage.
package finance

import "github.com/shopspring/decimal"

// Fixed plan parameters. These come from the signed commission plan document
// and are not runtime-tunable.
var (
	// CompanyGCIRate is the brokerage's baseline retention on every closing.
	CompanyGCIRate = decimal.NewFromFloat(0.15)

	// PrincipalSponsorRate is paid per tier when the closer is a principal.
	// Flat at every tier; the plan deliberately does not decay per level.
	PrincipalSponsorRate = decimal.NewFromFloat(0.125)

	// SupportSponsorRate is paid per tier when the closer is a support agent.
	SupportSponsorRate = decimal.NewFromFloat(0.02)

	// ComplianceFee is a fixed pass-through, never part of GCI math.
	ComplianceFee = decimal.NewFromInt(500)

	// Annual revenue-share allowances per recipient.
	PrincipalStandardCap = decimal.NewFromInt(2000)
	PrincipalTeamCap     = decimal.NewFromInt(1000)
	SupportCap           = decimal.NewFromInt(2000)

	// PrincipalSplitPercent is the flat commission percentage for principal
	// closers on self-generated leads.
	PrincipalSplitPercent = decimal.NewFromInt(80)

	// Company-provided-lead percentages, split on career sales experience.
	CompanyLeadNewPercent         = decimal.NewFromInt(30)
	CompanyLeadExperiencedPercent = decimal.NewFromInt(40)

	oneHundred = decimal.NewFromInt(100)
)

const (
	// MaxSponsorDepth is how far up the sponsor chain payouts reach.
	MaxSponsorDepth = 5

	// NewAgentSalesThreshold separates new from experienced agents for
	// company-provided leads.
	NewAgentSalesThreshold = 3
)
