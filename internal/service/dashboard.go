package service

import (
	"errors"
	"fmt"
	"time"

	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/finance"
	"brokerage-backoffice/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardService aggregates the ledger for the back-office widgets
type DashboardService struct {
	agentRepo       repository.AgentRepositoryInterface
	transactionRepo repository.TransactionRepositoryInterface
	shares          repository.RevenueShareRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	agentRepo repository.AgentRepositoryInterface,
	transactionRepo repository.TransactionRepositoryInterface,
	shares repository.RevenueShareRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		agentRepo:       agentRepo,
		transactionRepo: transactionRepo,
		shares:          shares,
	}
}

// CompanySummaryResponse represents the company-wide dashboard widget
type CompanySummaryResponse struct {
	TransactionCount    int64           `json:"transaction_count"`
	TotalCommission     decimal.Decimal `json:"total_commission"`
	CompanyGCI          decimal.Decimal `json:"company_gci"`
	RevenueSharePaidOut decimal.Decimal `json:"revenue_share_paid_out"`
}

// AgentSummaryResponse represents the per-agent dashboard widget
type AgentSummaryResponse struct {
	AgentID              uuid.UUID       `json:"agent_id"`
	TotalGCIYTD          decimal.Decimal `json:"total_gci_ytd"`
	RevenueShareReceived decimal.Decimal `json:"revenue_share_received"`
	RemainingAllowance   decimal.Decimal `json:"remaining_allowance"`
	WindowStart          string          `json:"window_start"`
	WindowEnd            string          `json:"window_end"`
	DownlineSize         int64           `json:"downline_size"`
}

// CompanySummary aggregates the whole ledger
func (s *DashboardService) CompanySummary() (*CompanySummaryResponse, error) {
	totals, err := s.transactionRepo.Totals()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}
	paidOut, err := s.shares.TotalPaid()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payouts: %w", err)
	}
	return &CompanySummaryResponse{
		TransactionCount:    totals.Count,
		TotalCommission:     totals.TotalCommission,
		CompanyGCI:          totals.CompanyGCI,
		RevenueSharePaidOut: paidOut,
	}, nil
}

// AgentSummary reports one agent's standing in their current anniversary year
func (s *DashboardService) AgentSummary(agentID uuid.UUID, ref time.Time) (*AgentSummaryResponse, error) {
	agent, err := s.agentRepo.GetByID(agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	start, end := AnniversaryWindow(agent.AnniversaryDate, ref)
	received, err := s.shares.SumForRecipientBetween(agentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum window payouts: %w", err)
	}
	remaining := finance.AnnualAllowance(agent).Sub(received)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	downline, err := s.agentRepo.CountBySponsorID(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count downline: %w", err)
	}

	return &AgentSummaryResponse{
		AgentID:              agentID,
		TotalGCIYTD:          agent.TotalGCIYTD,
		RevenueShareReceived: received,
		RemainingAllowance:   remaining,
		WindowStart:          start.Format("2006-01-02"),
		WindowEnd:            end.Format("2006-01-02"),
		DownlineSize:         downline,
	}, nil
}
