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

// RevenueShareQueryService serves read-only views over the payout ledger
type RevenueShareQueryService struct {
	shares    repository.RevenueShareRepositoryInterface
	agentRepo repository.AgentRepositoryInterface
	caps      *CapTracker
}

// NewRevenueShareQueryService creates a new revenue share query service
func NewRevenueShareQueryService(shares repository.RevenueShareRepositoryInterface, agentRepo repository.AgentRepositoryInterface) *RevenueShareQueryService {
	return &RevenueShareQueryService{
		shares:    shares,
		agentRepo: agentRepo,
		caps:      NewCapTracker(shares),
	}
}

// RecipientSummary describes a recipient's standing in the anniversary year
// containing the reference date.
type RecipientSummary struct {
	RecipientAgentID uuid.UUID       `json:"recipient_agent_id"`
	WindowStart      string          `json:"window_start"`
	WindowEnd        string          `json:"window_end"`
	AlreadyPaid      decimal.Decimal `json:"already_paid"`
	Allowance        decimal.Decimal `json:"allowance"`
	Remaining        decimal.Decimal `json:"remaining"`
}

// RecipientSharesResponse pairs a recipient's line items with their cap standing
type RecipientSharesResponse struct {
	Summary  RecipientSummary   `json:"summary"`
	Shares   []RevenueShareItem `json:"shares"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// GetByTransaction lists the line items one transaction generated
func (s *RevenueShareQueryService) GetByTransaction(transactionID uuid.UUID) ([]RevenueShareItem, error) {
	items, err := s.shares.GetByTransaction(transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}
	out := make([]RevenueShareItem, len(items))
	for i, item := range items {
		out[i] = RevenueShareItem{
			ID:               item.ID,
			TransactionID:    item.TransactionID,
			SourceAgentID:    item.SourceAgentID,
			RecipientAgentID: item.RecipientAgentID,
			Tier:             item.Tier,
			Amount:           item.Amount,
			CreatedAt:        item.CreatedAt.Format(time.RFC3339),
		}
	}
	return out, nil
}

// GetByRecipient lists what an agent has been paid, with their current
// anniversary-year cap standing as of the reference date.
func (s *RevenueShareQueryService) GetByRecipient(recipientID uuid.UUID, ref time.Time, page, pageSize int) (*RecipientSharesResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	recipient, err := s.agentRepo.GetByID(recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	items, total, err := s.shares.GetByRecipient(recipientID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}

	start, end := AnniversaryWindow(recipient.AnniversaryDate, ref)
	alreadyPaid, err := s.shares.SumForRecipientBetween(recipientID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum window payouts: %w", err)
	}
	allowance := finance.AnnualAllowance(recipient)
	remaining := allowance.Sub(alreadyPaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	resp := &RecipientSharesResponse{
		Summary: RecipientSummary{
			RecipientAgentID: recipientID,
			WindowStart:      start.Format("2006-01-02"),
			WindowEnd:        end.Format("2006-01-02"),
			AlreadyPaid:      alreadyPaid,
			Allowance:        allowance,
			Remaining:        remaining,
		},
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, item := range items {
		resp.Shares = append(resp.Shares, RevenueShareItem{
			ID:               item.ID,
			TransactionID:    item.TransactionID,
			SourceAgentID:    item.SourceAgentID,
			RecipientAgentID: item.RecipientAgentID,
			Tier:             item.Tier,
			Amount:           item.Amount,
			CreatedAt:        item.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}
