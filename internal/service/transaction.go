package service

import (
	"errors"
	"fmt"
	"time"

	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/finance"
	"brokerage-backoffice/internal/logger"
	"brokerage-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxTxRetries bounds the serialization-failure retry loop around one
// ledger write. Beyond this the conflict is surfaced to the caller.
const maxTxRetries = 3

// TransactionService handles business logic for closed transactions. Every
// mutation recomputes the dependent revenue share set inside the same SQL
// transaction; no half-written line item set is ever visible.
type TransactionService struct {
	db        *gorm.DB
	repo      repository.TransactionRepositoryInterface
	agentRepo repository.AgentRepositoryInterface
	shareRepo repository.RevenueShareRepositoryInterface
	engine    *RevenueShareEngine
	audit     *AuditService
	webhooks  *WebhookDispatcher
	validator *validator.Validate
	log       *logger.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	db *gorm.DB,
	repo repository.TransactionRepositoryInterface,
	agentRepo repository.AgentRepositoryInterface,
	shareRepo repository.RevenueShareRepositoryInterface,
	engine *RevenueShareEngine,
	audit *AuditService,
	webhooks *WebhookDispatcher,
	validator *validator.Validate,
) *TransactionService {
	return &TransactionService{
		db:        db,
		repo:      repo,
		agentRepo: agentRepo,
		shareRepo: shareRepo,
		engine:    engine,
		audit:     audit,
		webhooks:  webhooks,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateTransactionRequest represents the request to create a transaction
type CreateTransactionRequest struct {
	AgentID                  uuid.UUID       `json:"agent_id" validate:"required"`
	PropertyAddress          string          `json:"property_address" validate:"required,max=255"`
	SaleAmount               decimal.Decimal `json:"sale_amount"`
	CommissionPercentage     decimal.Decimal `json:"commission_percentage"`
	IsCompanyLead            bool            `json:"is_company_lead"`
	ComplianceFeePaidByAgent *bool           `json:"compliance_fee_paid_by_agent,omitempty"`
	TransactionDate          time.Time       `json:"transaction_date" validate:"required"`
}

// UpdateTransactionRequest represents the request to update a transaction
type UpdateTransactionRequest struct {
	AgentID                  *uuid.UUID       `json:"agent_id,omitempty"`
	PropertyAddress          *string          `json:"property_address,omitempty" validate:"omitempty,max=255"`
	SaleAmount               *decimal.Decimal `json:"sale_amount,omitempty"`
	CommissionPercentage     *decimal.Decimal `json:"commission_percentage,omitempty"`
	IsCompanyLead            *bool            `json:"is_company_lead,omitempty"`
	ComplianceFeePaidByAgent *bool            `json:"compliance_fee_paid_by_agent,omitempty"`
	TransactionDate          *time.Time       `json:"transaction_date,omitempty"`
}

// RevenueShareItem represents one payout line item in API responses
type RevenueShareItem struct {
	ID               uuid.UUID       `json:"id"`
	TransactionID    uuid.UUID       `json:"transaction_id"`
	SourceAgentID    uuid.UUID       `json:"source_agent_id"`
	RecipientAgentID uuid.UUID       `json:"recipient_agent_id"`
	Tier             int             `json:"tier"`
	Amount           decimal.Decimal `json:"amount"`
	CreatedAt        string          `json:"created_at"`
}

// TransactionResponse represents the response for transaction operations
type TransactionResponse struct {
	ID                       uuid.UUID          `json:"id"`
	AgentID                  uuid.UUID          `json:"agent_id"`
	PropertyAddress          string             `json:"property_address"`
	SaleAmount               decimal.Decimal    `json:"sale_amount"`
	CommissionPercentage     decimal.Decimal    `json:"commission_percentage"`
	IsCompanyLead            bool               `json:"is_company_lead"`
	ComplianceFeePaidByAgent bool               `json:"compliance_fee_paid_by_agent"`
	TransactionDate          string             `json:"transaction_date"`
	TotalCommission          decimal.Decimal    `json:"total_commission"`
	CompanyGCI               decimal.Decimal    `json:"company_gci"`
	AgentCommissionAmount    decimal.Decimal    `json:"agent_commission_amount"`
	RevenueShares            []RevenueShareItem `json:"revenue_shares,omitempty"`
	CreatedAt                string             `json:"created_at"`
	UpdatedAt                string             `json:"updated_at"`
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// Create records a closing: splits the commission, persists the transaction
// and generates the upline revenue share set atomically.
func (s *TransactionService) Create(req *CreateTransactionRequest) (*TransactionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	agent, err := s.agentRepo.GetByID(req.AgentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to load closing agent: %w", err)
	}

	feeByAgent := true
	if req.ComplianceFeePaidByAgent != nil {
		feeByAgent = *req.ComplianceFeePaidByAgent
	}

	breakdown, err := finance.SplitCommission(finance.SplitInput{
		SaleAmount:               req.SaleAmount,
		CommissionPercentage:     req.CommissionPercentage,
		AgentType:                agent.AgentType,
		AgentCumulativeGCI:       agent.TotalGCIYTD,
		CareerSalesCount:         agent.CareerSalesCount,
		IsCompanyLead:            req.IsCompanyLead,
		ComplianceFeePaidByAgent: feeByAgent,
	})
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		AgentID:                  req.AgentID,
		PropertyAddress:          req.PropertyAddress,
		SaleAmount:               req.SaleAmount,
		CommissionPercentage:     req.CommissionPercentage,
		IsCompanyLead:            req.IsCompanyLead,
		ComplianceFeePaidByAgent: feeByAgent,
		TransactionDate:          req.TransactionDate,
		TotalCommission:          breakdown.TotalCommission,
		CompanyGCI:               breakdown.CompanyGCI,
		AgentCommissionAmount:    breakdown.AgentCommissionAmount,
	}

	var items []models.RevenueShare
	err = s.runWithRetry(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(txn); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		items, err = s.engine.Recompute(tx, txn)
		if err != nil {
			return err
		}
		return s.audit.RecordTransaction(tx, models.AuditActionCreate, agent.Email, nil, txn)
	})
	if err != nil {
		return nil, err
	}

	resp := toTransactionResponse(txn, items)
	s.webhooks.DispatchAsync(models.WebhookEventTransactionCreated, resp)
	if len(items) > 0 {
		s.webhooks.DispatchAsync(models.WebhookEventRevenueShareComputed, resp.RevenueShares)
	}
	return resp, nil
}

// GetByID retrieves a transaction with its revenue share line items
func (s *TransactionService) GetByID(id uuid.UUID) (*TransactionResponse, error) {
	txn, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	items, err := s.shareRepo.GetByTransaction(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}

	return toTransactionResponse(txn, items), nil
}

// List retrieves transactions with pagination
func (s *TransactionService) List(page, pageSize int) (*TransactionListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	txns, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return toTransactionListResponse(txns, total, page, pageSize), nil
}

// ListByAgent retrieves an agent's transactions with pagination
func (s *TransactionService) ListByAgent(agentID uuid.UUID, page, pageSize int) (*TransactionListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	if _, err := s.agentRepo.GetByID(agentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	txns, total, err := s.repo.GetByAgentID(agentID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return toTransactionListResponse(txns, total, page, pageSize), nil
}

// Update edits a transaction. There is no incremental patch of payouts: the
// whole revenue share set is regenerated from scratch in the same SQL
// transaction as the edit.
func (s *TransactionService) Update(id uuid.UUID, req *UpdateTransactionRequest) (*TransactionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	txn, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	before := *txn

	if req.AgentID != nil {
		txn.AgentID = *req.AgentID
	}
	if req.PropertyAddress != nil {
		txn.PropertyAddress = *req.PropertyAddress
	}
	if req.SaleAmount != nil {
		txn.SaleAmount = *req.SaleAmount
	}
	if req.CommissionPercentage != nil {
		txn.CommissionPercentage = *req.CommissionPercentage
	}
	if req.IsCompanyLead != nil {
		txn.IsCompanyLead = *req.IsCompanyLead
	}
	if req.ComplianceFeePaidByAgent != nil {
		txn.ComplianceFeePaidByAgent = *req.ComplianceFeePaidByAgent
	}
	if req.TransactionDate != nil {
		txn.TransactionDate = *req.TransactionDate
	}

	agent, err := s.agentRepo.GetByID(txn.AgentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to load closing agent: %w", err)
	}

	breakdown, err := finance.SplitCommission(finance.SplitInput{
		SaleAmount:               txn.SaleAmount,
		CommissionPercentage:     txn.CommissionPercentage,
		AgentType:                agent.AgentType,
		AgentCumulativeGCI:       agent.TotalGCIYTD,
		CareerSalesCount:         agent.CareerSalesCount,
		IsCompanyLead:            txn.IsCompanyLead,
		ComplianceFeePaidByAgent: txn.ComplianceFeePaidByAgent,
	})
	if err != nil {
		return nil, err
	}
	txn.TotalCommission = breakdown.TotalCommission
	txn.CompanyGCI = breakdown.CompanyGCI
	txn.AgentCommissionAmount = breakdown.AgentCommissionAmount

	var items []models.RevenueShare
	err = s.runWithRetry(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Update(txn); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		items, err = s.engine.Recompute(tx, txn)
		if err != nil {
			return err
		}
		return s.audit.RecordTransaction(tx, models.AuditActionUpdate, agent.Email, &before, txn)
	})
	if err != nil {
		return nil, err
	}

	resp := toTransactionResponse(txn, items)
	s.webhooks.DispatchAsync(models.WebhookEventTransactionUpdated, resp)
	return resp, nil
}

// Delete removes a transaction and every payout line item it generated
func (s *TransactionService) Delete(id uuid.UUID) error {
	txn, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	return s.runWithRetry(func(tx *gorm.DB) error {
		if err := s.shareRepo.WithTx(tx).DeleteByTransaction(id); err != nil {
			return fmt.Errorf("failed to delete line items: %w", err)
		}
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		return s.audit.RecordTransaction(tx, models.AuditActionDelete, "", txn, nil)
	})
}

// runWithRetry executes fn inside a SQL transaction, retrying on Postgres
// serialization failures and deadlocks before surfacing a conflict.
func (s *TransactionService) runWithRetry(fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 1; attempt <= maxTxRetries; attempt++ {
		err = s.db.Transaction(fn)
		if err == nil || !isRetryableSQLState(err) {
			return err
		}
		s.log.WithField("attempt", attempt).Warn("retrying ledger write after serialization failure")
	}
	return apperrors.ErrCapSerializationExhausted
}

func isRetryableSQLState(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

func toTransactionResponse(txn *models.Transaction, items []models.RevenueShare) *TransactionResponse {
	resp := &TransactionResponse{
		ID:                       txn.ID,
		AgentID:                  txn.AgentID,
		PropertyAddress:          txn.PropertyAddress,
		SaleAmount:               txn.SaleAmount,
		CommissionPercentage:     txn.CommissionPercentage,
		IsCompanyLead:            txn.IsCompanyLead,
		ComplianceFeePaidByAgent: txn.ComplianceFeePaidByAgent,
		TransactionDate:          txn.TransactionDate.Format("2006-01-02"),
		TotalCommission:          txn.TotalCommission,
		CompanyGCI:               txn.CompanyGCI,
		AgentCommissionAmount:    txn.AgentCommissionAmount,
		CreatedAt:                txn.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                txn.UpdatedAt.Format(time.RFC3339),
	}
	for _, item := range items {
		resp.RevenueShares = append(resp.RevenueShares, RevenueShareItem{
			ID:               item.ID,
			TransactionID:    item.TransactionID,
			SourceAgentID:    item.SourceAgentID,
			RecipientAgentID: item.RecipientAgentID,
			Tier:             item.Tier,
			Amount:           item.Amount,
			CreatedAt:        item.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}

func toTransactionListResponse(txns []models.Transaction, total int64, page, pageSize int) *TransactionListResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = *toTransactionResponse(&txns[i], nil)
	}
	return &TransactionListResponse{
		Transactions: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}
}
