package service

import (
	"encoding/json"
	"fmt"
	"time"

	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Audited entity type tags
const (
	AuditEntityAgent       = "agent"
	AuditEntityTransaction = "transaction"
)

// AgentSnapshot is the audited view of an agent at one point in time
type AgentSnapshot struct {
	FullName         string           `json:"full_name"`
	AgentType        models.AgentType `json:"agent_type"`
	SponsorID        *uuid.UUID       `json:"sponsor_id,omitempty"`
	CapType          *models.CapType  `json:"cap_type,omitempty"`
	AnniversaryDate  string           `json:"anniversary_date"`
	CareerSalesCount int              `json:"career_sales_count"`
	IsActive         bool             `json:"is_active"`
}

// TransactionSnapshot is the audited view of a transaction at one point in time
type TransactionSnapshot struct {
	AgentID               uuid.UUID       `json:"agent_id"`
	PropertyAddress       string          `json:"property_address"`
	SaleAmount            decimal.Decimal `json:"sale_amount"`
	CommissionPercentage  decimal.Decimal `json:"commission_percentage"`
	TransactionDate       string          `json:"transaction_date"`
	TotalCommission       decimal.Decimal `json:"total_commission"`
	CompanyGCI            decimal.Decimal `json:"company_gci"`
	AgentCommissionAmount decimal.Decimal `json:"agent_commission_amount"`
}

// AgentAuditPayload is the typed change record for agent mutations
type AgentAuditPayload struct {
	Old *AgentSnapshot `json:"old,omitempty"`
	New *AgentSnapshot `json:"new,omitempty"`
}

// TransactionAuditPayload is the typed change record for transaction mutations
type TransactionAuditPayload struct {
	Old *TransactionSnapshot `json:"old,omitempty"`
	New *TransactionSnapshot `json:"new,omitempty"`
}

// AuditService records and reads the audit trail of agent and transaction
// mutations. Writes always run inside the caller's SQL transaction so the
// trail commits or rolls back with the change it describes.
type AuditService struct {
	repo repository.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{repo: repo}
}

// RecordAgent writes one audit entry for an agent mutation
func (s *AuditService) RecordAgent(tx *gorm.DB, action models.AuditAction, actor string, before, after *models.Agent) error {
	payload := AgentAuditPayload{
		Old: agentSnapshot(before),
		New: agentSnapshot(after),
	}
	entityID := uuid.Nil
	if after != nil {
		entityID = after.ID
	} else if before != nil {
		entityID = before.ID
	}
	return s.record(tx, AuditEntityAgent, entityID, action, actor, payload)
}

// RecordTransaction writes one audit entry for a transaction mutation
func (s *AuditService) RecordTransaction(tx *gorm.DB, action models.AuditAction, actor string, before, after *models.Transaction) error {
	payload := TransactionAuditPayload{
		Old: transactionSnapshot(before),
		New: transactionSnapshot(after),
	}
	entityID := uuid.Nil
	if after != nil {
		entityID = after.ID
	} else if before != nil {
		entityID = before.ID
	}
	return s.record(tx, AuditEntityTransaction, entityID, action, actor, payload)
}

func (s *AuditService) record(tx *gorm.DB, entityType string, entityID uuid.UUID, action models.AuditAction, actor string, payload interface{}) error {
	changes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal audit payload: %w", err)
	}
	repo := s.repo
	if tx != nil {
		repo = repo.WithTx(tx)
	}
	if err := repo.Create(&models.AuditLog{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Actor:      actor,
		Changes:    changes,
	}); err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}

// AuditLogResponse represents one audit entry in API responses
type AuditLogResponse struct {
	ID         uuid.UUID          `json:"id"`
	EntityType string             `json:"entity_type"`
	EntityID   uuid.UUID          `json:"entity_id"`
	Action     models.AuditAction `json:"action"`
	Actor      string             `json:"actor,omitempty"`
	Changes    json.RawMessage    `json:"changes,omitempty" swaggertype:"object"`
	CreatedAt  string             `json:"created_at"`
}

// AuditLogListResponse represents a paginated audit trail
type AuditLogListResponse struct {
	Entries  []AuditLogResponse `json:"entries"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// List retrieves the audit trail, optionally filtered to one entity
func (s *AuditService) List(entityType string, entityID *uuid.UUID, page, pageSize int) (*AuditLogListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	offset := (page - 1) * pageSize

	var entries []models.AuditLog
	var total int64
	var err error
	if entityType != "" && entityID != nil {
		entries, total, err = s.repo.GetByEntity(entityType, *entityID, pageSize, offset)
	} else {
		entries, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	responses := make([]AuditLogResponse, len(entries))
	for i, e := range entries {
		responses[i] = AuditLogResponse{
			ID:         e.ID,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Action:     e.Action,
			Actor:      e.Actor,
			Changes:    e.Changes,
			CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		}
	}

	return &AuditLogListResponse{
		Entries:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func agentSnapshot(a *models.Agent) *AgentSnapshot {
	if a == nil {
		return nil
	}
	return &AgentSnapshot{
		FullName:         a.FullName,
		AgentType:        a.AgentType,
		SponsorID:        a.SponsorID,
		CapType:          a.CapType,
		AnniversaryDate:  a.AnniversaryDate.Format("2006-01-02"),
		CareerSalesCount: a.CareerSalesCount,
		IsActive:         a.IsActive,
	}
}

func transactionSnapshot(t *models.Transaction) *TransactionSnapshot {
	if t == nil {
		return nil
	}
	return &TransactionSnapshot{
		AgentID:               t.AgentID,
		PropertyAddress:       t.PropertyAddress,
		SaleAmount:            t.SaleAmount,
		CommissionPercentage:  t.CommissionPercentage,
		TransactionDate:       t.TransactionDate.Format("2006-01-02"),
		TotalCommission:       t.TotalCommission,
		CompanyGCI:            t.CompanyGCI,
		AgentCommissionAmount: t.AgentCommissionAmount,
	}
}
