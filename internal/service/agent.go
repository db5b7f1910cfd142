package service

import (
	"errors"
	"fmt"
	"time"

	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AgentService handles business logic for agents
type AgentService struct {
	db        *gorm.DB
	repo      repository.AgentRepositoryInterface
	resolver  *SponsorChainResolver
	audit     *AuditService
	validator *validator.Validate
}

// NewAgentService creates a new agent service
func NewAgentService(db *gorm.DB, repo repository.AgentRepositoryInterface, audit *AuditService, validator *validator.Validate) *AgentService {
	return &AgentService{
		db:        db,
		repo:      repo,
		resolver:  NewSponsorChainResolver(repo),
		audit:     audit,
		validator: validator,
	}
}

// CreateAgentRequest represents the request to create an agent
type CreateAgentRequest struct {
	FullName         string           `json:"full_name" validate:"required,max=200"`
	Email            string           `json:"email" validate:"required,email,max=255"`
	Password         string           `json:"password,omitempty" validate:"omitempty,min=8"`
	AgentType        models.AgentType `json:"agent_type" validate:"required,oneof=principal support"`
	SponsorID        *uuid.UUID       `json:"sponsor_id,omitempty"`
	CapType          *models.CapType  `json:"cap_type,omitempty" validate:"omitempty,oneof=standard team"`
	AnniversaryDate  time.Time        `json:"anniversary_date" validate:"required"`
	CareerSalesCount int              `json:"career_sales_count" validate:"min=0"`
}

// UpdateAgentRequest represents the request to update an agent
type UpdateAgentRequest struct {
	FullName         *string           `json:"full_name,omitempty" validate:"omitempty,max=200"`
	AgentType        *models.AgentType `json:"agent_type,omitempty" validate:"omitempty,oneof=principal support"`
	SponsorID        *uuid.UUID        `json:"sponsor_id,omitempty"`
	ClearSponsor     bool              `json:"clear_sponsor,omitempty"`
	CapType          *models.CapType   `json:"cap_type,omitempty" validate:"omitempty,oneof=standard team"`
	AnniversaryDate  *time.Time        `json:"anniversary_date,omitempty"`
	CareerSalesCount *int              `json:"career_sales_count,omitempty" validate:"omitempty,min=0"`
	TotalGCIYTD      *decimal.Decimal  `json:"total_gci_ytd,omitempty"`
	IsActive         *bool             `json:"is_active,omitempty"`
}

// AgentResponse represents the response for agent operations
type AgentResponse struct {
	ID               uuid.UUID        `json:"id"`
	FullName         string           `json:"full_name"`
	Email            string           `json:"email"`
	AgentType        models.AgentType `json:"agent_type"`
	SponsorID        *uuid.UUID       `json:"sponsor_id,omitempty"`
	CapType          *models.CapType  `json:"cap_type,omitempty"`
	AnniversaryDate  string           `json:"anniversary_date"`
	TotalGCIYTD      decimal.Decimal  `json:"total_gci_ytd"`
	CareerSalesCount int              `json:"career_sales_count"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
}

// AgentListResponse represents a paginated list of agents
type AgentListResponse struct {
	Agents   []AgentResponse `json:"agents"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new agent
func (s *AgentService) Create(req *CreateAgentRequest) (*AgentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing agent: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAgentExists
	}

	if req.SponsorID != nil {
		if _, err := s.repo.GetByID(*req.SponsorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSponsorNotFound
			}
			return nil, fmt.Errorf("failed to verify sponsor: %w", err)
		}
	}

	agent := &models.Agent{
		FullName:         req.FullName,
		Email:            req.Email,
		AgentType:        req.AgentType,
		SponsorID:        req.SponsorID,
		CapType:          req.CapType,
		AnniversaryDate:  req.AnniversaryDate,
		TotalGCIYTD:      decimal.Zero,
		CareerSalesCount: req.CareerSalesCount,
		IsActive:         true,
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		agent.PasswordHash = string(hash)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(agent); err != nil {
			return fmt.Errorf("failed to create agent: %w", err)
		}
		return s.audit.RecordAgent(tx, models.AuditActionCreate, agent.Email, nil, agent)
	})
	if err != nil {
		return nil, err
	}

	return toAgentResponse(agent), nil
}

// GetByID retrieves an agent by ID
func (s *AgentService) GetByID(id uuid.UUID) (*AgentResponse, error) {
	agent, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return toAgentResponse(agent), nil
}

// List retrieves agents with pagination
func (s *AgentService) List(page, pageSize int) (*AgentListResponse, error) {
	if page < 1 || pageSize < 1 || pageSize > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	offset := (page - 1) * pageSize

	agents, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	responses := make([]AgentResponse, len(agents))
	for i := range agents {
		responses[i] = *toAgentResponse(&agents[i])
	}

	return &AgentListResponse{
		Agents:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetDownline retrieves the direct recruits of an agent
func (s *AgentService) GetDownline(id uuid.UUID) ([]AgentResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	recruits, err := s.repo.GetBySponsorID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list downline: %w", err)
	}

	responses := make([]AgentResponse, len(recruits))
	for i := range recruits {
		responses[i] = *toAgentResponse(&recruits[i])
	}
	return responses, nil
}

// Update updates an agent. A sponsor change is validated against cycles
// before the write is accepted.
func (s *AgentService) Update(id uuid.UUID, req *UpdateAgentRequest) (*AgentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	agent, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	before := *agent

	if req.SponsorID != nil {
		if *req.SponsorID == id {
			return nil, apperrors.ErrSponsorIsSelf
		}
		cycles, err := s.resolver.WouldCycle(id, *req.SponsorID)
		if err != nil {
			return nil, err
		}
		if cycles {
			return nil, apperrors.ErrSponsorWouldCycle
		}
		agent.SponsorID = req.SponsorID
	} else if req.ClearSponsor {
		agent.SponsorID = nil
	}

	if req.FullName != nil {
		agent.FullName = *req.FullName
	}
	if req.AgentType != nil {
		agent.AgentType = *req.AgentType
	}
	if req.CapType != nil {
		agent.CapType = req.CapType
	}
	if req.AnniversaryDate != nil {
		agent.AnniversaryDate = *req.AnniversaryDate
	}
	if req.CareerSalesCount != nil {
		agent.CareerSalesCount = *req.CareerSalesCount
	}
	if req.TotalGCIYTD != nil {
		agent.TotalGCIYTD = *req.TotalGCIYTD
	}
	if req.IsActive != nil {
		agent.IsActive = *req.IsActive
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Update(agent); err != nil {
			return fmt.Errorf("failed to update agent: %w", err)
		}
		return s.audit.RecordAgent(tx, models.AuditActionUpdate, agent.Email, &before, agent)
	})
	if err != nil {
		return nil, err
	}

	return toAgentResponse(agent), nil
}

// Delete deletes an agent
func (s *AgentService) Delete(id uuid.UUID) error {
	agent, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAgentNotFound
		}
		return fmt.Errorf("failed to get agent: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete agent: %w", err)
		}
		return s.audit.RecordAgent(tx, models.AuditActionDelete, agent.Email, agent, nil)
	})
}

func toAgentResponse(agent *models.Agent) *AgentResponse {
	return &AgentResponse{
		ID:               agent.ID,
		FullName:         agent.FullName,
		Email:            agent.Email,
		AgentType:        agent.AgentType,
		SponsorID:        agent.SponsorID,
		CapType:          agent.CapType,
		AnniversaryDate:  agent.AnniversaryDate.Format("2006-01-02"),
		TotalGCIYTD:      agent.TotalGCIYTD,
		CareerSalesCount: agent.CareerSalesCount,
		IsActive:         agent.IsActive,
		CreatedAt:        agent.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        agent.UpdatedAt.Format(time.RFC3339),
	}
}
