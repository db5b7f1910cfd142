package repository

import (
	"time"

	"brokerage-backoffice/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AgentRepositoryInterface defines the interface for agent repository operations
type AgentRepositoryInterface interface {
	WithTx(tx *gorm.DB) AgentRepositoryInterface
	Create(agent *models.Agent) error
	GetByID(id uuid.UUID) (*models.Agent, error)
	GetByEmail(email string) (*models.Agent, error)
	GetAll(limit, offset int) ([]models.Agent, int64, error)
	GetBySponsorID(sponsorID uuid.UUID) ([]models.Agent, error)
	CountBySponsorID(sponsorID uuid.UUID) (int64, error)
	LockForUpdate(ids []uuid.UUID) ([]models.Agent, error)
	Update(agent *models.Agent) error
	Delete(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the interface for transaction repository operations
type TransactionRepositoryInterface interface {
	WithTx(tx *gorm.DB) TransactionRepositoryInterface
	Create(txn *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetAll(limit, offset int) ([]models.Transaction, int64, error)
	GetByAgentID(agentID uuid.UUID, limit, offset int) ([]models.Transaction, int64, error)
	Update(txn *models.Transaction) error
	Delete(id uuid.UUID) error
	Totals() (*TransactionTotals, error)
}

// TransactionTotals aggregates the ledger for dashboard widgets
type TransactionTotals struct {
	Count           int64
	TotalCommission decimal.Decimal
	CompanyGCI      decimal.Decimal
}

// RevenueShareRepositoryInterface defines the interface for revenue share repository operations
type RevenueShareRepositoryInterface interface {
	WithTx(tx *gorm.DB) RevenueShareRepositoryInterface
	CreateBatch(items []models.RevenueShare) error
	DeleteByTransaction(transactionID uuid.UUID) error
	GetByTransaction(transactionID uuid.UUID) ([]models.RevenueShare, error)
	GetByRecipient(recipientID uuid.UUID, limit, offset int) ([]models.RevenueShare, int64, error)
	SumForRecipientBetween(recipientID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	TotalPaid() (decimal.Decimal, error)
}

// AuditLogRepositoryInterface defines the interface for audit log repository operations
type AuditLogRepositoryInterface interface {
	WithTx(tx *gorm.DB) AuditLogRepositoryInterface
	Create(entry *models.AuditLog) error
	GetByEntity(entityType string, entityID uuid.UUID, limit, offset int) ([]models.AuditLog, int64, error)
	GetAll(limit, offset int) ([]models.AuditLog, int64, error)
}

// WebhookSettingRepositoryInterface defines the interface for webhook setting repository operations
type WebhookSettingRepositoryInterface interface {
	Create(setting *models.WebhookSetting) error
	GetByID(id uuid.UUID) (*models.WebhookSetting, error)
	GetAll() ([]models.WebhookSetting, error)
	GetActiveByEvent(event models.WebhookEvent) ([]models.WebhookSetting, error)
	Update(setting *models.WebhookSetting) error
	Delete(id uuid.UUID) error
}
