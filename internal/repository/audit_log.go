package repository

import (
	"brokerage-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogRepository handles database operations for audit log entries
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *AuditLogRepository) WithTx(tx *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{db: tx}
}

// Create records one audit entry
func (r *AuditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// GetByEntity retrieves the audit trail of one entity, newest first
func (r *AuditLogRepository) GetByEntity(entityType string, entityID uuid.UUID, limit, offset int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	q := r.db.Model(&models.AuditLog{}).Where("entity_type = ? AND entity_id = ?", entityType, entityID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// GetAll retrieves all audit entries with pagination, newest first
func (r *AuditLogRepository) GetAll(limit, offset int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	if err := r.db.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
