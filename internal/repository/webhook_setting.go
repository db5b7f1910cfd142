package repository

import (
	"brokerage-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookSettingRepository handles database operations for webhook settings
type WebhookSettingRepository struct {
	db *gorm.DB
}

// NewWebhookSettingRepository creates a new webhook setting repository
func NewWebhookSettingRepository(db *gorm.DB) *WebhookSettingRepository {
	return &WebhookSettingRepository{db: db}
}

// Create creates a new webhook setting
func (r *WebhookSettingRepository) Create(setting *models.WebhookSetting) error {
	return r.db.Create(setting).Error
}

// GetByID retrieves a webhook setting by ID
func (r *WebhookSettingRepository) GetByID(id uuid.UUID) (*models.WebhookSetting, error) {
	var setting models.WebhookSetting
	err := r.db.First(&setting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetAll retrieves all webhook settings
func (r *WebhookSettingRepository) GetAll() ([]models.WebhookSetting, error) {
	var settings []models.WebhookSetting
	err := r.db.Order("created_at").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// GetActiveByEvent retrieves the enabled settings subscribed to an event
func (r *WebhookSettingRepository) GetActiveByEvent(event models.WebhookEvent) ([]models.WebhookSetting, error) {
	var settings []models.WebhookSetting
	err := r.db.Where("event = ? AND is_active = ?", event, true).Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Update updates a webhook setting
func (r *WebhookSettingRepository) Update(setting *models.WebhookSetting) error {
	return r.db.Save(setting).Error
}

// Delete deletes a webhook setting
func (r *WebhookSettingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.WebhookSetting{}, "id = ?", id).Error
}
