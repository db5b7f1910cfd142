package service

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"brokerage-backoffice/internal/config"
	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/logger"
	"brokerage-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookDispatcher posts event payloads to the configured targets (Zapier
// or any JSON consumer). Delivery is best-effort and never blocks or fails
// the business operation that raised the event.
type WebhookDispatcher struct {
	repo   repository.WebhookSettingRepositoryInterface
	client *http.Client
	log    *logger.Logger
}

// NewWebhookDispatcher creates a new webhook dispatcher
func NewWebhookDispatcher(repo repository.WebhookSettingRepositoryInterface, cfg *config.Config) *WebhookDispatcher {
	timeout := time.Duration(cfg.WebhookTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookDispatcher{
		repo:   repo,
		client: &http.Client{Timeout: timeout},
		log:    logger.New(),
	}
}

// DispatchAsync delivers the event in the background
func (d *WebhookDispatcher) DispatchAsync(event models.WebhookEvent, payload interface{}) {
	go d.Dispatch(event, payload)
}

// Dispatch delivers the event to every enabled subscriber. Failures are
// logged per target; delivery to other targets continues.
func (d *WebhookDispatcher) Dispatch(event models.WebhookEvent, payload interface{}) {
	settings, err := d.repo.GetActiveByEvent(event)
	if err != nil {
		d.log.WithField("event", event).Errorf("failed to load webhook settings: %v", err)
		return
	}
	if len(settings) == 0 {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":     event,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"data":      payload,
	})
	if err != nil {
		d.log.WithField("event", event).Errorf("failed to marshal webhook payload: %v", err)
		return
	}

	for _, setting := range settings {
		if err := d.deliver(&setting, body); err != nil {
			d.log.WithFields(map[string]interface{}{
				"event":      event,
				"target_url": setting.TargetURL,
			}).Warnf("webhook delivery failed: %v", err)
		}
	}
}

func (d *WebhookDispatcher) deliver(setting *models.WebhookSetting, body []byte) error {
	req, err := http.NewRequest(http.MethodPost, setting.TargetURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if setting.Secret != "" {
		mac := hmac.New(sha256.New, []byte(setting.Secret))
		mac.Write(body)
		req.Header.Set("X-Webhook-Signature", hex.EncodeToString(mac.Sum(nil)))
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("target responded %d", resp.StatusCode)
	}
	return nil
}

// WebhookSettingService handles CRUD for webhook settings
type WebhookSettingService struct {
	repo      repository.WebhookSettingRepositoryInterface
	validator *validator.Validate
}

// NewWebhookSettingService creates a new webhook setting service
func NewWebhookSettingService(repo repository.WebhookSettingRepositoryInterface, validator *validator.Validate) *WebhookSettingService {
	return &WebhookSettingService{repo: repo, validator: validator}
}

// CreateWebhookSettingRequest represents the request to create a webhook setting
type CreateWebhookSettingRequest struct {
	Event     models.WebhookEvent `json:"event" validate:"required,oneof=transaction.created transaction.updated revenue_share.computed"`
	TargetURL string              `json:"target_url" validate:"required,url,max=500"`
	Secret    string              `json:"secret,omitempty" validate:"omitempty,max=100"`
}

// UpdateWebhookSettingRequest represents the request to update a webhook setting
type UpdateWebhookSettingRequest struct {
	TargetURL *string `json:"target_url,omitempty" validate:"omitempty,url,max=500"`
	Secret    *string `json:"secret,omitempty" validate:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// WebhookSettingResponse represents the response for webhook setting operations
type WebhookSettingResponse struct {
	ID        uuid.UUID           `json:"id"`
	Event     models.WebhookEvent `json:"event"`
	TargetURL string              `json:"target_url"`
	IsActive  bool                `json:"is_active"`
	CreatedAt string              `json:"created_at"`
	UpdatedAt string              `json:"updated_at"`
}

// Create creates a new webhook setting
func (s *WebhookSettingService) Create(req *CreateWebhookSettingRequest) (*WebhookSettingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	setting := &models.WebhookSetting{
		Event:     req.Event,
		TargetURL: req.TargetURL,
		Secret:    req.Secret,
		IsActive:  true,
	}
	if err := s.repo.Create(setting); err != nil {
		return nil, fmt.Errorf("failed to create webhook setting: %w", err)
	}
	return toWebhookSettingResponse(setting), nil
}

// List retrieves all webhook settings
func (s *WebhookSettingService) List() ([]WebhookSettingResponse, error) {
	settings, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook settings: %w", err)
	}
	responses := make([]WebhookSettingResponse, len(settings))
	for i := range settings {
		responses[i] = *toWebhookSettingResponse(&settings[i])
	}
	return responses, nil
}

// Update updates a webhook setting
func (s *WebhookSettingService) Update(id uuid.UUID, req *UpdateWebhookSettingRequest) (*WebhookSettingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	setting, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWebhookSettingNotFound
		}
		return nil, fmt.Errorf("failed to get webhook setting: %w", err)
	}

	if req.TargetURL != nil {
		setting.TargetURL = *req.TargetURL
	}
	if req.Secret != nil {
		setting.Secret = *req.Secret
	}
	if req.IsActive != nil {
		setting.IsActive = *req.IsActive
	}

	if err := s.repo.Update(setting); err != nil {
		return nil, fmt.Errorf("failed to update webhook setting: %w", err)
	}
	return toWebhookSettingResponse(setting), nil
}

// Delete deletes a webhook setting
func (s *WebhookSettingService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWebhookSettingNotFound
		}
		return fmt.Errorf("failed to get webhook setting: %w", err)
	}
	return s.repo.Delete(id)
}

func toWebhookSettingResponse(setting *models.WebhookSetting) *WebhookSettingResponse {
	return &WebhookSettingResponse{
		ID:        setting.ID,
		Event:     setting.Event,
		TargetURL: setting.TargetURL,
		IsActive:  setting.IsActive,
		CreatedAt: setting.CreatedAt.Format(time.RFC3339),
		UpdatedAt: setting.UpdatedAt.Format(time.RFC3339),
	}
}
