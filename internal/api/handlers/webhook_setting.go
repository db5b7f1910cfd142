package handlers

import (
	"errors"
	"net/http"

	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WebhookSettingHandler handles HTTP requests for webhook subscription management
type WebhookSettingHandler struct {
	webhookService *service.WebhookSettingService
}

// NewWebhookSettingHandler creates a new webhook setting handler
func NewWebhookSettingHandler(webhookService *service.WebhookSettingService) *WebhookSettingHandler {
	return &WebhookSettingHandler{
		webhookService: webhookService,
	}
}

// CreateWebhookSetting handles POST /webhooks
// @Summary Register a webhook subscription
// @Description Register an outbound webhook for a supported event. Deliveries are signed with the subscription secret.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param webhook body service.CreateWebhookSettingRequest true "Webhook subscription data"
// @Success 201 {object} service.WebhookSettingResponse "Successfully registered webhook"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /webhooks [post]
func (h *WebhookSettingHandler) CreateWebhookSetting(c *gin.Context) {
	var req service.CreateWebhookSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := h.webhookService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, setting)
}

// GetAllWebhookSettings handles GET /webhooks
// @Summary List webhook subscriptions
// @Description Get all registered webhook subscriptions
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {array} service.WebhookSettingResponse "Successfully retrieved webhooks"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /webhooks [get]
func (h *WebhookSettingHandler) GetAllWebhookSettings(c *gin.Context) {
	settings, err := h.webhookService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateWebhookSetting handles PUT /webhooks/:id
// @Summary Update a webhook subscription
// @Description Update the target URL, secret or active flag of a webhook subscription
// @Tags webhooks
// @Accept json
// @Produce json
// @Param id path string true "Webhook setting ID (UUID)"
// @Param webhook body service.UpdateWebhookSettingRequest true "Updated webhook data"
// @Success 200 {object} service.WebhookSettingResponse "Successfully updated webhook"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Webhook setting not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /webhooks/{id} [put]
func (h *WebhookSettingHandler) UpdateWebhookSetting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook setting ID"})
		return
	}

	var req service.UpdateWebhookSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := h.webhookService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrWebhookSettingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, setting)
}

// DeleteWebhookSetting handles DELETE /webhooks/:id
// @Summary Delete a webhook subscription
// @Description Remove a webhook subscription so no further deliveries are attempted
// @Tags webhooks
// @Accept json
// @Produce json
// @Param id path string true "Webhook setting ID (UUID)"
// @Success 204 "Successfully deleted webhook"
// @Failure 400 {object} map[string]interface{} "Invalid webhook setting ID"
// @Failure 404 {object} map[string]interface{} "Webhook setting not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /webhooks/{id} [delete]
func (h *WebhookSettingHandler) DeleteWebhookSetting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook setting ID"})
		return
	}

	if err := h.webhookService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrWebhookSettingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
