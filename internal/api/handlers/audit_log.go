package handlers

import (
	"net/http"

	"brokerage-backoffice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLogHandler handles HTTP requests for audit history
type AuditLogHandler struct {
	auditService *service.AuditService
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(auditService *service.AuditService) *AuditLogHandler {
	return &AuditLogHandler{
		auditService: auditService,
	}
}

// GetAuditLogs handles GET /audit-logs
// @Summary List audit history
// @Description Get the change history of agents and transactions, optionally filtered by entity type and ID
// @Tags audit
// @Accept json
// @Produce json
// @Param entity_type query string false "Entity type to filter by (agent or transaction)"
// @Param entity_id query string false "Entity ID (UUID) to filter by"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AuditLogListResponse "Successfully retrieved audit logs"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *AuditLogHandler) GetAuditLogs(c *gin.Context) {
	entityType := c.Query("entity_type")
	if entityType != "" && entityType != service.AuditEntityAgent && entityType != service.AuditEntityTransaction {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entity_type"})
		return
	}

	var entityID *uuid.UUID
	if idStr := c.Query("entity_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entity ID"})
			return
		}
		entityID = &id
	}

	page, pageSize := parsePagination(c)

	logs, err := h.auditService.List(entityType, entityID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
