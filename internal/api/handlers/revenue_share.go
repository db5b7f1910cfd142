package handlers

import (
	"errors"
	"net/http"
	"time"

	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RevenueShareHandler handles HTTP requests for revenue share queries
type RevenueShareHandler struct {
	queryService *service.RevenueShareQueryService
}

// NewRevenueShareHandler creates a new revenue share handler
func NewRevenueShareHandler(queryService *service.RevenueShareQueryService) *RevenueShareHandler {
	return &RevenueShareHandler{
		queryService: queryService,
	}
}

// GetByTransaction handles GET /transactions/:id/revenue-shares
// @Summary Get revenue shares for a transaction
// @Description Get all revenue share payouts generated by a transaction, ordered by tier
// @Tags revenue-shares
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {array} service.RevenueShareItem "Successfully retrieved revenue shares"
// @Failure 400 {object} map[string]interface{} "Invalid transaction ID"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /transactions/{id}/revenue-shares [get]
func (h *RevenueShareHandler) GetByTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction ID"})
		return
	}

	shares, err := h.queryService.GetByTransaction(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shares)
}

// GetByRecipient handles GET /agents/:id/revenue-shares
// @Summary Get revenue shares received by an agent
// @Description Get revenue share payouts received by an agent together with the agent's current anniversary-year cap summary
// @Tags revenue-shares
// @Accept json
// @Produce json
// @Param id path string true "Recipient agent ID (UUID)"
// @Param as_of query string false "Reference date for the anniversary window (YYYY-MM-DD, defaults to today)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RecipientSharesResponse "Successfully retrieved revenue shares"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/{id}/revenue-shares [get]
func (h *RevenueShareHandler) GetByRecipient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent ID"})
		return
	}

	ref := time.Now().UTC()
	if asOf := c.Query("as_of"); asOf != "" {
		parsed, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid as_of date, expected YYYY-MM-DD"})
			return
		}
		ref = parsed
	}

	page, pageSize := parsePagination(c)

	shares, err := h.queryService.GetByRecipient(id, ref, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shares)
}
