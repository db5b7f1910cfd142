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

// DashboardHandler handles HTTP requests for dashboard summaries
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetCompanySummary handles GET /dashboard/company
// @Summary Company-wide financial summary
// @Description Get transaction counts, total commission, company GCI and total revenue share paid across the brokerage
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} service.CompanySummaryResponse "Successfully retrieved company summary"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /dashboard/company [get]
func (h *DashboardHandler) GetCompanySummary(c *gin.Context) {
	summary, err := h.dashboardService.CompanySummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetAgentSummary handles GET /dashboard/agents/:id
// @Summary Per-agent financial summary
// @Description Get an agent's revenue share earnings in the current anniversary window, remaining cap allowance and downline size
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Param as_of query string false "Reference date for the anniversary window (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} service.AgentSummaryResponse "Successfully retrieved agent summary"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /dashboard/agents/{id} [get]
func (h *DashboardHandler) GetAgentSummary(c *gin.Context) {
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

	summary, err := h.dashboardService.AgentSummary(id, ref)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
