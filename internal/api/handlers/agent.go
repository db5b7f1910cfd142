package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AgentHandler handles HTTP requests for agent operations
type AgentHandler struct {
	agentService service.AgentServiceInterface
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService service.AgentServiceInterface) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
	}
}

// CreateAgent handles POST /agents
// @Summary Create a new agent
// @Description Create a new agent with the provided details. Sponsor, if given, must exist.
// @Tags agents
// @Accept json
// @Produce json
// @Param agent body service.CreateAgentRequest true "Agent data"
// @Success 201 {object} service.AgentResponse "Successfully created agent"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Sponsor not found"
// @Failure 409 {object} map[string]interface{} "Agent with this email already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents [post]
func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req service.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := h.agentService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSponsorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrAgentExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, agent)
}

// GetAgent handles GET /agents/:id
// @Summary Get agent by ID
// @Description Get a specific agent by its UUID
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Success 200 {object} service.AgentResponse "Successfully retrieved agent"
// @Failure 400 {object} map[string]interface{} "Invalid agent ID"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/{id} [get]
func (h *AgentHandler) GetAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent ID"})
		return
	}

	agent, err := h.agentService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, agent)
}

// GetAllAgents handles GET /agents
// @Summary List all agents
// @Description Get all agents with pagination
// @Tags agents
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AgentListResponse "Successfully retrieved agents"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents [get]
func (h *AgentHandler) GetAllAgents(c *gin.Context) {
	page, pageSize := parsePagination(c)

	agents, err := h.agentService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, agents)
}

// GetAgentDownline handles GET /agents/:id/downline
// @Summary Get agents sponsored by an agent
// @Description Get the direct recruits of a specific agent
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Success 200 {array} service.AgentResponse "Successfully retrieved downline"
// @Failure 400 {object} map[string]interface{} "Invalid agent ID"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/{id}/downline [get]
func (h *AgentHandler) GetAgentDownline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent ID"})
		return
	}

	downline, err := h.agentService.GetDownline(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, downline)
}

// UpdateAgent handles PUT /agents/:id
// @Summary Update an agent
// @Description Update an existing agent with the provided details. Sponsor changes are rejected when they would create a cycle.
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Param agent body service.UpdateAgentRequest true "Updated agent data"
// @Success 200 {object} service.AgentResponse "Successfully updated agent"
// @Failure 400 {object} map[string]interface{} "Invalid request body or sponsor cycle"
// @Failure 404 {object} map[string]interface{} "Agent or sponsor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/{id} [put]
func (h *AgentHandler) UpdateAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent ID"})
		return
	}

	var req service.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := h.agentService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAgentNotFound) || errors.Is(err, apperrors.ErrSponsorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrSponsorIsSelf) || errors.Is(err, apperrors.ErrSponsorWouldCycle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, agent)
}

// DeleteAgent handles DELETE /agents/:id
// @Summary Delete an agent
// @Description Delete an existing agent. Recruits of the deleted agent keep their sponsor link cleared.
// @Tags agents
// @Accept json
// @Produce json
// @Param id path string true "Agent ID (UUID)"
// @Success 204 "Successfully deleted agent"
// @Failure 400 {object} map[string]interface{} "Invalid agent ID"
// @Failure 404 {object} map[string]interface{} "Agent not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /agents/{id} [delete]
func (h *AgentHandler) DeleteAgent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent ID"})
		return
	}

	if err := h.agentService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// parsePagination reads page/page_size query parameters with sane defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return page, pageSize
}
