package auth

import (
	"net/http"

	apperrors "brokerage-backoffice/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token     string `json:"token"`
	AgentID   string `json:"agent_id"`
	Email     string `json:"email"`
	AgentType string `json:"agent_type"`
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Exchange agent credentials for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Agent credentials"
// @Success 200 {object} LoginResponse "Session token"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, claims, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		AgentID:   claims.AgentID.String(),
		Email:     claims.Email,
		AgentType: string(claims.AgentType),
	})
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate a session token
// @Description Check a session token and return its claims
// @Tags auth
// @Accept json
// @Produce json
// @Param token body map[string]string true "Token to validate"
// @Success 200 {object} map[string]interface{} "Token claims"
// @Failure 401 {object} map[string]interface{} "Invalid token"
// @Router /auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.service.ValidateJWT(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":      true,
		"agent_id":   claims.AgentID,
		"email":      claims.Email,
		"agent_type": claims.AgentType,
		"expires_at": claims.ExpiresAt,
	})
}
