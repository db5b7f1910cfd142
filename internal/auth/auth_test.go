package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brokerage-backoffice/internal/config"
	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-signing-key",
		JWTTTLMinutes: 60,
	}
}

func testAgent(t *testing.T, password string) *models.Agent {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	return &models.Agent{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		FullName:     "Dana Whitfield",
		Email:        "dana@example.com",
		AgentType:    models.AgentTypePrincipal,
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials issue a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAgentRepositoryInterface(ctrl)
		agent := testAgent(t, "s3cret")
		repo.EXPECT().GetByEmail(agent.Email).Return(agent, nil)

		service := NewAuthService(repo, testConfig())
		token, claims, err := service.Login(agent.Email, "s3cret")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, agent.ID, claims.AgentID)
		assert.Equal(t, agent.Email, claims.Email)
		assert.Equal(t, models.AgentTypePrincipal, claims.AgentType)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAgentRepositoryInterface(ctrl)
		agent := testAgent(t, "s3cret")
		repo.EXPECT().GetByEmail(agent.Email).Return(agent, nil)

		service := NewAuthService(repo, testConfig())
		_, _, err := service.Login(agent.Email, "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAgentRepositoryInterface(ctrl)
		repo.EXPECT().GetByEmail("nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		service := NewAuthService(repo, testConfig())
		_, _, err := service.Login("nobody@example.com", "s3cret")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("inactive agent cannot log in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAgentRepositoryInterface(ctrl)
		agent := testAgent(t, "s3cret")
		agent.IsActive = false
		repo.EXPECT().GetByEmail(agent.Email).Return(agent, nil)

		service := NewAuthService(repo, testConfig())
		_, _, err := service.Login(agent.Email, "s3cret")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestValidateJWT(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAgentRepositoryInterface(ctrl)
		agent := testAgent(t, "s3cret")
		repo.EXPECT().GetByEmail(agent.Email).Return(agent, nil)

		service := NewAuthService(repo, testConfig())
		token, _, err := service.Login(agent.Email, "s3cret")
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)

		require.NoError(t, err)
		assert.Equal(t, agent.ID, claims.AgentID)
		assert.Equal(t, agent.ID.String(), claims.Subject)
	})

	t.Run("garbage token", func(t *testing.T) {
		service := NewAuthService(nil, testConfig())

		_, err := service.ValidateJWT("not-a-token")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := other.SignedString([]byte("some-other-key"))
		require.NoError(t, err)

		service := NewAuthService(nil, testConfig())
		_, err = service.ValidateJWT(signed)

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			AgentID: uuid.New(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		signed, err := expired.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		service := NewAuthService(nil, testConfig())
		_, err = service.ValidateJWT(signed)

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setupRouter := func(service *AuthService) *gin.Engine {
		router := gin.New()
		router.Use(NewAuthMiddleware(service).RequireAuth())
		router.GET("/protected", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"agent_id": c.GetString("agent_id")})
		})
		return router
	}

	t.Run("missing authorization header", func(t *testing.T) {
		router := setupRouter(NewAuthService(nil, testConfig()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header is required")
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		router := setupRouter(NewAuthService(nil, testConfig()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("valid token passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAgentRepositoryInterface(ctrl)
		agent := testAgent(t, "s3cret")
		repo.EXPECT().GetByEmail(agent.Email).Return(agent, nil)

		service := NewAuthService(repo, testConfig())
		token, _, err := service.Login(agent.Email, "s3cret")
		require.NoError(t, err)

		router := setupRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), agent.ID.String())
	})
}
