package auth

import (
	"errors"
	"fmt"
	"time"

	"brokerage-backoffice/internal/config"
	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims are the JWT claims carried by a back-office session token
type Claims struct {
	AgentID   uuid.UUID        `json:"agent_id"`
	Email     string           `json:"email"`
	AgentType models.AgentType `json:"agent_type"`
	jwt.RegisteredClaims
}

// AuthService issues and validates session tokens for agents
type AuthService struct {
	agents repository.AgentRepositoryInterface
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(agents repository.AgentRepositoryInterface, cfg *config.Config) *AuthService {
	ttl := time.Duration(cfg.JWTTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &AuthService{
		agents: agents,
		secret: []byte(cfg.JWTSecret),
		ttl:    ttl,
	}
}

// Login checks an agent's credentials and issues a session token
func (s *AuthService) Login(email, password string) (string, *Claims, error) {
	agent, err := s.agents.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load agent: %w", err)
	}
	if !agent.IsActive || agent.PasswordHash == "" {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		AgentID:   agent.ID,
		Email:     agent.Email,
		AgentType: agent.AgentType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   agent.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, claims, nil
}

// ValidateJWT parses and verifies a session token
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
