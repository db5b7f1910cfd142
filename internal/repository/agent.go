package repository

import (
	"brokerage-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AgentRepository handles database operations for agents
type AgentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates a new agent repository
func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *AgentRepository) WithTx(tx *gorm.DB) AgentRepositoryInterface {
	return &AgentRepository{db: tx}
}

// Create creates a new agent
func (r *AgentRepository) Create(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

// GetByID retrieves an agent by ID
func (r *AgentRepository) GetByID(id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.First(&agent, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetByEmail retrieves an agent by email
func (r *AgentRepository) GetByEmail(email string) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.First(&agent, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetAll retrieves all agents with pagination
func (r *AgentRepository) GetAll(limit, offset int) ([]models.Agent, int64, error) {
	var agents []models.Agent
	var total int64

	if err := r.db.Model(&models.Agent{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at").Limit(limit).Offset(offset).Find(&agents).Error
	if err != nil {
		return nil, 0, err
	}

	return agents, total, nil
}

// GetBySponsorID retrieves the direct recruits of an agent
func (r *AgentRepository) GetBySponsorID(sponsorID uuid.UUID) ([]models.Agent, error) {
	var agents []models.Agent
	err := r.db.Where("sponsor_id = ?", sponsorID).Order("created_at").Find(&agents).Error
	if err != nil {
		return nil, err
	}
	return agents, nil
}

// CountBySponsorID counts the direct recruits of an agent
func (r *AgentRepository) CountBySponsorID(sponsorID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.Agent{}).Where("sponsor_id = ?", sponsorID).Count(&total).Error
	return total, err
}

// LockForUpdate loads the given agents under FOR UPDATE row locks, in
// deterministic id order so concurrent callers cannot deadlock.
func (r *AgentRepository) LockForUpdate(ids []uuid.UUID) ([]models.Agent, error) {
	var agents []models.Agent
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id").
		Find(&agents).Error
	if err != nil {
		return nil, err
	}
	return agents, nil
}

// Update updates an agent
func (r *AgentRepository) Update(agent *models.Agent) error {
	return r.db.Save(agent).Error
}

// Delete deletes an agent
func (r *AgentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Agent{}, "id = ?", id).Error
}
