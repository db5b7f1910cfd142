package repository

import (
	"brokerage-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository handles database operations for transactions
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *TransactionRepository) WithTx(tx *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: tx}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(txn *models.Transaction) error {
	return r.db.Create(txn).Error
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.First(&txn, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// GetAll retrieves all transactions with pagination, newest first
func (r *TransactionRepository) GetAll(limit, offset int) ([]models.Transaction, int64, error) {
	var txns []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("transaction_date DESC, created_at DESC").Limit(limit).Offset(offset).Find(&txns).Error
	if err != nil {
		return nil, 0, err
	}

	return txns, total, nil
}

// GetByAgentID retrieves all transactions closed by an agent with pagination
func (r *TransactionRepository) GetByAgentID(agentID uuid.UUID, limit, offset int) ([]models.Transaction, int64, error) {
	var txns []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).Where("agent_id = ?", agentID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("agent_id = ?", agentID).
		Order("transaction_date DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&txns).Error
	if err != nil {
		return nil, 0, err
	}

	return txns, total, nil
}

// Update updates a transaction
func (r *TransactionRepository) Update(txn *models.Transaction) error {
	return r.db.Save(txn).Error
}

// Delete deletes a transaction
func (r *TransactionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Transaction{}, "id = ?", id).Error
}

// Totals aggregates the whole ledger for the dashboard
func (r *TransactionRepository) Totals() (*TransactionTotals, error) {
	var totals TransactionTotals
	err := r.db.Model(&models.Transaction{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total_commission), 0) AS total_commission, COALESCE(SUM(company_gci), 0) AS company_gci").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
