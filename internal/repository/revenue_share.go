package repository

import (
	"time"

	"brokerage-backoffice/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RevenueShareRepository handles database operations for revenue share line items
type RevenueShareRepository struct {
	db *gorm.DB
}

// NewRevenueShareRepository creates a new revenue share repository
func NewRevenueShareRepository(db *gorm.DB) *RevenueShareRepository {
	return &RevenueShareRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *RevenueShareRepository) WithTx(tx *gorm.DB) RevenueShareRepositoryInterface {
	return &RevenueShareRepository{db: tx}
}

// CreateBatch inserts all line items of one transaction in a single statement
func (r *RevenueShareRepository) CreateBatch(items []models.RevenueShare) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

// DeleteByTransaction removes every line item generated from a transaction
func (r *RevenueShareRepository) DeleteByTransaction(transactionID uuid.UUID) error {
	return r.db.Delete(&models.RevenueShare{}, "transaction_id = ?", transactionID).Error
}

// GetByTransaction retrieves the line items of a transaction ordered by tier
func (r *RevenueShareRepository) GetByTransaction(transactionID uuid.UUID) ([]models.RevenueShare, error) {
	var items []models.RevenueShare
	err := r.db.Where("transaction_id = ?", transactionID).Order("tier").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByRecipient retrieves line items paid to an agent with pagination
func (r *RevenueShareRepository) GetByRecipient(recipientID uuid.UUID, limit, offset int) ([]models.RevenueShare, int64, error) {
	var items []models.RevenueShare
	var total int64

	if err := r.db.Model(&models.RevenueShare{}).Where("recipient_agent_id = ?", recipientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("recipient_agent_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// SumForRecipientBetween sums what a recipient was paid for transactions
// dated inside [start, end). The window is anchored to the source
// transaction's date, not the row's insert time, so regeneration of an old
// transaction lands back in the window it was originally paid in.
func (r *RevenueShareRepository) SumForRecipientBetween(recipientID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&models.RevenueShare{}).
		Select("COALESCE(SUM(revenue_shares.amount), 0) AS total").
		Joins("JOIN transactions ON transactions.id = revenue_shares.transaction_id").
		Where("revenue_shares.recipient_agent_id = ?", recipientID).
		Where("transactions.transaction_date >= ? AND transactions.transaction_date < ?", start, end).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// TotalPaid sums every line item ever paid out
func (r *RevenueShareRepository) TotalPaid() (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&models.RevenueShare{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}
