package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a closed sale. The split fields (total commission,
// company GCI, agent commission) are derived at creation time and rewritten
// whenever the sale amount, commission percentage or closing agent changes.
type Transaction struct {
	BaseModel
	AgentID                  uuid.UUID       `json:"agent_id" gorm:"type:uuid;not null;index" validate:"required"`
	PropertyAddress          string          `json:"property_address" gorm:"not null;size:255" validate:"required,max=255"`
	SaleAmount               decimal.Decimal `json:"sale_amount" gorm:"type:numeric(14,2);not null"`
	CommissionPercentage     decimal.Decimal `json:"commission_percentage" gorm:"type:numeric(5,2);not null"`
	IsCompanyLead            bool            `json:"is_company_lead" gorm:"not null;default:false"`
	ComplianceFeePaidByAgent bool            `json:"compliance_fee_paid_by_agent" gorm:"not null;default:true"`
	TransactionDate          time.Time       `json:"transaction_date" gorm:"type:date;not null;index"`
	TotalCommission          decimal.Decimal `json:"total_commission" gorm:"type:numeric(14,2);not null"`
	CompanyGCI               decimal.Decimal `json:"company_gci" gorm:"type:numeric(14,2);not null"`
	AgentCommissionAmount    decimal.Decimal `json:"agent_commission_amount" gorm:"type:numeric(14,2);not null"`

	// Relationships
	Agent         Agent          `json:"agent,omitempty" gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE"`
	RevenueShares []RevenueShare `json:"revenue_shares,omitempty" gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
