package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenueShare is one payout line item generated from a closed transaction.
// Tier is the recipient's distance (1-5) up the closing agent's sponsor chain.
// Amount is already cap-clamped; a zero amount records a sponsor whose annual
// allowance was exhausted.
type RevenueShare struct {
	BaseModel
	TransactionID    uuid.UUID       `json:"transaction_id" gorm:"type:uuid;not null;index"`
	SourceAgentID    uuid.UUID       `json:"source_agent_id" gorm:"type:uuid;not null;index"`
	RecipientAgentID uuid.UUID       `json:"recipient_agent_id" gorm:"type:uuid;not null;index"`
	Tier             int             `json:"tier" gorm:"not null" validate:"min=1,max=5"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:numeric(14,2);not null"`

	// Relationships
	Transaction    Transaction `json:"transaction,omitempty" gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
	SourceAgent    Agent       `json:"source_agent,omitempty" gorm:"foreignKey:SourceAgentID;constraint:OnDelete:CASCADE"`
	RecipientAgent Agent       `json:"recipient_agent,omitempty" gorm:"foreignKey:RecipientAgentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RevenueShare
func (RevenueShare) TableName() string {
	return "revenue_shares"
}
