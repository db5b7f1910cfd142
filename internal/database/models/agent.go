package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Agent represents a brokerage agent. The sponsor link forms a forest:
// multiple roots, no cycles, walked upward when revenue share is paid out.
type Agent struct {
	BaseModel
	FullName     string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string     `json:"-" gorm:"size:100"`
	AgentType    AgentType  `json:"agent_type" gorm:"type:varchar(20);not null" validate:"required"`
	SponsorID    *uuid.UUID `json:"sponsor_id,omitempty" gorm:"type:uuid;index"`
	// CapType only carries business meaning for principal agents; support
	// agents keep the flat cap regardless of what is stored here.
	CapType          *CapType        `json:"cap_type,omitempty" gorm:"type:varchar(20)"`
	AnniversaryDate  time.Time       `json:"anniversary_date" gorm:"type:date;not null"`
	TotalGCIYTD      decimal.Decimal `json:"total_gci_ytd" gorm:"type:numeric(14,2);not null;default:0"`
	CareerSalesCount int             `json:"career_sales_count" gorm:"not null;default:0" validate:"min=0"`
	IsActive         bool            `json:"is_active" gorm:"default:true"`

	// Relationships
	Sponsor       *Agent         `json:"sponsor,omitempty" gorm:"foreignKey:SponsorID;constraint:OnDelete:SET NULL"`
	Recruits      []Agent        `json:"recruits,omitempty" gorm:"foreignKey:SponsorID"`
	Transactions  []Transaction  `json:"transactions,omitempty" gorm:"foreignKey:AgentID"`
	RevenueShares []RevenueShare `json:"revenue_shares,omitempty" gorm:"foreignKey:RecipientAgentID"`
}

// TableName returns the table name for Agent
func (Agent) TableName() string {
	return "agents"
}

// EffectiveCapType defaults a missing cap type to standard
func (a *Agent) EffectiveCapType() CapType {
	if a.CapType == nil {
		return CapTypeStandard
	}
	return *a.CapType
}
