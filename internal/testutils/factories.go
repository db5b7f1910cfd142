package testutils

import (
	"time"

	"brokerage-backoffice/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AgentFactory provides methods to create test Agent data
type AgentFactory struct{}

// NewAgentFactory creates a new AgentFactory
func NewAgentFactory() *AgentFactory {
	return &AgentFactory{}
}

// Create creates a test principal Agent with default values
func (f *AgentFactory) Create() *models.Agent {
	id := uuid.New()

	return &models.Agent{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:         "Jane Closer",
		Email:            "agent-" + id.String()[:8] + "@test.com",
		AgentType:        models.AgentTypePrincipal,
		SponsorID:        nil,
		CapType:          nil,
		AnniversaryDate:  time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC),
		TotalGCIYTD:      decimal.Zero,
		CareerSalesCount: 5,
		IsActive:         true,
	}
}

// WithType sets the agent type
func (f *AgentFactory) WithType(agentType models.AgentType) *models.Agent {
	agent := f.Create()
	agent.AgentType = agentType
	return agent
}

// WithSponsor sets the sponsor link
func (f *AgentFactory) WithSponsor(sponsorID uuid.UUID) *models.Agent {
	agent := f.Create()
	agent.SponsorID = &sponsorID
	return agent
}

// WithCapType sets the cap type
func (f *AgentFactory) WithCapType(capType models.CapType) *models.Agent {
	agent := f.Create()
	agent.CapType = &capType
	return agent
}

// WithAnniversary sets the anniversary date
func (f *AgentFactory) WithAnniversary(anniversary time.Time) *models.Agent {
	agent := f.Create()
	agent.AnniversaryDate = anniversary
	return agent
}

// WithCareerSales sets the career sales counter
func (f *AgentFactory) WithCareerSales(count int) *models.Agent {
	agent := f.Create()
	agent.CareerSalesCount = count
	return agent
}

// TransactionFactory provides methods to create test Transaction data
type TransactionFactory struct{}

// NewTransactionFactory creates a new TransactionFactory
func NewTransactionFactory() *TransactionFactory {
	return &TransactionFactory{}
}

// Create creates a test Transaction with default values.
// The split fields are left zero; services recompute them on save.
func (f *TransactionFactory) Create(agentID uuid.UUID) *models.Transaction {
	return &models.Transaction{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AgentID:                  agentID,
		PropertyAddress:          "42 Harbor View Dr",
		SaleAmount:               decimal.NewFromInt(500000),
		CommissionPercentage:     decimal.NewFromInt(3),
		IsCompanyLead:            false,
		ComplianceFeePaidByAgent: true,
		TransactionDate:          time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithAmounts sets the sale amount and commission percentage
func (f *TransactionFactory) WithAmounts(agentID uuid.UUID, saleAmount, commissionPct decimal.Decimal) *models.Transaction {
	txn := f.Create(agentID)
	txn.SaleAmount = saleAmount
	txn.CommissionPercentage = commissionPct
	return txn
}

// WithDate sets the transaction date
func (f *TransactionFactory) WithDate(agentID uuid.UUID, date time.Time) *models.Transaction {
	txn := f.Create(agentID)
	txn.TransactionDate = date
	return txn
}

// FactorySet provides access to all factories
type FactorySet struct {
	Agent       *AgentFactory
	Transaction *TransactionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Agent:       NewAgentFactory(),
		Transaction: NewTransactionFactory(),
	}
}

// CreateSponsorChain creates n agents where each one after the first is
// sponsored by the previous, returning them root-first.
func (fs *FactorySet) CreateSponsorChain(n int) []*models.Agent {
	agents := make([]*models.Agent, n)
	for i := range agents {
		agents[i] = fs.Agent.Create()
		if i > 0 {
			sponsorID := agents[i-1].ID
			agents[i].SponsorID = &sponsorID
		}
	}
	return agents
}
