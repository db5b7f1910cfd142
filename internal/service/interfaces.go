package service

import "github.com/google/uuid"

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AgentServiceInterface defines the interface for agent service operations
type AgentServiceInterface interface {
	Create(req *CreateAgentRequest) (*AgentResponse, error)
	GetByID(id uuid.UUID) (*AgentResponse, error)
	List(page, pageSize int) (*AgentListResponse, error)
	GetDownline(id uuid.UUID) ([]AgentResponse, error)
	Update(id uuid.UUID, req *UpdateAgentRequest) (*AgentResponse, error)
	Delete(id uuid.UUID) error
}

// TransactionServiceInterface defines the interface for transaction service operations
type TransactionServiceInterface interface {
	Create(req *CreateTransactionRequest) (*TransactionResponse, error)
	GetByID(id uuid.UUID) (*TransactionResponse, error)
	List(page, pageSize int) (*TransactionListResponse, error)
	ListByAgent(agentID uuid.UUID, page, pageSize int) (*TransactionListResponse, error)
	Update(id uuid.UUID, req *UpdateTransactionRequest) (*TransactionResponse, error)
	Delete(id uuid.UUID) error
}
