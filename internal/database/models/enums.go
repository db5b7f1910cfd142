package models

// AgentType classifies agents into the two payout families
type AgentType string

const (
	AgentTypePrincipal AgentType = "principal"
	AgentTypeSupport   AgentType = "support"
)

// IsValid checks if the AgentType is valid
func (t AgentType) IsValid() bool {
	switch t {
	case AgentTypePrincipal, AgentTypeSupport:
		return true
	}
	return false
}

// CapType determines a principal agent's annual revenue-share ceiling
type CapType string

const (
	CapTypeStandard CapType = "standard"
	CapTypeTeam     CapType = "team"
)

// IsValid checks if the CapType is valid
func (t CapType) IsValid() bool {
	switch t {
	case CapTypeStandard, CapTypeTeam:
		return true
	}
	return false
}

// AuditAction identifies the kind of mutation recorded in an audit entry
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// IsValid checks if the AuditAction is valid
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// WebhookEvent identifies outbound notification triggers
type WebhookEvent string

const (
	WebhookEventTransactionCreated   WebhookEvent = "transaction.created"
	WebhookEventTransactionUpdated   WebhookEvent = "transaction.updated"
	WebhookEventRevenueShareComputed WebhookEvent = "revenue_share.computed"
)

// IsValid checks if the WebhookEvent is valid
func (e WebhookEvent) IsValid() bool {
	switch e {
	case WebhookEventTransactionCreated, WebhookEventTransactionUpdated, WebhookEventRevenueShareComputed:
		return true
	}
	return false
}
