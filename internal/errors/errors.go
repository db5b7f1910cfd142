package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// DataIntegrityError represents corrupted reference data that an operator
// must fix: sponsor cycles, transactions pointing at missing agents.
// Never user-recoverable; the whole computation that hit it is aborted.
type DataIntegrityError struct {
	Message string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity error: %s", e.Message)
}

// ConflictError represents a concurrent-write conflict that survived the
// storage layer's retry discipline. Safe for the caller to retry whole.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrAgentNotFound          = &NotFoundError{Entity: "agent"}
	ErrSponsorNotFound        = &NotFoundError{Entity: "sponsor"}
	ErrTransactionNotFound    = &NotFoundError{Entity: "transaction"}
	ErrRevenueShareNotFound   = &NotFoundError{Entity: "revenue share"}
	ErrWebhookSettingNotFound = &NotFoundError{Entity: "webhook setting"}
)

// Already Exists Errors
var (
	ErrAgentExists = &AlreadyExistsError{Entity: "agent", Context: "with this email"}
)

// Business Logic Errors
var (
	ErrInvalidSaleAmount           = &ValidationError{Field: "sale_amount", Message: "must be positive"}
	ErrInvalidCommissionPercentage = &ValidationError{Field: "commission_percentage", Message: "must be positive and at most 100"}
	ErrInvalidPaginationParams     = errors.New("invalid pagination parameters")
	ErrSponsorIsSelf               = errors.New("agent cannot sponsor themselves")
	ErrSponsorWouldCycle           = errors.New("sponsor change would create a cycle")
)

// Data Integrity Errors
var (
	ErrSponsorChainCycle  = &DataIntegrityError{Message: "sponsor chain contains a cycle"}
	ErrDanglingAgentRef   = &DataIntegrityError{Message: "referenced agent does not exist"}
	ErrDanglingSponsorRef = &DataIntegrityError{Message: "referenced sponsor does not exist"}
)

// Concurrency Errors
var (
	ErrCapSerializationExhausted = &ConflictError{Message: "revenue share computation retries exhausted"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsDataIntegrity checks if an error is a DataIntegrityError
func IsDataIntegrity(err error) bool {
	var integrityErr *DataIntegrityError
	return errors.As(err, &integrityErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewDataIntegrityError creates a new DataIntegrityError
func NewDataIntegrityError(message string) error {
	return &DataIntegrityError{Message: message}
}
