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

// ConflictError represents an operation rejected because another one is still
// in flight for the same identity. Callers should treat it as "wait", not
// "retry from scratch".
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ProviderError carries an upstream provider failure. The provider's message
// is preserved verbatim for operator diagnosis.
type ProviderError struct {
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// Entity Not Found Errors
var (
	ErrTeamNotFound           = &NotFoundError{Entity: "team"}
	ErrPartnershipNotFound    = &NotFoundError{Entity: "partnership"}
	ErrProfileNotFound        = &NotFoundError{Entity: "profile"}
	ErrDutyAssignmentNotFound = &NotFoundError{Entity: "duty assignment"}
	ErrCapacityConfigNotFound = &NotFoundError{Entity: "capacity config"}
	ErrImportStatusNotFound   = &NotFoundError{Entity: "holiday import status"}
)

// Business Logic Errors
var (
	ErrImportAlreadyPending = &ConflictError{Message: "holiday import already in progress for this identity"}
	ErrNoPendingImport      = errors.New("no pending import to reset")
	ErrInvalidDutyType      = errors.New("invalid duty type")
	ErrInvalidDateRange     = errors.New("invalid date range")
	ErrEmptyTeamSet         = errors.New("at least one team is required")
	ErrMinAboveMax          = errors.New("min staff required exceeds max staff allowed")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsProvider checks if an error is a ProviderError
func IsProvider(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewProviderError creates a new ProviderError preserving the upstream message
func NewProviderError(provider, message string) error {
	return &ProviderError{Provider: provider, Message: message}
}
