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

// MissingFieldError is returned when a required input field is absent or empty
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Is matches any MissingFieldError when the target carries no field name
func (e *MissingFieldError) Is(target error) bool {
	t, ok := target.(*MissingFieldError)
	if !ok {
		return false
	}
	return t.Field == "" || e.Field == t.Field
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// PersistenceError wraps a failure of the database layer for the named operation
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound = &NotFoundError{Entity: "user"}
)

// Authorization Errors
var (
	ErrApproverRequired     = &AuthorizationError{Message: "approver is required"}
	ErrApproverNotAdmin     = &AuthorizationError{Message: "approver is not an active admin of the company"}
	ErrApproverOtherCompany = &AuthorizationError{Message: "approver belongs to a different company"}
)

// Configuration Errors
var (
	ErrUnknownApprovalPolicy = &ConfigurationError{Message: "unknown approval policy"}
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

// IsMissingField checks if an error is a MissingFieldError
func IsMissingField(err error) bool {
	var missingErr *MissingFieldError
	return errors.As(err, &missingErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistErr *PersistenceError
	return errors.As(err, &persistErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewMissingFieldError creates a new MissingFieldError
func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}

// NewPersistenceError wraps err as a PersistenceError for the named operation.
// A nil err stays nil.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}
