// Package errors provides custom error types for the citylib system.
// These errors enable better error handling, programmatic error checking,
// and human-readable reporting from the terminal UI.
package errors

import (
	"errors"
	"fmt"
	"strconv"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's tree matches target.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
var As = errors.As

// Join returns an error that wraps the given errors, or nil if all are nil.
var Join = errors.Join

// Common sentinel errors for the citylib system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyIssued indicates an issue request for a book that is already out
	ErrAlreadyIssued = errors.New("book already issued")

	// ErrNotIssued indicates a return request for a book that is on the shelf
	ErrNotIssued = errors.New("book is not issued")

	// ErrNotHeldByMember indicates a return request from a member who does not hold the book
	ErrNotHeldByMember = errors.New("member does not hold the book")
)

// Resource names used in NotFoundError.
const (
	ResourceBook   = "book"
	ResourceMember = "member"
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// NewBookNotFoundError creates a NotFoundError for a book id.
func NewBookNotFoundError(id int) *NotFoundError {
	return NewNotFoundError(ResourceBook, strconv.Itoa(id))
}

// NewMemberNotFoundError creates a NotFoundError for a member id.
func NewMemberNotFoundError(id int) *NotFoundError {
	return NewNotFoundError(ResourceMember, strconv.Itoa(id))
}

// CirculationError represents a rejected issue or return transition.
// Reason is one of ErrAlreadyIssued, ErrNotIssued or ErrNotHeldByMember.
type CirculationError struct {
	Operation string // "issue" or "return"
	BookID    int
	MemberID  int
	Reason    error
}

// Error implements the error interface
func (e *CirculationError) Error() string {
	return fmt.Sprintf("cannot %s book %d for member %d: %v", e.Operation, e.BookID, e.MemberID, e.Reason)
}

// Unwrap implements errors.Unwrap
func (e *CirculationError) Unwrap() error {
	return e.Reason
}

// NewCirculationError creates a new CirculationError
func NewCirculationError(operation string, bookID, memberID int, reason error) *CirculationError {
	return &CirculationError{
		Operation: operation,
		BookID:    bookID,
		MemberID:  memberID,
		Reason:    reason,
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsBookNotFound checks if an error reports a missing book
func IsBookNotFound(err error) bool {
	return isNotFoundResource(err, ResourceBook)
}

// IsMemberNotFound checks if an error reports a missing member
func IsMemberNotFound(err error) bool {
	return isNotFoundResource(err, ResourceMember)
}

func isNotFoundResource(err error, resource string) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Resource == resource
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsAlreadyIssued checks if an issue was rejected because the book is out
func IsAlreadyIssued(err error) bool {
	return errors.Is(err, ErrAlreadyIssued)
}

// IsNotIssued checks if a return was rejected because the book is on the shelf
func IsNotIssued(err error) bool {
	return errors.Is(err, ErrNotIssued)
}

// IsNotHeldByMember checks if a return was rejected because the member lacks the book
func IsNotHeldByMember(err error) bool {
	return errors.Is(err, ErrNotHeldByMember)
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// IsIOError checks if an error is an IOError
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "create", "load", "save"
	Resource  string // "catalog", "library", "config"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}
