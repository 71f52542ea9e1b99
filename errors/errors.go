/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors
var (
	// ErrUnknownEntityType is returned when a request names an entity type
	// that is not in the schema registry. Always a caller bug.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrStoreUnavailable is returned when the store chosen for an operation
	// has no live connection. Transient; callers may retry after backoff.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound is returned when an operation targets a nonexistent record.
	ErrNotFound = errors.New("record not found")

	// ErrNoUpdatableFields is returned when an update payload is empty after
	// store-specific field filtering.
	ErrNoUpdatableFields = errors.New("no updatable fields")

	// ErrHasDependents is returned when a delete is blocked by referential policy.
	ErrHasDependents = errors.New("record has dependents")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)

// UnknownEntityTypeError reports a request for an unregistered entity type.
type UnknownEntityTypeError struct {
	Name string
}

func (e *UnknownEntityTypeError) Error() string {
	return fmt.Sprintf("unknown entity type %q", e.Name)
}

func (e *UnknownEntityTypeError) Is(target error) bool {
	return target == ErrUnknownEntityType
}

// StoreUnavailableError reports an operation against a store with no live connection.
type StoreUnavailableError struct {
	Store string
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("%s store unavailable", e.Store)
}

func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with identity %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NoUpdatableFieldsError reports an update payload left empty once fields the
// target store does not recognize were stripped.
type NoUpdatableFieldsError struct {
	Type string
}

func (e *NoUpdatableFieldsError) Error() string {
	return fmt.Sprintf("no updatable fields for %s after store-specific filtering", e.Type)
}

func (e *NoUpdatableFieldsError) Is(target error) bool {
	return target == ErrNoUpdatableFields
}

// DependentCount names one dependent table and how many rows in it reference
// the delete target.
type DependentCount struct {
	Table string `json:"table"`
	Count int    `json:"count"`
}

// DependentsError reports a delete blocked because dependent rows exist and no
// cascade/reassign/nullify policy was selected. Counts preserve registry order
// so the message is deterministic.
type DependentsError struct {
	Type   string
	Key    string
	Counts []DependentCount
}

func (e *DependentsError) Error() string {
	parts := make([]string, 0, len(e.Counts))
	for _, c := range e.Counts {
		parts = append(parts, fmt.Sprintf("%d in %s", c.Count, c.Table))
	}
	return fmt.Sprintf("cannot delete %s %q: dependent rows exist (%s); retry with cascade, reassign, or nullify",
		e.Type, e.Key, strings.Join(parts, ", "))
}

func (e *DependentsError) Is(target error) bool {
	return target == ErrHasDependents
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewUnknownEntityTypeError creates a new UnknownEntityTypeError
func NewUnknownEntityTypeError(name string) error {
	return &UnknownEntityTypeError{Name: name}
}

// NewStoreUnavailableError creates a new StoreUnavailableError
func NewStoreUnavailableError(store string) error {
	return &StoreUnavailableError{Store: store}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewNoUpdatableFieldsError creates a new NoUpdatableFieldsError
func NewNoUpdatableFieldsError(entityType string) error {
	return &NoUpdatableFieldsError{Type: entityType}
}

// NewDependentsError creates a new DependentsError
func NewDependentsError(entityType, key string, counts []DependentCount) error {
	return &DependentsError{Type: entityType, Key: key, Counts: counts}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsUnknownEntityType checks if an error is an unknown entity type error
func IsUnknownEntityType(err error) bool {
	return errors.Is(err, ErrUnknownEntityType)
}

// IsStoreUnavailable checks if an error is a store unavailable error
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNoUpdatableFields checks if an error is a no updatable fields error
func IsNoUpdatableFields(err error) bool {
	return errors.Is(err, ErrNoUpdatableFields)
}

// IsHasDependents checks if an error is a blocked-by-dependents error
func IsHasDependents(err error) bool {
	return errors.Is(err, ErrHasDependents)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
