/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestUnknownEntityTypeError(t *testing.T) {
	err := NewUnknownEntityTypeError("invoices")

	expected := `unknown entity type "invoices"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrUnknownEntityType) {
		t.Error("UnknownEntityTypeError should match ErrUnknownEntityType")
	}

	if !IsUnknownEntityType(err) {
		t.Error("IsUnknownEntityType should return true for UnknownEntityTypeError")
	}
}

func TestStoreUnavailableError(t *testing.T) {
	err := NewStoreUnavailableError("document")

	expected := "document store unavailable"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrStoreUnavailable) {
		t.Error("StoreUnavailableError should match ErrStoreUnavailable")
	}

	if !IsStoreUnavailable(err) {
		t.Error("IsStoreUnavailable should return true for StoreUnavailableError")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("party-teacher", "7")

	expected := `party-teacher with identity "7" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestNoUpdatableFieldsError(t *testing.T) {
	err := NewNoUpdatableFieldsError("party-student")

	expected := "no updatable fields for party-student after store-specific filtering"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsNoUpdatableFields(err) {
		t.Error("IsNoUpdatableFields should return true for NoUpdatableFieldsError")
	}
}

func TestDependentsError(t *testing.T) {
	err := NewDependentsError("party-teacher", "3", []DependentCount{
		{Table: "classes", Count: 2},
		{Table: "subjects", Count: 1},
	})

	expected := `cannot delete party-teacher "3": dependent rows exist (2 in classes, 1 in subjects); retry with cascade, reassign, or nullify`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrHasDependents) {
		t.Error("DependentsError should match ErrHasDependents")
	}

	if !IsHasDependents(err) {
		t.Error("IsHasDependents should return true for DependentsError")
	}

	// The counts stay available for callers choosing a retry policy.
	var de *DependentsError
	if !errors.As(err, &de) {
		t.Fatal("errors.As should expose *DependentsError")
	}
	if len(de.Counts) != 2 || de.Counts[0].Table != "classes" {
		t.Errorf("Unexpected counts: %+v", de.Counts)
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "reassignTo",
			message:  "reassign is not supported for this entity type",
			expected: `validation failed for field "reassignTo": reassign is not supported for this entity type`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	base := NewNotFoundError("event", "12")
	wrapped := fmt.Errorf("delete failed: %w", base)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through fmt.Errorf wrapping")
	}
	if IsHasDependents(wrapped) {
		t.Error("wrapped NotFoundError should not match ErrHasDependents")
	}
}
