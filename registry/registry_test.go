/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/dualstore/storagemodels"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		entityType string
		table      string
		collection string
		dual       bool
		docOnly    []string
	}{
		{"Teacher", "party-teacher", "teachers", "teachers", true, []string{"department"}},
		{"Class", "party-class", "classes", "classes", true, []string{"schedule"}},
		{"Student", "party-student", "students", "students", true, []string{"enrollment_year"}},
		{"Subject", "subject", "subjects", "", false, nil},
		{"Enrollment", "enrollment", "enrollments", "", false, nil},
		{"LibraryBook", "library-book", "", "library_books", false, nil},
		{"Event", "event", "", "events", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, ok := Lookup(tt.entityType)
			require.True(t, ok)
			assert.Equal(t, tt.table, desc.Table)
			assert.Equal(t, tt.collection, desc.Collection)
			assert.Equal(t, tt.dual, desc.DualStore())
			assert.Equal(t, tt.docOnly, desc.DocumentOnly)
		})
	}

	_, ok := Lookup("invoices")
	assert.False(t, ok, "unregistered type must not resolve")
}

func TestDescriptorFieldRouting(t *testing.T) {
	desc, ok := Lookup("party-student")
	require.True(t, ok)

	withDocField := storagemodels.Record{"first_name": "Eva", "enrollment_year": 2024}
	withoutDocField := storagemodels.Record{"first_name": "Eva"}

	assert.True(t, desc.HasDocumentOnlyField(withDocField))
	assert.False(t, desc.HasDocumentOnlyField(withoutDocField))

	stripped := desc.StripDocumentOnly(withDocField)
	assert.Equal(t, storagemodels.Record{"first_name": "Eva"}, stripped)
	// Original payload untouched.
	assert.Contains(t, withDocField, "enrollment_year")
}

func TestDependentsOf(t *testing.T) {
	t.Run("Teachers", func(t *testing.T) {
		rels := DependentsOf("teachers")
		require.Len(t, rels, 2)
		assert.Equal(t, "classes", rels[0].DependentTable)
		assert.Equal(t, "subjects", rels[1].DependentTable)
		assert.True(t, rels[0].Reassignable)
		assert.True(t, rels[1].Reassignable)
	})

	t.Run("EnrollmentEdgesBlockOrCascadeOnly", func(t *testing.T) {
		for _, parent := range []string{"students", "subjects"} {
			rels := DependentsOf(parent)
			require.Len(t, rels, 1)
			assert.Equal(t, "enrollments", rels[0].DependentTable)
			assert.False(t, rels[0].Reassignable)
		}
	})

	t.Run("NoDependents", func(t *testing.T) {
		assert.Empty(t, DependentsOf("enrollments"))
		assert.Empty(t, DependentsOf("nonexistent"))
	})
}

func TestLabelRules(t *testing.T) {
	t.Run("ClassResolvesTeacherOnBothSides", func(t *testing.T) {
		rules := LabelRules(PartyClass)
		require.Len(t, rules, 1)
		assert.Equal(t, "teacher_name", rules[0].LabelField)
		assert.Equal(t, "teachers", rules[0].Collection, "class listings resolve on the document side too")
	})

	t.Run("EnrollmentResolvesStudentAndSubject", func(t *testing.T) {
		rules := LabelRules(Enrollment)
		require.Len(t, rules, 2)
		assert.Equal(t, "student_name", rules[0].LabelField)
		assert.Equal(t, "subject_name", rules[1].LabelField)
	})

	t.Run("SubjectTabularOnly", func(t *testing.T) {
		rules := LabelRules(Subject)
		require.Len(t, rules, 1)
		assert.Empty(t, rules[0].Collection)
	})

	t.Run("NoRules", func(t *testing.T) {
		assert.Empty(t, LabelRules(Event))
	})
}
