/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	assert.Len(t, data.Tabular.Teachers, 5)
	assert.Len(t, data.Tabular.Classes, 5)
	assert.Len(t, data.Tabular.Subjects, 5)
	assert.Len(t, data.Tabular.Students, 5)
	assert.NotEmpty(t, data.Tabular.Enrollments)

	for _, name := range documentCollections {
		assert.NotEmpty(t, data.Document[name], "collection %s", name)
	}
}

func TestLoadParsesDates(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	hired := data.Tabular.Teachers[0].HireDate.Time()
	assert.Equal(t, time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC), hired)
}

func TestDatasetReferentialConsistency(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	teachers := int64(len(data.Tabular.Teachers))
	for _, c := range data.Tabular.Classes {
		assert.True(t, c.TeacherID >= 1 && c.TeacherID <= teachers, "class %q teacher_id", c.ClassName)
	}
	for _, s := range data.Tabular.Subjects {
		assert.True(t, s.TeacherID >= 1 && s.TeacherID <= teachers, "subject %q teacher_id", s.SubjectName)
	}

	classes := int64(len(data.Tabular.Classes))
	for _, s := range data.Tabular.Students {
		assert.True(t, s.ClassID >= 1 && s.ClassID <= classes, "student %s class_id", s.FirstName)
	}

	students := int64(len(data.Tabular.Students))
	subjects := int64(len(data.Tabular.Subjects))
	for _, e := range data.Tabular.Enrollments {
		assert.True(t, e.StudentID >= 1 && e.StudentID <= students)
		assert.True(t, e.SubjectID >= 1 && e.SubjectID <= subjects)
	}
}

func TestDocumentSeedCarriesDocumentOnlyFields(t *testing.T) {
	data, err := Load()
	require.NoError(t, err)

	for _, doc := range data.Document["teachers"] {
		assert.Contains(t, doc, "department")
	}
	for _, doc := range data.Document["classes"] {
		assert.Contains(t, doc, "schedule")
	}
	for _, doc := range data.Document["students"] {
		assert.Contains(t, doc, "enrollment_year")
	}
}
