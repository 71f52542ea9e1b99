/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package registry

// LabelRule declares one foreign-reference column whose listing rows are
// augmented with a human-readable label resolved from the referenced entity.
type LabelRule struct {
	// RefColumn is the foreign-reference column on the listed rows.
	RefColumn string

	// LabelField is the field attached to each row, e.g. "teacher_name".
	LabelField string

	// Table and IDColumn locate the referenced rows in the tabular store.
	Table    string
	IDColumn string

	// NameColumns are concatenated (space-separated, empties skipped) to form
	// the label.
	NameColumns []string

	// Collection, when non-empty, means document-side listings of this type
	// resolve the same label against this collection, independently of the
	// tabular resolution. IDColumn doubles as the document identity field.
	Collection string
}

var labelRules = map[EntityType][]LabelRule{
	Subject: {
		{
			RefColumn:   "teacher_id",
			LabelField:  "teacher_name",
			Table:       "teachers",
			IDColumn:    "teacher_id",
			NameColumns: []string{"first_name", "last_name"},
		},
	},
	PartyClass: {
		{
			RefColumn:   "teacher_id",
			LabelField:  "teacher_name",
			Table:       "teachers",
			IDColumn:    "teacher_id",
			NameColumns: []string{"first_name", "last_name"},
			Collection:  "teachers",
		},
	},
	Enrollment: {
		{
			RefColumn:   "student_id",
			LabelField:  "student_name",
			Table:       "students",
			IDColumn:    "student_id",
			NameColumns: []string{"first_name", "last_name"},
		},
		{
			RefColumn:   "subject_id",
			LabelField:  "subject_name",
			Table:       "subjects",
			IDColumn:    "subject_id",
			NameColumns: []string{"subject_name"},
		},
	},
}

// LabelRules returns the label-resolution rules for a listing of the given
// entity type, or nil when its listings carry no resolved labels.
func LabelRules(t EntityType) []LabelRule {
	return labelRules[t]
}
