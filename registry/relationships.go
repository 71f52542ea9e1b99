/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package registry

// Relationship defines one tabular foreign-key edge used for dependent
// resolution on delete. Edges exist only inside the tabular store; the
// document store enforces no equivalents.
type Relationship struct {
	// ParentTable is the referenced table (the delete target's table).
	ParentTable string

	// DependentTable is the table holding the foreign key.
	DependentTable string

	// ForeignKey is the column in DependentTable that references the parent.
	ForeignKey string

	// Reassignable reports whether dependents may be repointed (or nulled)
	// instead of deleted. Enrollment edges are block-or-cascade only.
	Reassignable bool
}

// Order matters: dependent counts are reported in declaration order.
var relationships = []Relationship{
	{ParentTable: "teachers", DependentTable: "classes", ForeignKey: "teacher_id", Reassignable: true},
	{ParentTable: "teachers", DependentTable: "subjects", ForeignKey: "teacher_id", Reassignable: true},
	{ParentTable: "classes", DependentTable: "students", ForeignKey: "class_id", Reassignable: true},
	{ParentTable: "students", DependentTable: "enrollments", ForeignKey: "student_id", Reassignable: false},
	{ParentTable: "subjects", DependentTable: "enrollments", ForeignKey: "subject_id", Reassignable: false},
}

// DependentsOf returns the foreign-key edges pointing at the given table, in
// declaration order.
func DependentsOf(table string) []Relationship {
	var out []Relationship
	for _, rel := range relationships {
		if rel.ParentTable == table {
			out = append(out, rel)
		}
	}
	return out
}

// AllRelationships returns every registered foreign-key edge.
func AllRelationships() []Relationship {
	return relationships
}
