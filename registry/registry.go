/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package registry

import "github.com/campushub/dualstore/storagemodels"

// EntityType names one of the entity types the routing layer serves.
type EntityType string

const (
	PartyTeacher EntityType = "party-teacher"
	PartyClass   EntityType = "party-class"
	PartyStudent EntityType = "party-student"
	Subject      EntityType = "subject"
	Enrollment   EntityType = "enrollment"
	LibraryBook  EntityType = "library-book"
	Event        EntityType = "event"
)

// Descriptor is the static schema entry for one entity type: where it lives,
// how each store identifies it, and which fields only the document
// representation recognizes.
type Descriptor struct {
	Type EntityType

	// Table and IDColumn locate the tabular copy. Empty Table means the type
	// has no tabular representation.
	Table    string
	IDColumn string

	// Collection and IDField locate the document copy. Empty Collection means
	// the type has no document representation.
	Collection string
	IDField    string

	// DocumentOnly lists fields recognized only by the document
	// representation. Their presence in a create payload routes the write to
	// the document store.
	DocumentOnly []string
}

// InTabular reports whether the type has a tabular representation.
func (d Descriptor) InTabular() bool { return d.Table != "" }

// InDocument reports whether the type has a document representation.
func (d Descriptor) InDocument() bool { return d.Collection != "" }

// DualStore reports whether independent copies may exist in both stores.
func (d Descriptor) DualStore() bool { return d.InTabular() && d.InDocument() }

// HasDocumentOnlyField reports whether the payload carries any field that only
// the document representation recognizes.
func (d Descriptor) HasDocumentOnlyField(payload storagemodels.Record) bool {
	for _, f := range d.DocumentOnly {
		if _, ok := payload[f]; ok {
			return true
		}
	}
	return false
}

// StripDocumentOnly returns a copy of the payload with document-only fields
// removed, for writes routed to the tabular store.
func (d Descriptor) StripDocumentOnly(payload storagemodels.Record) storagemodels.Record {
	out := payload.Clone()
	for _, f := range d.DocumentOnly {
		delete(out, f)
	}
	return out
}

var descriptors = map[EntityType]Descriptor{
	PartyTeacher: {
		Type:         PartyTeacher,
		Table:        "teachers",
		IDColumn:     "teacher_id",
		Collection:   "teachers",
		IDField:      "teacher_id",
		DocumentOnly: []string{"department"},
	},
	PartyClass: {
		Type:         PartyClass,
		Table:        "classes",
		IDColumn:     "class_id",
		Collection:   "classes",
		IDField:      "class_id",
		DocumentOnly: []string{"schedule"},
	},
	PartyStudent: {
		Type:         PartyStudent,
		Table:        "students",
		IDColumn:     "student_id",
		Collection:   "students",
		IDField:      "student_id",
		DocumentOnly: []string{"enrollment_year"},
	},
	Subject: {
		Type:     Subject,
		Table:    "subjects",
		IDColumn: "subject_id",
	},
	Enrollment: {
		Type:     Enrollment,
		Table:    "enrollments",
		IDColumn: "enrollment_id",
	},
	LibraryBook: {
		Type:       LibraryBook,
		Collection: "library_books",
		IDField:    "book_id",
	},
	Event: {
		Type:       Event,
		Collection: "events",
		IDField:    "event_id",
	},
}

// Lookup returns the descriptor for an entity type name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := descriptors[EntityType(name)]
	return d, ok
}

// All returns every registered descriptor.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d)
	}
	return out
}
