/*
Package registry holds the static schema knowledge the routing layer works
from: which stores hold each entity type, how each store identifies a record,
which fields only the document representation recognizes, the tabular
foreign-key edges, and the label-resolution rules for denormalized listings.

Schema Registry:
Maps entity type names to their per-store locations:

	desc, ok := registry.Lookup("party-teacher")
	// desc.Table == "teachers", desc.Collection == "teachers"
	// desc.DocumentOnly == []string{"department"}

Relationship Registry:
Enumerates the foreign-key edges inside the tabular store, used by the
dependency resolver before a tabular delete:

	for _, rel := range registry.DependentsOf("teachers") {
	    // classes.teacher_id, subjects.teacher_id
	}

Label Rules:
Declare which listings are augmented with resolved labels (for example the
owning teacher's name on subject and class rows):

	for _, rule := range registry.LabelRules(registry.Subject) {
	    // teacher_id -> teacher_name via teachers(first_name, last_name)
	}

All registries are populated at compile time and read-only afterwards, so
they are safe for concurrent use without locking.
*/
package registry
