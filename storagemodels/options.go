/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package storagemodels

// StoreTarget is an explicit destination-store override for a create call.
// When empty, the router decides from the payload shape.
type StoreTarget string

const (
	// TargetAuto lets the router pick the destination store.
	TargetAuto StoreTarget = ""

	// TargetTabular forces the create into the tabular store.
	TargetTabular StoreTarget = "tabular"

	// TargetDocument forces the create into the document store.
	TargetDocument StoreTarget = "document"
)

// DeleteOptions selects the referential policy applied when deleting a row
// that other tabular rows reference.
//
// Policy precedence: Cascade, then reassign (ReassignTo non-nil), then
// nullify (Reassign true with ReassignTo nil). With no policy selected the
// delete is blocked when dependents exist.
type DeleteOptions struct {
	// Cascade deletes all dependent rows before the target row.
	Cascade bool

	// Reassign reports that a reassign target was supplied at all; it
	// distinguishes an absent reassignTo from an explicitly null one.
	Reassign bool

	// ReassignTo is the new foreign-key value for dependent rows. Nil with
	// Reassign set means the foreign key is set to null instead.
	ReassignTo *int64
}
