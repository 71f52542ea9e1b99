/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package storagemodels

// Record is a single entity record as held by either store: a mapping of
// field name to value. Tabular rows and documents share this shape so the
// routing layer can treat them uniformly.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Origin identifies which store a record in a combined view came from.
type Origin string

const (
	// OriginTabular marks records read from the tabular store.
	OriginTabular Origin = "tabular"

	// OriginDocument marks records read from the document store.
	OriginDocument Origin = "document"
)

// OriginField is the field attached to each record in a combined view.
const OriginField = "origin"

// DocumentInternalID is the document store's own identifier field. It is
// internal to the store and is stripped from every record the routing layer
// returns.
const DocumentInternalID = "_id"

// View selects which slice of a listing the caller wants.
type View string

const (
	ViewAll      View = "all"
	ViewTabular  View = "tabular"
	ViewDocument View = "document"
	ViewCombined View = "combined"
)

// ResultSet is the outcome of a listing call: each store's records plus the
// tagged concatenation for dual-store entity types. Combined is nil for
// single-store types.
type ResultSet struct {
	Tabular  []Record `json:"tabular"`
	Document []Record `json:"document"`
	Combined []Record `json:"combined,omitempty"`
}
