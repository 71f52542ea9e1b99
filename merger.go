/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package dualstore

import "github.com/campushub/dualstore/storagemodels"

// stripInternalID removes the document store's internal identifier from a
// record. The identifier exists only inside the store and is never part of
// the unified data model.
func stripInternalID(rec storagemodels.Record) storagemodels.Record {
	if rec == nil {
		return nil
	}
	if _, ok := rec[storagemodels.DocumentInternalID]; !ok {
		return rec
	}
	out := rec.Clone()
	delete(out, storagemodels.DocumentInternalID)
	return out
}

func stripInternalIDs(recs []storagemodels.Record) []storagemodels.Record {
	out := make([]storagemodels.Record, len(recs))
	for i, rec := range recs {
		out[i] = stripInternalID(rec)
	}
	return out
}

// combine produces the unified view of a dual-store entity type: the tabular
// list, each record tagged with its origin, followed by the document list
// tagged likewise. A record held by both stores appears twice, once per
// origin; correlation by identity is a convention the two stores do not
// enforce, so no deduplication is attempted here.
func combine(tabular, document []storagemodels.Record) []storagemodels.Record {
	out := make([]storagemodels.Record, 0, len(tabular)+len(document))
	for _, rec := range tabular {
		tagged := rec.Clone()
		tagged[storagemodels.OriginField] = string(storagemodels.OriginTabular)
		out = append(out, tagged)
	}
	for _, rec := range document {
		tagged := stripInternalID(rec).Clone()
		tagged[storagemodels.OriginField] = string(storagemodels.OriginDocument)
		out = append(out, tagged)
	}
	return out
}
