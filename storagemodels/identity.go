/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package storagemodels

import "strconv"

// IdentityCandidates returns the lookup values to attempt, in order, when
// resolving a caller-supplied identity against the document store.
//
// The document store does not enforce a type on identity fields, so a
// document's identity may be stored as a number or a string. The value is
// tried parsed as an integer first, then verbatim as an opaque string; the
// first attempt that matches wins and later candidates are skipped.
func IdentityCandidates(raw string) []any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return []any{n, raw}
	}
	return []any{raw}
}

// TabularIdentity parses a caller-supplied identity for tabular-store use.
// Tabular identities are store-assigned integers, so a value that does not
// parse cannot name any row.
func TabularIdentity(raw string) (int64, bool) {
	n, err := strconv.ParseInt(raw, 10, 64)
	return n, err == nil
}
