/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package mock

// asInt64 normalizes the numeric types that reach the mocks (decoded JSON,
// BSON fixtures, Go literals) to int64.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}

// looseEqual compares the way the tabular store's typed columns do: numbers
// against numbers regardless of Go width, everything else by string identity.
func looseEqual(a, b any) bool {
	if an, ok := asInt64(a); ok {
		bn, ok := asInt64(b)
		return ok && an == bn
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	return aok && bok && as == bs
}

// typedEqual compares the way the document store does: a numeric candidate
// never matches a string-stored value and vice versa.
func typedEqual(stored, candidate any) bool {
	if cs, ok := candidate.(string); ok {
		ss, ok := stored.(string)
		return ok && ss == cs
	}
	cn, cok := asInt64(candidate)
	sn, sok := asInt64(stored)
	return cok && sok && cn == sn
}
