/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package dualstore

// asInt64 normalizes the integer shapes the two stores hand back (database
// drivers, BSON decoding, JSON payloads) so reference columns can be compared
// across stores.
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

// asString returns the value as a string when it is one.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
