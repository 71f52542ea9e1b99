/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package storagemodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityCandidates(t *testing.T) {
	t.Run("NumericIdentity", func(t *testing.T) {
		// Numeric form first, verbatim string second.
		candidates := IdentityCandidates("7")
		assert.Equal(t, []any{int64(7), "7"}, candidates)
	})

	t.Run("NonNumericIdentity", func(t *testing.T) {
		candidates := IdentityCandidates("abc-42")
		assert.Equal(t, []any{"abc-42"}, candidates)
	})

	t.Run("NegativeIdentity", func(t *testing.T) {
		candidates := IdentityCandidates("-3")
		assert.Equal(t, []any{int64(-3), "-3"}, candidates)
	})

	t.Run("EmptyIdentity", func(t *testing.T) {
		candidates := IdentityCandidates("")
		assert.Equal(t, []any{""}, candidates)
	})
}

func TestTabularIdentity(t *testing.T) {
	n, ok := TabularIdentity("12")
	assert.True(t, ok)
	assert.Equal(t, int64(12), n)

	_, ok = TabularIdentity("12a")
	assert.False(t, ok)
}

func TestRecordClone(t *testing.T) {
	rec := Record{"teacher_id": int64(1), "first_name": "John"}
	cp := rec.Clone()
	cp["first_name"] = "Jane"

	assert.Equal(t, "John", rec["first_name"])
	assert.Equal(t, "Jane", cp["first_name"])
}
