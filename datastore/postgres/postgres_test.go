/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dserrors "github.com/campushub/dualstore/errors"
	"github.com/campushub/dualstore/storagemodels"
)

func TestCheckIdent(t *testing.T) {
	valid := []string{"teachers", "teacher_id", "_private", "Col9"}
	for _, name := range valid {
		assert.NoError(t, checkIdent(name), name)
	}

	invalid := []string{"", "9col", "teachers; DROP TABLE x", "a-b", `a"b`, "a b"}
	for _, name := range invalid {
		err := checkIdent(name)
		assert.Error(t, err, name)
		assert.True(t, dserrors.IsValidationError(err), name)
	}
}

func TestSortedKeys(t *testing.T) {
	rec := storagemodels.Record{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, sortedKeys(rec))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello", normalize([]byte("hello")))
	assert.Equal(t, int64(7), normalize(int64(7)))
	assert.Nil(t, normalize(nil))
}
