/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/dualstore/datastore"
	"github.com/campushub/dualstore/storagemodels"
)

func TestTabularStoreSerialIdentity(t *testing.T) {
	ctx := context.Background()
	store := NewTabularStore(map[string]string{"teachers": "teacher_id"})

	first, err := store.Insert(ctx, "teachers", storagemodels.Record{"first_name": "John"})
	require.NoError(t, err)
	second, err := store.Insert(ctx, "teachers", storagemodels.Record{"first_name": "Sarah"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first["teacher_id"])
	assert.Equal(t, int64(2), second["teacher_id"])

	// A seeded explicit identity advances the counter past itself.
	store.Seed("teachers", storagemodels.Record{"teacher_id": int64(10), "first_name": "Emily"})
	third, err := store.Insert(ctx, "teachers", storagemodels.Record{"first_name": "David"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), third["teacher_id"])
}

func TestTabularStoreUpdateDelete(t *testing.T) {
	ctx := context.Background()
	store := NewTabularStore(map[string]string{"teachers": "teacher_id"})
	store.Seed("teachers", storagemodels.Record{"teacher_id": int64(1), "first_name": "John"})

	updated, err := store.Update(ctx, "teachers", "teacher_id", 1, storagemodels.Record{"first_name": "Jon"})
	require.NoError(t, err)
	assert.Equal(t, "Jon", updated["first_name"])

	missing, err := store.Update(ctx, "teachers", "teacher_id", 99, storagemodels.Record{"first_name": "X"})
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := store.Delete(ctx, "teachers", "teacher_id", 1)
	require.NoError(t, err)
	assert.Equal(t, "Jon", deleted["first_name"])
	assert.Empty(t, store.Rows("teachers"))
}

func TestTabularTxHelpers(t *testing.T) {
	ctx := context.Background()
	store := NewTabularStore(map[string]string{"classes": "class_id"})
	store.Seed("classes",
		storagemodels.Record{"class_name": "Math", "teacher_id": int64(1)},
		storagemodels.Record{"class_name": "Physics", "teacher_id": int64(1)},
		storagemodels.Record{"class_name": "English", "teacher_id": int64(2)},
	)

	err := store.WithTx(ctx, func(tx datastore.TabularTx) error {
		n, err := tx.DeleteWhere(ctx, "classes", "teacher_id", int64(1))
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		changed, err := tx.UpdateWhere(ctx, "classes", "teacher_id", nil, "teacher_id", int64(2))
		require.NoError(t, err)
		assert.Equal(t, int64(1), changed)
		return nil
	})
	require.NoError(t, err)

	rows := store.Rows("classes")
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0]["teacher_id"])
}

func TestDocumentStoreTypedIdentityMatching(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore()
	store.Seed("teachers",
		storagemodels.Record{"teacher_id": "7", "first_name": "StringKeyed"},
		storagemodels.Record{"teacher_id": int32(8), "first_name": "IntKeyed"},
	)

	// Numeric candidate does not match the string-stored identity.
	doc, err := store.FindByID(ctx, "teachers", "teacher_id", []any{int64(7)})
	require.NoError(t, err)
	assert.Nil(t, doc)

	// The verbatim-string retry does.
	doc, err = store.FindByID(ctx, "teachers", "teacher_id", []any{int64(7), "7"})
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "StringKeyed", doc["first_name"])

	// And a numeric candidate matches numeric storage across widths.
	doc, err = store.FindByID(ctx, "teachers", "teacher_id", []any{int64(8), "8"})
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "IntKeyed", doc["first_name"])
}

func TestDocumentStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore()
	store.SetUnavailable(true)

	_, err := store.List(ctx, "events")
	assert.Error(t, err)

	_, err = store.Insert(ctx, "events", storagemodels.Record{"event_id": 1})
	assert.Error(t, err)
}

func TestDocumentStoreNeverUpserts(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore()

	doc, err := store.UpdateByID(ctx, "events", "event_id", []any{int64(1), "1"}, storagemodels.Record{"status": "done"})
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.Empty(t, store.Docs("events"))
}
