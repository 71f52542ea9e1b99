/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package mongodoc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	dserrors "github.com/campushub/dualstore/errors"
	"github.com/campushub/dualstore/storagemodels"
)

func TestUnconnectedStoreFailsFast(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	require.False(t, s.Connected())

	_, err := s.List(ctx, "teachers")
	assert.True(t, dserrors.IsStoreUnavailable(err))

	_, err = s.Insert(ctx, "teachers", map[string]any{"teacher_id": 1})
	assert.True(t, dserrors.IsStoreUnavailable(err))

	_, err = s.FindByID(ctx, "teachers", "teacher_id", []any{int64(1)})
	assert.True(t, dserrors.IsStoreUnavailable(err))

	err = s.Replace(ctx, "teachers", nil)
	assert.True(t, dserrors.IsStoreUnavailable(err))
}

func TestFromBSON(t *testing.T) {
	when := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	doc := bson.M{
		"event_id":     int32(1),
		"event_name":   "Science Fair",
		"event_date":   primitive.NewDateTimeFromTime(when),
		"participants": primitive.A{int32(1), int32(2), int32(5)},
		"meta":         bson.M{"status": "upcoming"},
	}

	rec := fromBSON(doc)

	assert.Equal(t, int32(1), rec["event_id"], "scalar types pass through untouched")
	assert.Equal(t, when, rec["event_date"])
	assert.Equal(t, []any{int32(1), int32(2), int32(5)}, rec["participants"])

	nested, ok := rec["meta"].(storagemodels.Record)
	require.True(t, ok)
	assert.Equal(t, "upcoming", nested["status"])
}
