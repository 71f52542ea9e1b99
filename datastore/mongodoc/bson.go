/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package mongodoc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campushub/dualstore/storagemodels"
)

// fromBSON converts a decoded document into the generic record shape used
// across the routing layer. BSON-specific container and time types are
// unwrapped; scalar types pass through as the driver decoded them, so a
// mistyped identity field keeps its stored type and stays visible to the
// identifier reconciler.
func fromBSON(doc bson.M) storagemodels.Record {
	rec := make(storagemodels.Record, len(doc))
	for k, v := range doc {
		rec[k] = fromBSONValue(v)
	}
	return rec
}

func fromBSONValue(v any) any {
	switch tv := v.(type) {
	case bson.M:
		return fromBSON(tv)
	case primitive.A:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = fromBSONValue(item)
		}
		return out
	case primitive.DateTime:
		return tv.Time().UTC()
	default:
		return v
	}
}
