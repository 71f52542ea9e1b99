/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/campushub/dualstore/storagemodels"
)

// TabularStore is the routing layer's view of the schema-enforcing relational
// store. Identities are store-assigned integers; referential edges between
// tables are real foreign keys.
type TabularStore interface {
	// List returns every row in the table.
	List(ctx context.Context, table string) ([]storagemodels.Record, error)

	// Insert adds one row and returns it as stored, including the
	// store-assigned identity.
	Insert(ctx context.Context, table string, rec storagemodels.Record) (storagemodels.Record, error)

	// Update applies the changed columns to the row with the given identity
	// and returns the updated row, or nil when no row matched.
	Update(ctx context.Context, table, idColumn string, id int64, changes storagemodels.Record) (storagemodels.Record, error)

	// Delete removes the row with the given identity and returns it, or nil
	// when no row matched.
	Delete(ctx context.Context, table, idColumn string, id int64) (storagemodels.Record, error)

	// CountWhere counts rows whose column equals value.
	CountWhere(ctx context.Context, table, column string, value any) (int, error)

	// WithTx runs fn inside a single store transaction. The transaction
	// commits when fn returns nil and rolls back otherwise. Dependent-row
	// mutations and the target-row delete of a policied delete must share one
	// transaction so they are never left half-applied.
	WithTx(ctx context.Context, fn func(tx TabularTx) error) error
}

// TabularTx is the subset of tabular operations available inside a
// transaction.
type TabularTx interface {
	// Delete removes the row with the given identity and returns it, or nil
	// when no row matched.
	Delete(ctx context.Context, table, idColumn string, id int64) (storagemodels.Record, error)

	// DeleteWhere removes every row whose column equals value and reports how
	// many went.
	DeleteWhere(ctx context.Context, table, column string, value any) (int64, error)

	// UpdateWhere sets setColumn to setValue (nil writes NULL) on every row
	// whose whereColumn equals whereValue.
	UpdateWhere(ctx context.Context, table, setColumn string, setValue any, whereColumn string, whereValue any) (int64, error)
}

// DocumentStore is the routing layer's view of the schemaless document store.
// Identity fields are a convention, not a constraint: a collection may hold
// the "same" identity as a number in one document and a string in another,
// which is why every keyed operation takes the reconciler's candidate list
// rather than a single value.
//
// Implementations attempt the candidates in order and stop at the first
// match. Keyed operations return (nil, nil) when no candidate matched.
type DocumentStore interface {
	// List returns every document in the collection.
	List(ctx context.Context, collection string) ([]storagemodels.Record, error)

	// Insert adds one document and returns it as stored, including the
	// store's internal identifier.
	Insert(ctx context.Context, collection string, rec storagemodels.Record) (storagemodels.Record, error)

	// FindByID returns the first document whose identity field matches a
	// candidate, or nil when none do.
	FindByID(ctx context.Context, collection, idField string, candidates []any) (storagemodels.Record, error)

	// UpdateByID applies the changed fields to the first matching document
	// and returns it post-update, or nil when none matched. It never inserts.
	UpdateByID(ctx context.Context, collection, idField string, candidates []any, changes storagemodels.Record) (storagemodels.Record, error)

	// DeleteByID removes the first matching document and returns it, or nil
	// when none matched.
	DeleteByID(ctx context.Context, collection, idField string, candidates []any) (storagemodels.Record, error)
}
