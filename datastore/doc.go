/*
Package datastore defines the store interfaces the routing layer is written
against.

Two interfaces cover the two heterogeneous stores:

	type TabularStore interface {
	    List(ctx context.Context, table string) ([]storagemodels.Record, error)
	    Insert(ctx context.Context, table string, rec storagemodels.Record) (storagemodels.Record, error)
	    Update(ctx context.Context, table, idColumn string, id int64, changes storagemodels.Record) (storagemodels.Record, error)
	    Delete(ctx context.Context, table, idColumn string, id int64) (storagemodels.Record, error)
	    CountWhere(ctx context.Context, table, column string, value any) (int, error)
	    WithTx(ctx context.Context, fn func(tx TabularTx) error) error
	}

	type DocumentStore interface {
	    List(ctx context.Context, collection string) ([]storagemodels.Record, error)
	    Insert(ctx context.Context, collection string, rec storagemodels.Record) (storagemodels.Record, error)
	    FindByID(ctx context.Context, collection, idField string, candidates []any) (storagemodels.Record, error)
	    UpdateByID(ctx context.Context, collection, idField string, candidates []any, changes storagemodels.Record) (storagemodels.Record, error)
	    DeleteByID(ctx context.Context, collection, idField string, candidates []any) (storagemodels.Record, error)
	}

Implementations:
  - postgres: PostgreSQL implementation over database/sql and lib/pq
  - mongodoc: MongoDB implementation over the official mongo driver
  - mock: In-memory implementations for testing

Keyed document-store operations take the identity reconciler's candidate list
(see storagemodels.IdentityCandidates) because the document store enforces no
type on identity fields; implementations try the candidates in order and the
first match wins.
*/
package datastore
