/*
Package dualstore presents a single logical data layer over two heterogeneous,
independently-authoritative stores: a schema-enforcing relational store and a
schemaless document store. Client code issues entity-type-generic operations
(list, join, create, update, delete) without knowing which store holds the
data; the Router decides.

The core pieces:

  - Schema Registry (registry): where each entity type lives, how each store
    identifies it, which fields only the document representation recognizes,
    and the tabular foreign-key edges.
  - Record Merger: per-store listings plus the origin-tagged combined view of
    dual-store types, with the document store's internal identifier stripped.
  - Denormalizing Reader: resolved labels (owning teacher's name and the
    like) attached to listings with a bounded number of secondary queries.
  - Write Router: destination-store selection for create (explicit target or
    payload shape), document-first resolution for update, and independent
    two-store removal for delete.
  - Dependency Resolver: manual emulation of cascade/reassign/nullify
    referential policies before a tabular delete, inside one transaction.
  - Identifier Reconciler (storagemodels.IdentityCandidates): tolerance for
    the document store's unenforced identity-field type.

Basic Usage:

	pg := postgres.New(db, logger)
	docs := mongodoc.New(logger)
	router := dualstore.New(pg, docs, dualstore.WithLogger(logger))

	rs, err := router.List(ctx, "party-teacher")
	rec, err := router.Create(ctx, "party-teacher",
	    storagemodels.Record{"first_name": "John", "department": "Science"},
	    storagemodels.TargetAuto) // department is document-only: routes to the document store

	// Delete with a referential policy
	_, err = router.Delete(ctx, "party-teacher", "3",
	    storagemodels.DeleteOptions{Cascade: true})

Cross-store consistency is best-effort and eventual, not atomic: no
two-phase commit is attempted, and a dual-store update racing a dual-store
delete can leave one store updated and the other deleted. The only
transactional discipline is inside the tabular store, where a policied
delete's dependent mutations and target delete always share one transaction.
*/
package dualstore
