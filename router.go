/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package dualstore

import (
	"context"

	dserrors "github.com/campushub/dualstore/errors"
	"github.com/campushub/dualstore/registry"
	"github.com/campushub/dualstore/storagemodels"
)

// List returns the entity type's records from every store that holds it,
// plus the combined view for dual-store types. A failing store degrades to
// an empty partial result rather than failing the whole call; the condition
// is logged.
func (r *Router) List(ctx context.Context, entityType string) (*storagemodels.ResultSet, error) {
	desc, ok := registry.Lookup(entityType)
	if !ok {
		return nil, dserrors.NewUnknownEntityTypeError(entityType)
	}

	rs := &storagemodels.ResultSet{
		Tabular:  []storagemodels.Record{},
		Document: []storagemodels.Record{},
	}

	if desc.InTabular() {
		rows, err := r.tabular.List(ctx, desc.Table)
		if err != nil {
			r.log.Warn("tabular read degraded to empty",
				"entity_type", entityType, "table", desc.Table, "error", err)
		} else {
			rs.Tabular = rows
		}
		r.resolveTabularLabels(ctx, desc.Type, rs.Tabular)
	}

	if desc.InDocument() {
		docs, err := r.document.List(ctx, desc.Collection)
		if err != nil {
			r.log.Warn("document read degraded to empty",
				"entity_type", entityType, "collection", desc.Collection, "error", err)
		} else {
			rs.Document = stripInternalIDs(docs)
		}
		r.resolveDocumentLabels(ctx, desc.Type, rs.Document)
	}

	if desc.DualStore() {
		rs.Combined = combine(rs.Tabular, rs.Document)
	}
	return rs, nil
}

// Join returns the combined view of a listing: both stores' records for the
// entity type, origin-tagged, without identity deduplication. Nil for
// single-store types.
func (r *Router) Join(ctx context.Context, entityType string) ([]storagemodels.Record, error) {
	rs, err := r.List(ctx, entityType)
	if err != nil {
		return nil, err
	}
	return rs.Combined, nil
}

// Create inserts the payload into exactly one store and returns the record
// as stored, including any store-assigned identity. With no explicit target
// the destination follows the payload shape: a dual-store type goes to the
// document store when the payload carries any of its document-only fields,
// to the tabular store otherwise. No mirroring to the other store is
// attempted; callers wanting a copy in each store issue two creates.
func (r *Router) Create(ctx context.Context, entityType string, payload storagemodels.Record, target storagemodels.StoreTarget) (storagemodels.Record, error) {
	desc, ok := registry.Lookup(entityType)
	if !ok {
		return nil, dserrors.NewUnknownEntityTypeError(entityType)
	}
	if len(payload) == 0 {
		return nil, dserrors.NewValidationError("", "empty create payload")
	}

	switch target {
	case storagemodels.TargetTabular:
		if !desc.InTabular() {
			return nil, dserrors.NewValidationError("store", string(desc.Type)+" has no tabular representation")
		}
		return r.tabular.Insert(ctx, desc.Table, payload)
	case storagemodels.TargetDocument:
		if !desc.InDocument() {
			return nil, dserrors.NewValidationError("store", string(desc.Type)+" has no document representation")
		}
		return r.createDocument(ctx, desc, payload)
	case storagemodels.TargetAuto:
		// fall through to shape-based routing
	default:
		return nil, dserrors.NewValidationError("store", "unknown store target "+string(target))
	}

	switch {
	case desc.DualStore():
		if desc.HasDocumentOnlyField(payload) {
			return r.createDocument(ctx, desc, payload)
		}
		return r.tabular.Insert(ctx, desc.Table, payload)
	case desc.InTabular():
		return r.tabular.Insert(ctx, desc.Table, payload)
	default:
		return r.createDocument(ctx, desc, payload)
	}
}

func (r *Router) createDocument(ctx context.Context, desc registry.Descriptor, payload storagemodels.Record) (storagemodels.Record, error) {
	rec, err := r.document.Insert(ctx, desc.Collection, payload)
	if err != nil {
		return nil, err
	}
	return stripInternalID(rec), nil
}

// Update applies a partial payload to the record with the given identity, in
// whichever store currently holds it. Update never creates a record: a miss
// in the resolved store is a not-found result, not an implicit insert.
func (r *Router) Update(ctx context.Context, entityType, id string, payload storagemodels.Record) (storagemodels.Record, error) {
	desc, ok := registry.Lookup(entityType)
	if !ok {
		return nil, dserrors.NewUnknownEntityTypeError(entityType)
	}
	if len(payload) == 0 {
		return nil, dserrors.NewValidationError("", "empty update payload")
	}

	switch {
	case desc.DualStore():
		return r.updateDual(ctx, desc, id, payload)
	case desc.InTabular():
		n, ok := storagemodels.TabularIdentity(id)
		if !ok {
			return nil, dserrors.NewNotFoundError(entityType, id)
		}
		rec, err := r.tabular.Update(ctx, desc.Table, desc.IDColumn, n, payload)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, dserrors.NewNotFoundError(entityType, id)
		}
		return rec, nil
	default:
		candidates := storagemodels.IdentityCandidates(id)
		rec, err := r.document.UpdateByID(ctx, desc.Collection, desc.IDField, candidates, payload)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, dserrors.NewNotFoundError(entityType, id)
		}
		return stripInternalID(rec), nil
	}
}

// updateDual resolves which store holds the record. The document store is
// preferred: an existing document, or a payload carrying a document-only
// field, routes there first. Otherwise document-only fields are stripped and
// the tabular store is tried, with one final document attempt as a last
// resort when the tabular update matched nothing.
func (r *Router) updateDual(ctx context.Context, desc registry.Descriptor, id string, payload storagemodels.Record) (storagemodels.Record, error) {
	entityType := string(desc.Type)
	candidates := storagemodels.IdentityCandidates(id)

	existing, err := r.document.FindByID(ctx, desc.Collection, desc.IDField, candidates)
	if err != nil {
		if !dserrors.IsStoreUnavailable(err) {
			return nil, err
		}
		r.log.Warn("document probe skipped, store unavailable", "entity_type", entityType, "id", id)
		existing = nil
	}

	if existing != nil || desc.HasDocumentOnlyField(payload) {
		rec, err := r.document.UpdateByID(ctx, desc.Collection, desc.IDField, candidates, payload)
		switch {
		case err != nil && !dserrors.IsStoreUnavailable(err):
			return nil, err
		case err != nil:
			r.log.Warn("document update skipped, store unavailable", "entity_type", entityType, "id", id)
		case rec != nil:
			return stripInternalID(rec), nil
		}
		// Document miss; the tabular copy may still hold the record.
	}

	filtered := desc.StripDocumentOnly(payload)
	if len(filtered) == 0 {
		return nil, dserrors.NewNoUpdatableFieldsError(entityType)
	}

	if n, ok := storagemodels.TabularIdentity(id); ok {
		rec, err := r.tabular.Update(ctx, desc.Table, desc.IDColumn, n, filtered)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return rec, nil
		}
	}

	// Last resort: the record may live in the document store only.
	rec, err := r.document.UpdateByID(ctx, desc.Collection, desc.IDField, candidates, payload)
	if err != nil {
		if dserrors.IsStoreUnavailable(err) {
			return nil, dserrors.NewNotFoundError(entityType, id)
		}
		return nil, err
	}
	if rec == nil {
		return nil, dserrors.NewNotFoundError(entityType, id)
	}
	return stripInternalID(rec), nil
}

// Delete removes the record with the given identity. Dual-store types have
// both copies removed independently: the call succeeds when either store held
// the record and reports not-found only when neither did. Tabular deletes go
// through the dependency resolver, honoring the caller-selected referential
// policy in opts.
func (r *Router) Delete(ctx context.Context, entityType, id string, opts storagemodels.DeleteOptions) (storagemodels.Record, error) {
	desc, ok := registry.Lookup(entityType)
	if !ok {
		return nil, dserrors.NewUnknownEntityTypeError(entityType)
	}

	switch {
	case desc.DualStore():
		return r.deleteDual(ctx, desc, id, opts)
	case desc.InTabular():
		n, ok := storagemodels.TabularIdentity(id)
		if !ok {
			return nil, dserrors.NewNotFoundError(entityType, id)
		}
		rec, err := r.resolveAndDelete(ctx, desc, id, n, opts)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, dserrors.NewNotFoundError(entityType, id)
		}
		return rec, nil
	default:
		candidates := storagemodels.IdentityCandidates(id)
		rec, err := r.document.DeleteByID(ctx, desc.Collection, desc.IDField, candidates)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, dserrors.NewNotFoundError(entityType, id)
		}
		return stripInternalID(rec), nil
	}
}

func (r *Router) deleteDual(ctx context.Context, desc registry.Descriptor, id string, opts storagemodels.DeleteOptions) (storagemodels.Record, error) {
	entityType := string(desc.Type)
	candidates := storagemodels.IdentityCandidates(id)

	var docRec storagemodels.Record
	existing, err := r.document.FindByID(ctx, desc.Collection, desc.IDField, candidates)
	if err != nil {
		if !dserrors.IsStoreUnavailable(err) {
			return nil, err
		}
		r.log.Warn("document probe skipped, store unavailable", "entity_type", entityType, "id", id)
	} else if existing != nil {
		docRec, err = r.document.DeleteByID(ctx, desc.Collection, desc.IDField, candidates)
		if err != nil {
			return nil, err
		}
	}

	var tabRec storagemodels.Record
	if n, ok := storagemodels.TabularIdentity(id); ok {
		tabRec, err = r.resolveAndDelete(ctx, desc, id, n, opts)
		if err != nil {
			// The document copy may already be gone; cross-store delete is
			// best-effort and this partial outcome is deliberate.
			if docRec != nil {
				r.log.Warn("partial dual-store delete: document copy removed, tabular delete failed",
					"entity_type", entityType, "id", id, "error", err)
			}
			return nil, err
		}
	}

	// Which store(s) actually held the record is invisible to the caller, so
	// record it here.
	r.log.Info("dual-store delete",
		"entity_type", entityType, "id", id,
		"tabular_held", tabRec != nil, "document_held", docRec != nil)

	switch {
	case tabRec != nil:
		return tabRec, nil
	case docRec != nil:
		return stripInternalID(docRec), nil
	default:
		return nil, dserrors.NewNotFoundError(entityType, id)
	}
}
