/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package dualstore

import (
	"context"

	"github.com/campushub/dualstore/datastore"
	dserrors "github.com/campushub/dualstore/errors"
	"github.com/campushub/dualstore/registry"
	"github.com/campushub/dualstore/storagemodels"
)

// resolveAndDelete is the dependency resolver for tabular deletes. Before
// removing the target row it counts dependents across every table holding a
// foreign key to the target's table and applies the caller-selected policy,
// evaluated in order: cascade, reassign, nullify, block. With no policy and
// no dependents the row is deleted directly.
//
// Dependent-row mutations and the target delete share one store transaction;
// they are never left half-applied. Returns (nil, nil) when no row matched.
func (r *Router) resolveAndDelete(ctx context.Context, desc registry.Descriptor, rawID string, id int64, opts storagemodels.DeleteOptions) (storagemodels.Record, error) {
	rels := registry.DependentsOf(desc.Table)

	var counts []dserrors.DependentCount
	var withDependents []registry.Relationship
	for _, rel := range rels {
		n, err := r.tabular.CountWhere(ctx, rel.DependentTable, rel.ForeignKey, id)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			counts = append(counts, dserrors.DependentCount{Table: rel.DependentTable, Count: n})
			withDependents = append(withDependents, rel)
		}
	}

	switch {
	case opts.Cascade:
		return r.deleteWithPolicy(ctx, desc, id, withDependents, func(ctx context.Context, tx datastore.TabularTx, rel registry.Relationship) error {
			_, err := tx.DeleteWhere(ctx, rel.DependentTable, rel.ForeignKey, id)
			return err
		})

	case opts.Reassign:
		for _, rel := range withDependents {
			if !rel.Reassignable {
				return nil, dserrors.NewValidationError("reassignTo",
					"dependents in "+rel.DependentTable+" cannot be reassigned; use cascade or delete them first")
			}
		}
		var newValue any
		if opts.ReassignTo != nil {
			newValue = *opts.ReassignTo
		}
		return r.deleteWithPolicy(ctx, desc, id, withDependents, func(ctx context.Context, tx datastore.TabularTx, rel registry.Relationship) error {
			_, err := tx.UpdateWhere(ctx, rel.DependentTable, rel.ForeignKey, newValue, rel.ForeignKey, id)
			return err
		})

	case len(counts) > 0:
		return nil, dserrors.NewDependentsError(string(desc.Type), rawID, counts)

	default:
		return r.tabular.Delete(ctx, desc.Table, desc.IDColumn, id)
	}
}

// deleteWithPolicy applies the per-edge mutation to every dependent edge and
// then deletes the target row, all inside one transaction.
func (r *Router) deleteWithPolicy(ctx context.Context, desc registry.Descriptor, id int64, rels []registry.Relationship, mutate func(context.Context, datastore.TabularTx, registry.Relationship) error) (storagemodels.Record, error) {
	var target storagemodels.Record
	err := r.tabular.WithTx(ctx, func(tx datastore.TabularTx) error {
		for _, rel := range rels {
			if err := mutate(ctx, tx, rel); err != nil {
				return err
			}
		}
		var err error
		target, err = tx.Delete(ctx, desc.Table, desc.IDColumn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}
