/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package dualstore

import (
	"context"
	"strings"

	"github.com/campushub/dualstore/registry"
	"github.com/campushub/dualstore/storagemodels"
)

// resolveTabularLabels attaches human-readable labels for foreign references
// on tabular listing rows: one secondary full-table query per distinct
// reference column, then an in-memory join. The secondary query count is a
// small constant per listing call regardless of row count.
func (r *Router) resolveTabularLabels(ctx context.Context, t registry.EntityType, rows []storagemodels.Record) {
	for _, rule := range registry.LabelRules(t) {
		refRows, err := r.tabular.List(ctx, rule.Table)
		if err != nil {
			r.log.Warn("label resolution degraded",
				"entity_type", string(t), "table", rule.Table, "error", err)
			continue
		}
		attachLabels(rows, rule, buildLabelIndex(refRows, rule))
	}
}

// resolveDocumentLabels performs the same resolution for document-side
// listings, against the document store's own copy of the referenced
// collection. The two stores' copies may diverge, so this never reuses the
// tabular index.
func (r *Router) resolveDocumentLabels(ctx context.Context, t registry.EntityType, docs []storagemodels.Record) {
	for _, rule := range registry.LabelRules(t) {
		if rule.Collection == "" {
			continue
		}
		refDocs, err := r.document.List(ctx, rule.Collection)
		if err != nil {
			r.log.Warn("document label resolution degraded",
				"entity_type", string(t), "collection", rule.Collection, "error", err)
			continue
		}
		attachLabels(docs, rule, buildLabelIndex(refDocs, rule))
	}
}

// buildLabelIndex maps referenced identity to its concatenated label.
func buildLabelIndex(refRows []storagemodels.Record, rule registry.LabelRule) map[int64]string {
	index := make(map[int64]string, len(refRows))
	for _, ref := range refRows {
		id, ok := asInt64(ref[rule.IDColumn])
		if !ok {
			continue
		}
		parts := make([]string, 0, len(rule.NameColumns))
		for _, col := range rule.NameColumns {
			if s, ok := asString(ref[col]); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			index[id] = strings.Join(parts, " ")
		}
	}
	return index
}

func attachLabels(rows []storagemodels.Record, rule registry.LabelRule, index map[int64]string) {
	for _, row := range rows {
		id, ok := asInt64(row[rule.RefColumn])
		if !ok {
			continue
		}
		if label, found := index[id]; found {
			row[rule.LabelField] = label
		}
	}
}
