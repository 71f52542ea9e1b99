/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

// Package mock provides in-memory implementations of the store interfaces for testing
package mock

import (
	"context"
	"sync"

	"github.com/campushub/dualstore/datastore"
	"github.com/campushub/dualstore/storagemodels"
)

// TabularStore is an in-memory implementation of datastore.TabularStore for
// testing. Identity assignment mimics the real store: each table keeps a
// serial counter for its identity column.
type TabularStore struct {
	mu        sync.RWMutex
	idColumns map[string]string
	tables    map[string][]storagemodels.Record
	nextID    map[string]int64
	listCalls map[string]int
	listErr   error
}

// NewTabularStore creates an empty mock tabular store. idColumns maps each
// table name to its identity column.
func NewTabularStore(idColumns map[string]string) *TabularStore {
	return &TabularStore{
		idColumns: idColumns,
		tables:    make(map[string][]storagemodels.Record),
		nextID:    make(map[string]int64),
		listCalls: make(map[string]int),
	}
}

// WithListError makes List operations return an error
func (m *TabularStore) WithListError(err error) *TabularStore {
	m.listErr = err
	return m
}

// Seed inserts fixture rows, assigning identities to rows that lack one.
func (m *TabularStore) Seed(table string, recs ...storagemodels.Record) *TabularStore {
	for _, rec := range recs {
		if _, err := m.Insert(context.Background(), table, rec); err != nil {
			panic(err)
		}
	}
	return m
}

// ListCalls reports how many times List ran for the table; reader tests use
// it to verify secondary lookups stay bounded.
func (m *TabularStore) ListCalls(table string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listCalls[table]
}

// Rows returns a copy of the table's current rows.
func (m *TabularStore) Rows(table string) []storagemodels.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.tables[table])
}

// List returns every row in the table.
func (m *TabularStore) List(ctx context.Context, table string) ([]storagemodels.Record, error) {
	m.mu.Lock()
	m.listCalls[table]++
	m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.tables[table]), nil
}

// Insert adds a row, assigning the next serial identity when the payload
// carries none.
func (m *TabularStore) Insert(ctx context.Context, table string, rec storagemodels.Record) (storagemodels.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := rec.Clone()
	if idCol, ok := m.idColumns[table]; ok {
		if supplied, has := stored[idCol]; has {
			if n, isNum := asInt64(supplied); isNum && n >= m.nextID[table] {
				m.nextID[table] = n + 1
			}
		} else {
			if m.nextID[table] == 0 {
				m.nextID[table] = 1
			}
			stored[idCol] = m.nextID[table]
			m.nextID[table]++
		}
	}
	m.tables[table] = append(m.tables[table], stored)
	return stored.Clone(), nil
}

// Update merges the changed columns into the matching row. Returns nil when
// no row matched.
func (m *TabularStore) Update(ctx context.Context, table, idColumn string, id int64, changes storagemodels.Record) (storagemodels.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.tables[table] {
		if n, ok := asInt64(rec[idColumn]); ok && n == id {
			for k, v := range changes {
				rec[k] = v
			}
			return rec.Clone(), nil
		}
	}
	return nil, nil
}

// Delete removes the matching row. Returns nil when no row matched.
func (m *TabularStore) Delete(ctx context.Context, table, idColumn string, id int64) (storagemodels.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteLocked(table, idColumn, id), nil
}

func (m *TabularStore) deleteLocked(table, idColumn string, id int64) storagemodels.Record {
	rows := m.tables[table]
	for i, rec := range rows {
		if n, ok := asInt64(rec[idColumn]); ok && n == id {
			m.tables[table] = append(rows[:i:i], rows[i+1:]...)
			return rec.Clone()
		}
	}
	return nil
}

// CountWhere counts rows whose column equals value.
func (m *TabularStore) CountWhere(ctx context.Context, table, column string, value any) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, rec := range m.tables[table] {
		if looseEqual(rec[column], value) {
			count++
		}
	}
	return count, nil
}

// WithTx runs fn against the store directly. The mock provides the
// transaction surface, not isolation; tests that need rollback behavior use
// the real store.
func (m *TabularStore) WithTx(ctx context.Context, fn func(tx datastore.TabularTx) error) error {
	return fn(&mockTx{store: m})
}

type mockTx struct {
	store *TabularStore
}

func (t *mockTx) Delete(ctx context.Context, table, idColumn string, id int64) (storagemodels.Record, error) {
	return t.store.Delete(ctx, table, idColumn, id)
}

func (t *mockTx) DeleteWhere(ctx context.Context, table, column string, value any) (int64, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	rows := t.store.tables[table]
	kept := rows[:0]
	var removed int64
	for _, rec := range rows {
		if looseEqual(rec[column], value) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	t.store.tables[table] = kept
	return removed, nil
}

func (t *mockTx) UpdateWhere(ctx context.Context, table, setColumn string, setValue any, whereColumn string, whereValue any) (int64, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	var changed int64
	for _, rec := range t.store.tables[table] {
		if looseEqual(rec[whereColumn], whereValue) {
			rec[setColumn] = setValue
			changed++
		}
	}
	return changed, nil
}

func cloneAll(recs []storagemodels.Record) []storagemodels.Record {
	out := make([]storagemodels.Record, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Clone())
	}
	return out
}
