/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"fmt"
	"sync"

	dserrors "github.com/campushub/dualstore/errors"
	"github.com/campushub/dualstore/storagemodels"
)

// DocumentStore is an in-memory implementation of datastore.DocumentStore
// for testing.
//
// Identity matching is typed the way the real document store behaves: a
// numeric candidate only matches numerically stored identity values, a string
// candidate only matches string-stored ones. That keeps the identifier
// reconciler's two-attempt behavior observable in tests.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string][]storagemodels.Record
	insertSeq   int64
	unavailable bool
	listCalls   map[string]int
	listErr     error
}

// NewDocumentStore creates an empty mock document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		collections: make(map[string][]storagemodels.Record),
		listCalls:   make(map[string]int),
	}
}

// WithListError makes List operations return an error
func (m *DocumentStore) WithListError(err error) *DocumentStore {
	m.listErr = err
	return m
}

// SetUnavailable toggles the never-connected state: every call fails with a
// store-unavailable error while set.
func (m *DocumentStore) SetUnavailable(unavailable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unavailable = unavailable
}

// Seed inserts fixture documents verbatim; identity fields keep whatever
// type the fixture gives them.
func (m *DocumentStore) Seed(collection string, docs ...storagemodels.Record) *DocumentStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range docs {
		m.collections[collection] = append(m.collections[collection], doc.Clone())
	}
	return m
}

// ListCalls reports how many times List ran for the collection.
func (m *DocumentStore) ListCalls(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listCalls[collection]
}

// Docs returns a copy of the collection's current documents.
func (m *DocumentStore) Docs(collection string) []storagemodels.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.collections[collection])
}

func (m *DocumentStore) check() error {
	if m.unavailable {
		return dserrors.NewStoreUnavailableError("document")
	}
	return nil
}

// List returns every document in the collection.
func (m *DocumentStore) List(ctx context.Context, collection string) ([]storagemodels.Record, error) {
	m.mu.Lock()
	m.listCalls[collection]++
	err := m.check()
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if m.listErr != nil {
		return nil, m.listErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneAll(m.collections[collection]), nil
}

// Insert adds one document and assigns an internal identifier.
func (m *DocumentStore) Insert(ctx context.Context, collection string, rec storagemodels.Record) (storagemodels.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(); err != nil {
		return nil, err
	}

	m.insertSeq++
	stored := rec.Clone()
	stored[storagemodels.DocumentInternalID] = fmt.Sprintf("oid-%d", m.insertSeq)
	m.collections[collection] = append(m.collections[collection], stored)
	return stored.Clone(), nil
}

// FindByID returns the first document matching a candidate, or nil.
func (m *DocumentStore) FindByID(ctx context.Context, collection, idField string, candidates []any) (storagemodels.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.check(); err != nil {
		return nil, err
	}

	if doc := m.findLocked(collection, idField, candidates); doc != nil {
		return doc.Clone(), nil
	}
	return nil, nil
}

// UpdateByID applies the changed fields to the first matching document, or
// returns nil. It never inserts.
func (m *DocumentStore) UpdateByID(ctx context.Context, collection, idField string, candidates []any, changes storagemodels.Record) (storagemodels.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(); err != nil {
		return nil, err
	}

	doc := m.findLocked(collection, idField, candidates)
	if doc == nil {
		return nil, nil
	}
	for k, v := range changes {
		doc[k] = v
	}
	return doc.Clone(), nil
}

// DeleteByID removes the first matching document, or returns nil.
func (m *DocumentStore) DeleteByID(ctx context.Context, collection, idField string, candidates []any) (storagemodels.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check(); err != nil {
		return nil, err
	}

	docs := m.collections[collection]
	for _, cand := range candidates {
		for i, doc := range docs {
			if typedEqual(doc[idField], cand) {
				m.collections[collection] = append(docs[:i:i], docs[i+1:]...)
				return doc.Clone(), nil
			}
		}
	}
	return nil, nil
}

// findLocked walks the candidates in order; the first match wins.
func (m *DocumentStore) findLocked(collection, idField string, candidates []any) storagemodels.Record {
	for _, cand := range candidates {
		for _, doc := range m.collections[collection] {
			if typedEqual(doc[idField], cand) {
				return doc
			}
		}
	}
	return nil
}
