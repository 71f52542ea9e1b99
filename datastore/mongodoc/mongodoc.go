/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package mongodoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	dserrors "github.com/campushub/dualstore/errors"
	"github.com/campushub/dualstore/storagemodels"
)

// Store implements datastore.DocumentStore on MongoDB.
//
// A Store is constructed unconnected and bound to a live database handle
// whenever the connection succeeds, which may be well after boot. Until then
// every call fails with a store-unavailable error; callers on the read path
// degrade to empty results, callers on the write path fail fast.
type Store struct {
	log *slog.Logger

	mu sync.RWMutex
	db *mongo.Database
}

// New creates an unconnected Store.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{log: logger}
}

// Connect dials the document store and verifies it answers a ping.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client.Database(dbName), nil
}

// Bind attaches a live database handle. Safe to call from a connect-retry
// goroutine while requests are already flowing.
func (s *Store) Bind(db *mongo.Database) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = db
}

// Connected reports whether the store has a live handle.
func (s *Store) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db != nil
}

// Ping checks connectivity for health reporting.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.database()
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, readpref.Primary())
}

func (s *Store) database() (*mongo.Database, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, dserrors.NewStoreUnavailableError("document")
	}
	return s.db, nil
}

// List returns every document in the collection.
func (s *Store) List(ctx context.Context, collection string) ([]storagemodels.Record, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}
	cur, err := db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	out := make([]storagemodels.Record, 0, len(raw))
	for _, doc := range raw {
		out = append(out, fromBSON(doc))
	}
	return out, nil
}

// Insert adds one document and returns it with the store's internal
// identifier filled in.
func (s *Store) Insert(ctx context.Context, collection string, rec storagemodels.Record) (storagemodels.Record, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}
	res, err := db.Collection(collection).InsertOne(ctx, bson.M(rec))
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}
	stored := rec.Clone()
	stored[storagemodels.DocumentInternalID] = res.InsertedID
	return stored, nil
}

// FindByID returns the first document whose identity field matches a
// candidate, or nil when none do. Candidates are tried in order; the first
// hit wins.
func (s *Store) FindByID(ctx context.Context, collection, idField string, candidates []any) (storagemodels.Record, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}
	coll := db.Collection(collection)
	for _, cand := range candidates {
		var doc bson.M
		err := coll.FindOne(ctx, bson.M{idField: cand}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("find one in %s: %w", collection, err)
		}
		return fromBSON(doc), nil
	}
	return nil, nil
}

// UpdateByID applies the changed fields to the first matching document and
// returns it post-update, or nil when none matched. It never inserts.
func (s *Store) UpdateByID(ctx context.Context, collection, idField string, candidates []any, changes storagemodels.Record) (storagemodels.Record, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}
	coll := db.Collection(collection)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	for _, cand := range candidates {
		var doc bson.M
		err := coll.FindOneAndUpdate(ctx, bson.M{idField: cand}, bson.M{"$set": bson.M(changes)}, opts).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("update in %s: %w", collection, err)
		}
		return fromBSON(doc), nil
	}
	return nil, nil
}

// DeleteByID removes the first matching document and returns it, or nil when
// none matched.
func (s *Store) DeleteByID(ctx context.Context, collection, idField string, candidates []any) (storagemodels.Record, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}
	coll := db.Collection(collection)
	for _, cand := range candidates {
		var doc bson.M
		err := coll.FindOneAndDelete(ctx, bson.M{idField: cand}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("delete from %s: %w", collection, err)
		}
		return fromBSON(doc), nil
	}
	return nil, nil
}

// Replace truncates the collection and bulk-loads the given documents. Used
// by the bulk reset path only.
func (s *Store) Replace(ctx context.Context, collection string, docs []storagemodels.Record) error {
	db, err := s.database()
	if err != nil {
		return err
	}
	coll := db.Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("truncate %s: %w", collection, err)
	}
	if len(docs) == 0 {
		return nil
	}
	payload := make([]any, 0, len(docs))
	for _, doc := range docs {
		payload = append(payload, bson.M(doc))
	}
	if _, err := coll.InsertMany(ctx, payload); err != nil {
		return fmt.Errorf("bulk insert %s: %w", collection, err)
	}
	return nil
}
