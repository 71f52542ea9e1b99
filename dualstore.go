/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package dualstore

import (
	"log/slog"

	"github.com/campushub/dualstore/datastore"
)

// Router is the routing/reconciliation layer: it presents entity-type-generic
// operations over the two heterogeneous stores and decides, per operation,
// which store (or stores) to touch.
//
// A Router is request-scoped and stateless between calls; the only shared
// state is the pooled store connections injected at construction. It is safe
// for concurrent use.
type Router struct {
	tabular  datastore.TabularStore
	document datastore.DocumentStore
	log      *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger; defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.log = logger
		}
	}
}

// New constructs a Router over the two injected stores. Both stores must be
// non-nil; the document store may be in its not-yet-connected state, in which
// case reads against it degrade to empty results and writes fail fast.
func New(tabular datastore.TabularStore, document datastore.DocumentStore, opts ...Option) *Router {
	r := &Router{
		tabular:  tabular,
		document: document,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
