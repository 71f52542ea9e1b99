/*
Package mongodoc implements datastore.DocumentStore on MongoDB.

The store is constructed unconnected and bound to a database handle once a
connect-retry loop succeeds, so the rest of the system can boot and serve
while the document store is still coming up. Calls made before the handle is
bound fail with a store-unavailable error.

Keyed operations (FindByID, UpdateByID, DeleteByID) take the identity
reconciler's candidate list: the identity field carries no enforced type in
the store, so a lookup is attempted once per candidate, in order, and the
first match wins.
*/
package mongodoc
