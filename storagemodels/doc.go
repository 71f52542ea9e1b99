/*
Package storagemodels defines the shared data shapes passed between the
routing layer and the store implementations.

The central type is Record, a field-name-to-value map used for both tabular
rows and documents; ResultSet carries the per-store and combined listings;
DeleteOptions and StoreTarget carry the caller-selected policies for delete
and create.

IdentityCandidates implements the identity reconciliation attempt order for
document-store lookups (integer first, then verbatim string), used by every
keyed document-store operation.
*/
package storagemodels
