/*
Package postgres implements datastore.TabularStore on PostgreSQL.

The store works over database/sql with the lib/pq driver and is written
schema-generically: tables and columns arrive at runtime from the schema
registry and the caller's payload, so rows are scanned into generic records
rather than typed structs. Every identifier that reaches a statement is
validated first; values always travel as bound parameters.

WithTx provides the one transaction discipline the routing layer requires:
dependent-row mutations and the target-row delete of a policied delete run as
a single transaction and are never left half-applied.
*/
package postgres
