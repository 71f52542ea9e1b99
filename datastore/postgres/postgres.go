/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	_ "github.com/lib/pq"

	"github.com/campushub/dualstore/datastore"
	dserrors "github.com/campushub/dualstore/errors"
	"github.com/campushub/dualstore/storagemodels"
)

// Store implements datastore.TabularStore on PostgreSQL via database/sql.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// New wraps an open database handle. The caller owns the handle's lifecycle;
// see Open for the usual way to get one.
func New(db *sql.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, log: logger}
}

// Open opens a pooled PostgreSQL handle for the given DSN. The connection is
// lazy; callers that need boot-time certainty should ping it themselves.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Ping verifies the connection is live.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// identPattern is the shape of every table and column name we will
// interpolate into SQL. Payload keys are caller-supplied, so anything else is
// rejected before it reaches a statement.
var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func checkIdent(name string) error {
	if !identPattern.MatchString(name) {
		return dserrors.NewValidationError(name, "invalid identifier")
	}
	return nil
}

// querier covers both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// List returns every row in the table.
func (s *Store) List(ctx context.Context, table string) ([]storagemodels.Record, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM %s`, table))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Insert adds one row and returns it as stored, including the store-assigned
// identity.
func (s *Store) Insert(ctx context.Context, table string, rec storagemodels.Record) (storagemodels.Record, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, dserrors.NewValidationError("", "empty insert payload")
	}

	cols := sortedKeys(rec)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		if err := checkIdent(c); err != nil {
			return nil, err
		}
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = rec[c]
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING *`,
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	return queryOne(ctx, s.db, query, args...)
}

// Update applies the changed columns to the row with the given identity.
// Returns nil when no row matched.
func (s *Store) Update(ctx context.Context, table, idColumn string, id int64, changes storagemodels.Record) (storagemodels.Record, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}
	if err := checkIdent(idColumn); err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, dserrors.NewValidationError("", "empty update payload")
	}

	cols := sortedKeys(changes)
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	args = append(args, id)
	for i, c := range cols {
		if err := checkIdent(c); err != nil {
			return nil, err
		}
		sets[i] = fmt.Sprintf("%s = $%d", c, i+2)
		args = append(args, changes[c])
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING *`,
		table, strings.Join(sets, ", "), idColumn)
	return queryOne(ctx, s.db, query, args...)
}

// Delete removes the row with the given identity. Returns nil when no row
// matched.
func (s *Store) Delete(ctx context.Context, table, idColumn string, id int64) (storagemodels.Record, error) {
	return deleteRow(ctx, s.db, table, idColumn, id)
}

// CountWhere counts rows whose column equals value.
func (s *Store) CountWhere(ctx context.Context, table, column string, value any) (int, error) {
	if err := checkIdent(table); err != nil {
		return 0, err
	}
	if err := checkIdent(column); err != nil {
		return 0, err
	}
	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, table, column)
	if err := s.db.QueryRowContext(ctx, query, value).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s.%s: %w", table, column, err)
	}
	return n, nil
}

// WithTx runs fn inside one transaction, committing on nil and rolling back
// otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(tx datastore.TabularTx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(&tx{tx: sqlTx}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			s.log.Error("rollback failed", "error", rbErr)
		}
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// tx implements datastore.TabularTx over *sql.Tx.
type tx struct {
	tx *sql.Tx
}

func (t *tx) Delete(ctx context.Context, table, idColumn string, id int64) (storagemodels.Record, error) {
	return deleteRow(ctx, t.tx, table, idColumn, id)
}

func (t *tx) DeleteWhere(ctx context.Context, table, column string, value any) (int64, error) {
	if err := checkIdent(table); err != nil {
		return 0, err
	}
	if err := checkIdent(column); err != nil {
		return 0, err
	}
	res, err := t.tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, column), value)
	if err != nil {
		return 0, fmt.Errorf("delete from %s where %s: %w", table, column, err)
	}
	return res.RowsAffected()
}

func (t *tx) UpdateWhere(ctx context.Context, table, setColumn string, setValue any, whereColumn string, whereValue any) (int64, error) {
	for _, ident := range []string{table, setColumn, whereColumn} {
		if err := checkIdent(ident); err != nil {
			return 0, err
		}
	}
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`, table, setColumn, whereColumn)
	res, err := t.tx.ExecContext(ctx, query, setValue, whereValue)
	if err != nil {
		return 0, fmt.Errorf("update %s.%s: %w", table, setColumn, err)
	}
	return res.RowsAffected()
}

func deleteRow(ctx context.Context, q querier, table, idColumn string, id int64) (storagemodels.Record, error) {
	if err := checkIdent(table); err != nil {
		return nil, err
	}
	if err := checkIdent(idColumn); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING *`, table, idColumn)
	return queryOne(ctx, q, query, id)
}

// queryOne runs a statement expected to return at most one row and scans it
// into a Record. Returns nil when the statement matched nothing.
func queryOne(ctx context.Context, q querier, query string, args ...any) (storagemodels.Record, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", strings.Fields(query)[0], err)
	}
	defer rows.Close()

	recs, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0], nil
}

// scanRecords drains a result set into generic records. Column names are not
// known statically, so each row is scanned through a slice of any.
func scanRecords(rows *sql.Rows) ([]storagemodels.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	var out []storagemodels.Record
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		rec := make(storagemodels.Record, len(cols))
		for i, c := range cols {
			rec[c] = normalize(values[i])
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// normalize maps driver-level values to the shapes the routing layer expects;
// lib/pq hands text columns back as []byte.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func sortedKeys(rec storagemodels.Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
