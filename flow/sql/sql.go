// Package sql adapts database/sql queries and statements to sequence
// pipelines. Query results are read eagerly into memory, so the resulting
// sequences are multi-pass and bidirectional and hold no open connection.
package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lguimbarda/seqflow/flow/core"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query executes query and scans every row into a View, in result order.
// A scan failure aborts the read and is returned with the row number.
func Query[T any](ctx context.Context, db *sql.DB, query string, scanner Scanner[T], args ...any) (core.View[T], error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return core.View[T]{}, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		value, err := scanner(rows)
		if err != nil {
			return core.View[T]{}, fmt.Errorf("scan row %d: %w", len(items), err)
		}
		items = append(items, value)
	}
	if err := rows.Err(); err != nil {
		return core.View[T]{}, fmt.Errorf("query: %w", err)
	}
	return core.FromSlice(items), nil
}

// QueryRow executes a query expecting a single row.
func QueryRow[T any](ctx context.Context, db *sql.DB, query string, scanner func(*sql.Row) (T, error), args ...any) core.Result[T] {
	value, err := scanner(db.QueryRowContext(ctx, query, args...))
	return core.NewResult(value, err)
}

// ExecResult contains the result of an exec operation.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
	Statements   int
}

// Exec creates a Terminator stage that executes statement once per element,
// inside a single transaction. binder converts each element to the
// statement's arguments. Any failure rolls the transaction back; the
// returned result then carries the error and the counts reached so far.
func Exec[T any](ctx context.Context, db *sql.DB, statement string, binder func(T) []any) core.Stage[T, core.Result[ExecResult]] {
	return core.Terminate("exec", func(s core.Sequence[T]) core.Result[ExecResult] {
		var res ExecResult
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return core.NewResult(res, fmt.Errorf("begin: %w", err))
		}
		stmt, err := tx.PrepareContext(ctx, statement)
		if err != nil {
			return core.NewResult(res, rollback(tx, fmt.Errorf("prepare: %w", err)))
		}
		defer stmt.Close()

		for v := range core.Values(s) {
			r, err := stmt.ExecContext(ctx, binder(v)...)
			if err != nil {
				return core.NewResult(res, rollback(tx, fmt.Errorf("exec statement %d: %w", res.Statements, err)))
			}
			res.Statements++
			if n, err := r.RowsAffected(); err == nil {
				res.RowsAffected += n
			}
			if id, err := r.LastInsertId(); err == nil {
				res.LastInsertId = id
			}
		}
		if err := tx.Commit(); err != nil {
			return core.NewResult(res, fmt.Errorf("commit: %w", err))
		}
		return core.Ok(res)
	})
}

func rollback(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
	}
	return err
}
