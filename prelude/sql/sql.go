// Package sql turns database/sql queries into lazy lists.
//
// Rows are read one at a time as the consumer asks for them, so a query can
// be combined with lazy.Take or lazy.TakeWhile without reading the whole
// result set.
package sql

import (
	"context"
	"database/sql"

	"github.com/lguimbarda/min-prelude/prelude/lazy"
)

// DB is the subset of *sql.DB used here. *sql.Tx and *sql.Conn satisfy
// it too.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Scanner converts the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query creates a Stream of the rows returned by query. The query runs when
// the Stream is consumed. A scan error is emitted as an error Result and
// reading goes on with the next row.
func Query[T any](db DB, query string, scanner Scanner[T], args ...any) lazy.Stream[T] {
	return lazy.Generate(func(ctx context.Context, send func(lazy.Result[T]) bool) {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			send(lazy.Err[T](err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			value, err := scanner(rows)
			res := lazy.Ok(value)
			if err != nil {
				res = lazy.Err[T](err)
			}
			if !send(res) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			send(lazy.Err[T](err))
		}
	})
}

// QueryList runs query and returns every row, stopping at the first error.
func QueryList[T any](ctx context.Context, db DB, query string, scanner Scanner[T], args ...any) ([]T, error) {
	return lazy.Slice(ctx, Query(db, query, scanner, args...))
}

// QueryRow creates a single-element Stream from a query expected to return
// one row. No rows gives an error Result wrapping sql.ErrNoRows.
func QueryRow[T any](db DB, query string, scanner func(*sql.Row) (T, error), args ...any) lazy.Stream[T] {
	return lazy.Generate(func(ctx context.Context, send func(lazy.Result[T]) bool) {
		value, err := scanner(db.QueryRowContext(ctx, query, args...))
		if err != nil {
			send(lazy.Err[T](err))
			return
		}
		send(lazy.Ok(value))
	})
}

// Column scans a single-column row into a T.
func Column[T any](rows *sql.Rows) (T, error) {
	var v T
	err := rows.Scan(&v)
	return v, err
}

// Maps scans a row into a map keyed by column name.
func Maps(rows *sql.Rows) (map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	row := make(map[string]any, len(cols))
	for i, col := range cols {
		row[col] = values[i]
	}
	return row, nil
}

// ExecResult is the outcome of a statement.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
}

func exec(ctx context.Context, db DB, query string, args []any) (ExecResult, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return ExecResult{}, err
	}
	lastID, _ := result.LastInsertId()
	affected, _ := result.RowsAffected()
	return ExecResult{LastInsertId: lastID, RowsAffected: affected}, nil
}

// Exec creates a single-element Stream that runs a statement when consumed.
func Exec(db DB, query string, args ...any) lazy.Stream[ExecResult] {
	return lazy.Generate(func(ctx context.Context, send func(lazy.Result[ExecResult]) bool) {
		res, err := exec(ctx, db, query, args)
		if err != nil {
			send(lazy.Err[ExecResult](err))
			return
		}
		send(lazy.Ok(res))
	})
}

// ExecMany creates a Transformer that runs query once per input value.
// bind turns a value into the statement's arguments. A failed statement is
// emitted as an error Result and the next value is still processed, as is
// a panic in bind. opts size the output channel.
func ExecMany[T any](db DB, query string, bind func(T) []any, opts ...lazy.Option) lazy.Transformer[T, ExecResult] {
	return lazy.Transmit(func(ctx context.Context, in <-chan lazy.Result[T]) <-chan lazy.Result[ExecResult] {
		out := lazy.NewChannel[ExecResult](ctx, opts...)
		go func() {
			defer close(out)
			for res := range in {
				next := lazy.Err[ExecResult](res.Error())
				if res.IsValue() {
					next = execBound(ctx, db, query, bind, res.Value())
				}
				select {
				case <-ctx.Done():
					return
				case out <- next:
				}
			}
		}()
		return out
	})
}

// Transaction creates a single-element Stream that runs fn inside a
// transaction when consumed. The transaction is rolled back if fn fails
// and committed otherwise.
func Transaction[T any](db *sql.DB, fn func(*sql.Tx) (T, error)) lazy.Stream[T] {
	return lazy.Generate(func(ctx context.Context, send func(lazy.Result[T]) bool) {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			send(lazy.Err[T](err))
			return
		}
		value, err := fn(tx)
		if err != nil {
			_ = tx.Rollback()
			send(lazy.Err[T](err))
			return
		}
		if err := tx.Commit(); err != nil {
			send(lazy.Err[T](err))
			return
		}
		send(lazy.Ok(value))
	})
}

func execBound[T any](ctx context.Context, db DB, query string, bind func(T) []any, v T) lazy.Result[ExecResult] {
	args, err := lazy.Protect(func() []any { return bind(v) })
	if err != nil {
		return lazy.Err[ExecResult](err)
	}
	r, err := exec(ctx, db, query, args)
	if err != nil {
		return lazy.Err[ExecResult](err)
	}
	return lazy.Ok(r)
}
