// Package sql provides flowable adapters for database operations using
// database/sql. A query's row cursor advances only under outstanding
// demand, so the pull-driven protocol maps directly onto it: a subscriber
// that stops requesting stops the scan, and cancellation closes the cursor.
package sql

import (
	"context"
	"database/sql"

	"github.com/lguimbarda/min-reactive/reactive/core"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query creates a Flowable that executes the query on first demand and emits
// one scanned value per row. The row cursor is closed when the run
// terminates or is cancelled. Each Subscribe call executes the query again.
func Query[T any](ctx context.Context, db *sql.DB, query string, scan Scanner[T], args ...any) core.Flowable[T] {
	return core.EmitWithStop(func() (core.Step[T], func()) {
		var rows *sql.Rows
		step := func(down core.Sink[T], requested int64) (int64, bool) {
			if requested <= 0 {
				return 0, false
			}
			if rows == nil {
				r, err := db.QueryContext(ctx, query, args...)
				if err != nil {
					down.Error(err)
					return 0, true
				}
				rows = r
			}
			var emitted int64
			for emitted < requested {
				if !rows.Next() {
					if err := rows.Err(); err != nil {
						down.Error(err)
					} else {
						down.Complete()
					}
					return emitted, true
				}
				value, err := scan(rows)
				if err != nil {
					down.Error(err)
					return emitted, true
				}
				down.Next(value)
				emitted++
			}
			return emitted, false
		}
		stop := func() {
			if rows != nil {
				rows.Close()
			}
		}
		return step, stop
	})
}

// QueryRow creates a Flowable that executes a query expecting a single row
// and emits the scanned value, then completes.
func QueryRow[T any](ctx context.Context, db *sql.DB, query string, scan func(*sql.Row) (T, error), args ...any) core.Flowable[T] {
	return core.Emit(func() core.Step[T] {
		return func(down core.Sink[T], requested int64) (int64, bool) {
			if requested <= 0 {
				return 0, false
			}
			value, err := scan(db.QueryRowContext(ctx, query, args...))
			if err != nil {
				down.Error(err)
				return 0, true
			}
			down.Next(value)
			down.Complete()
			return 1, true
		}
	})
}

// Transaction creates a Flowable that runs fn inside a transaction and emits
// its result. The transaction commits on success and rolls back if fn returns
// an error; either way the run terminates after one signal.
func Transaction[T any](ctx context.Context, db *sql.DB, fn func(*sql.Tx) (T, error)) core.Flowable[T] {
	return core.Emit(func() core.Step[T] {
		return func(down core.Sink[T], requested int64) (int64, bool) {
			if requested <= 0 {
				return 0, false
			}
			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				down.Error(err)
				return 0, true
			}
			value, err := fn(tx)
			if err != nil {
				tx.Rollback()
				down.Error(err)
				return 0, true
			}
			if err := tx.Commit(); err != nil {
				down.Error(err)
				return 0, true
			}
			down.Next(value)
			down.Complete()
			return 1, true
		}
	})
}

// ExecResult contains the result of an exec operation.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
}

// Exec creates a Flowable that executes a statement and emits its result.
func Exec(ctx context.Context, db *sql.DB, query string, args ...any) core.Flowable[ExecResult] {
	return core.Emit(func() core.Step[ExecResult] {
		return func(down core.Sink[ExecResult], requested int64) (int64, bool) {
			if requested <= 0 {
				return 0, false
			}
			result, err := db.ExecContext(ctx, query, args...)
			if err != nil {
				down.Error(err)
				return 0, true
			}
			lastID, _ := result.LastInsertId()
			rowsAffected, _ := result.RowsAffected()
			down.Next(ExecResult{
				LastInsertId: lastID,
				RowsAffected: rowsAffected,
			})
			down.Complete()
			return 1, true
		}
	})
}
