// Package pgxsource exposes PostgreSQL query results as observables.
package pgxsource

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/observable"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// FromQuery runs sql on every subscription and emits one value per row,
// converted by scan. The stream completes after the last row. Query, scan and
// iteration failures are delivered as errors. The query runs under a context
// cancelled by ctx or by the end of the subscription, so a downstream that
// stops early also cancels a query still in flight. Rows are closed when the
// subscription ends; disposing it from inside a callback stops the iteration.
func FromQuery[T any](ctx context.Context, q Querier, scan pgx.RowToFunc[T], sql string, args ...any) observable.Observable[T] {
	return observable.NewWithContext(func(lifetime context.Context, next func(T), fail func(error), complete func()) observable.Cleanup {
		queryCtx, cancel := context.WithCancel(ctx)
		stop := context.AfterFunc(lifetime, cancel)
		release := func() {
			stop()
			cancel()
		}

		rows, err := q.Query(queryCtx, sql, args...)
		if err != nil {
			fail(errors.Wrap(err, "pgxsource: query failed"))
			return release
		}
		closeRows := func() {
			rows.Close()
			release()
		}

		for rows.Next() {
			if lifetime.Err() != nil {
				return closeRows
			}
			value, err := scan(rows)
			if err != nil {
				fail(errors.Wrap(err, "pgxsource: scan failed"))
				return closeRows
			}
			next(value)
		}
		if err := rows.Err(); err != nil {
			fail(errors.Wrap(err, "pgxsource: rows failed"))
			return closeRows
		}
		complete()
		return closeRows
	})
}
