// Package dbmetrics wraps database/sql with Prometheus instrumentation and
// carries transaction executors through context, keeping repositories unaware
// of whether they run inside a transaction or with metrics enabled.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/karimjl/DCB-AppointmentService/pkg/metrics"
)

// Default interval between connection pool stat samples
const defaultPoolStatsInterval = 15 * time.Second

// DB wraps *sql.DB, recording query latencies
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

// Wrap instruments the given database handle
func Wrap(db *sql.DB, m *metrics.Metrics, name string) *DB {
	return &DB{db: db, metrics: m, name: name}
}

// WrapWithDefault instruments the database handle and starts a background
// goroutine sampling connection pool stats until stopCh is closed
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, name)
	go wrapped.collectPoolStats(defaultPoolStatsInterval, stopCh)
	return wrapped
}

// ExecContext executes a query recording its latency
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("exec", time.Since(start))
	return res, err
}

// QueryContext executes a query recording its latency
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query", time.Since(start))
	return rows, err
}

// QueryRowContext executes a single-row query recording its latency
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query_row", time.Since(start))
	return row
}

// BeginTx starts a transaction whose statements are also instrumented
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &meteredTx{tx: tx, metrics: d.metrics}, nil
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.SetDBPoolStats(d.name, stats.OpenConnections, stats.Idle, stats.InUse)
		}
	}
}

// meteredTx instruments statements executed inside a transaction
type meteredTx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *meteredTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_exec", time.Since(start))
	return res, err
}

func (t *meteredTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query", time.Since(start))
	return rows, err
}

func (t *meteredTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query_row", time.Since(start))
	return row
}

func (t *meteredTx) Commit() error   { return t.tx.Commit() }
func (t *meteredTx) Rollback() error { return t.tx.Rollback() }
