package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/BIM-AvailabilityService/pkg/metrics"
)

// DBExecutor общий интерфейс для выполнения запросов (*sql.DB, *sql.Tx, *DB)
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// txContextKey ключ для хранения активной транзакции в контексте
type txContextKey struct{}

// WithTx кладет активную транзакцию в контекст
// Репозитории достают её через GetExecutor и выполняют запросы в рамках транзакции
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}

// SqlTxWrapper оборачивает *sql.Tx в TxExecutor
type SqlTxWrapper struct {
	Tx *sql.Tx
}

func (w *SqlTxWrapper) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return w.Tx.QueryRowContext(ctx, query, args...)
}

func (w *SqlTxWrapper) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return w.Tx.QueryContext(ctx, query, args...)
}

func (w *SqlTxWrapper) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return w.Tx.ExecContext(ctx, query, args...)
}

func (w *SqlTxWrapper) Commit() error   { return w.Tx.Commit() }
func (w *SqlTxWrapper) Rollback() error { return w.Tx.Rollback() }

// DB обертка над *sql.DB, публикующая метрики времени выполнения запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает *sql.DB в DB с метриками
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор
// статистики connection pool; сбор останавливается закрытием stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(stopCh chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBPoolOpenConnections.Set(float64(stats.OpenConnections))
			d.metrics.DBPoolInUse.Set(float64(stats.InUse))
			d.metrics.DBPoolIdle.Set(float64(stats.Idle))
			d.metrics.DBPoolWaitCount.Set(float64(stats.WaitCount))
		case <-stopCh:
			return
		}
	}
}

func (d *DB) observe(operation string, start time.Time, err error) {
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		d.metrics.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return result, err
}

// BeginTx начинает транзакцию; запросы внутри неё также попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricTx{tx: tx, metrics: d.metrics}, nil
}

// metricTx транзакция с метриками
type metricTx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *metricTx) observe(operation string, start time.Time, err error) {
	t.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		t.metrics.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (t *metricTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.observe("tx_query_row", start, nil)
	return row
}

func (t *metricTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.observe("tx_query", start, err)
	return rows, err
}

func (t *metricTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.observe("tx_exec", start, err)
	return result, err
}

func (t *metricTx) Commit() error   { return t.tx.Commit() }
func (t *metricTx) Rollback() error { return t.tx.Rollback() }
