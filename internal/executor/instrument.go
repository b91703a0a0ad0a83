package executor

import (
	"context"
	"errors"
	"time"

	"github.com/dame620/firstbackjhipstergradle/internal/codec"
	"github.com/dame620/firstbackjhipstergradle/internal/query"
	"github.com/dame620/firstbackjhipstergradle/internal/sqlerr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Metrics holds the collectors recorded by Instrumented.
type Metrics struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewMetrics creates the statement collectors and registers them on reg
// when reg is not nil.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sql",
			Name:      "statement_duration_seconds",
			Help:      "Duration of SQL statements by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "status"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sql",
			Name:      "statement_errors_total",
			Help:      "Failed SQL statements by operation and error code.",
		}, []string{"operation", "code"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.duration, m.failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(op string, took time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
		m.failures.WithLabelValues(op, string(sqlerr.ErrCode(err))).Inc()
	}
	m.duration.WithLabelValues(op, status).Observe(took.Seconds())
}

// observeAborted records a statement stopped by its row callback. The
// database did not fail, so the error counter is left alone.
func (m *Metrics) observeAborted(op string, took time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(op, "aborted").Observe(took.Seconds())
}

// Instrumented decorates an Executor with structured logging, slow
// statement warnings and optional Prometheus metrics.
type Instrumented struct {
	next    Executor
	logger  zerolog.Logger
	metrics *Metrics
	slow    time.Duration
}

// Instrument wraps next. A zero slow threshold disables slow-statement warnings
// and a nil metrics disables metric collection.
func Instrument(next Executor, logger zerolog.Logger, metrics *Metrics, slow time.Duration) *Instrumented {
	return &Instrumented{
		next:    next,
		logger:  logger.With().Str("component", "executor").Str("dialect", next.Dialect().Name()).Logger(),
		metrics: metrics,
		slow:    slow,
	}
}

func (i *Instrumented) Dialect() query.Dialect { return i.next.Dialect() }

func (i *Instrumented) Query(ctx context.Context, sql string, args []any, fn func(codec.Row) error) error {
	start := time.Now()
	rows := 0
	var fnErr error
	err := i.next.Query(ctx, sql, args, func(r codec.Row) error {
		rows++
		fnErr = fn(r)
		return fnErr
	})
	took := time.Since(start)

	if fnErr != nil {
		i.metrics.observeAborted("query", took)
		i.logger.Debug().Err(fnErr).Str("sql", sql).Dur("duration", took).Int("rows", rows).Msg("query stopped by row handler")
		return err
	}
	i.metrics.observe("query", took, err)
	i.log(sql, took, err).Int("rows", rows).Msg("query executed")
	return err
}

func (i *Instrumented) Exec(ctx context.Context, sql string, args []any) (int64, error) {
	start := time.Now()
	affected, err := i.next.Exec(ctx, sql, args)
	took := time.Since(start)

	i.metrics.observe("exec", took, err)
	i.log(sql, took, err).Int64("affected", affected).Msg("statement executed")
	return affected, err
}

func (i *Instrumented) log(sql string, took time.Duration, err error) *zerolog.Event {
	var ev *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, context.Canceled):
		ev = i.logger.Warn().Err(err)
	case i.slow > 0 && took >= i.slow:
		ev = i.logger.Warn().Bool("slow", true)
	default:
		ev = i.logger.Debug()
	}
	return ev.Str("sql", sql).Dur("duration", took)
}
