// Package metrics exposes Prometheus counters for statement parsing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/insightdelivered/card-statement-parser/internal/extractor"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/insightdelivered/card-statement-parser/internal/parser"
)

const namespace = "statement_parser"

// Metrics owns a private registry so several instances can coexist in tests.
// It implements parser.Reporter.
type Metrics struct {
	registry *prometheus.Registry

	detected     *prometheus.CounterVec
	fields       *prometheus.CounterVec
	transactions *prometheus.HistogramVec
	extractions  *prometheus.CounterVec
	requests     *prometheus.CounterVec
	duration     prometheus.Histogram
}

var _ parser.Reporter = (*Metrics)(nil)

// New registers every collector, plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		detected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issuer_detected_total",
			Help:      "Statements attributed to each issuer.",
		}, []string{"issuer"}),
		fields: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_extractions_total",
			Help:      "Field extraction attempts by issuer, field and outcome (hit or miss).",
		}, []string{"issuer", "field", "outcome"}),
		transactions: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transactions_per_statement",
			Help:      "Number of transactions found per statement.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}, []string{"issuer"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pdf_extractions_total",
			Help:      "PDF text extractions by the method that succeeded.",
		}, []string{"method"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_requests_total",
			Help:      "Parse requests by HTTP status code.",
		}, []string{"code"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Time from upload received to response, in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.detected, m.fields, m.transactions, m.extractions, m.requests, m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Detected(issuer models.Issuer) {
	m.detected.WithLabelValues(string(issuer)).Inc()
}

func (m *Metrics) Extracted(issuer models.Issuer, field parser.Field, _ string) {
	m.fields.WithLabelValues(string(issuer), string(field), "hit").Inc()
}

func (m *Metrics) Missed(issuer models.Issuer, field parser.Field) {
	m.fields.WithLabelValues(string(issuer), string(field), "miss").Inc()
}

func (m *Metrics) Transactions(issuer models.Issuer, count int) {
	m.transactions.WithLabelValues(string(issuer)).Observe(float64(count))
}

// Extraction records which extraction path produced a document's text.
func (m *Metrics) Extraction(method extractor.Method) {
	m.extractions.WithLabelValues(string(method)).Inc()
}

// Request records a finished parse request.
func (m *Metrics) Request(code int, elapsed time.Duration) {
	m.requests.WithLabelValues(strconv.Itoa(code)).Inc()
	m.duration.Observe(elapsed.Seconds())
}
