// Package metrics provides Prometheus metrics for ebtreed
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for ebtreed
type Metrics struct {
	// gRPC request metrics
	GrpcRequestsTotal    *prometheus.CounterVec
	GrpcRequestDuration  *prometheus.HistogramVec
	GrpcRequestsInFlight prometheus.Gauge

	// Tree operation metrics
	TreeOperationsTotal   *prometheus.CounterVec
	TreeOperationDuration *prometheus.HistogramVec
	TreeCellsTotal        *prometheus.GaugeVec
	TreesTotal            prometheus.Gauge

	// Cell operation metrics
	InsertsTotal     prometheus.Counter
	DeletesTotal     prometheus.Counter
	LookupsTotal     prometheus.Counter
	RangeQueriesTotal prometheus.Counter

	// Duplicate-key metrics
	DupGroupInsertsTotal prometheus.Counter
	UniqueRejectsTotal   prometheus.Counter

	// Server metrics
	ServerUptimeSeconds prometheus.Gauge
	ServerStartTime     time.Time
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	// gRPC request metrics
	m.GrpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ebtreed_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "status"},
	)

	m.GrpcRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ebtreed_grpc_request_duration_seconds",
			Help:    "Duration of gRPC requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	m.GrpcRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ebtreed_grpc_requests_in_flight",
			Help: "Number of gRPC requests currently being processed",
		},
	)

	// Tree operation metrics
	m.TreeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ebtreed_tree_operations_total",
			Help: "Total number of tree operations",
		},
		[]string{"operation", "status"},
	)

	m.TreeOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ebtreed_tree_operation_duration_seconds",
			Help:    "Duration of tree operations in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"operation"},
	)

	m.TreeCellsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ebtreed_tree_cells_total",
			Help: "Number of cells currently held by a named tree",
		},
		[]string{"tree"},
	)

	m.TreesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ebtreed_trees_total",
			Help: "Number of named trees currently registered",
		},
	)

	// Cell operation metrics
	m.InsertsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ebtreed_inserts_total",
			Help: "Total number of cell inserts",
		},
	)

	m.DeletesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ebtreed_deletes_total",
			Help: "Total number of cell deletes",
		},
	)

	m.LookupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ebtreed_lookups_total",
			Help: "Total number of point lookups (Lookup, LookupGE, LookupLE)",
		},
	)

	m.RangeQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ebtreed_range_queries_total",
			Help: "Total number of ordered range walks",
		},
	)

	// Duplicate-key metrics
	m.DupGroupInsertsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ebtreed_dup_group_inserts_total",
			Help: "Total number of inserts that landed in an existing duplicate-key group",
		},
	)

	m.UniqueRejectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ebtreed_unique_rejects_total",
			Help: "Total number of inserts rejected by a unique-keyed tree",
		},
	)

	// Server metrics
	m.ServerUptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ebtreed_server_uptime_seconds",
			Help: "Server uptime in seconds",
		},
	)

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime periodically updates the server uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.ServerUptimeSeconds.Set(time.Since(m.ServerStartTime).Seconds())
	}
}

// RecordGrpcRequest records a gRPC request with its status
func (m *Metrics) RecordGrpcRequest(method string, status string, duration time.Duration) {
	m.GrpcRequestsTotal.WithLabelValues(method, status).Inc()
	m.GrpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordTreeOperation records a tree operation
func (m *Metrics) RecordTreeOperation(operation string, status string, duration time.Duration) {
	m.TreeOperationsTotal.WithLabelValues(operation, status).Inc()
	m.TreeOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateTreeStats updates the per-tree cell gauge and the named-tree
// count.
func (m *Metrics) UpdateTreeStats(tree string, cellCount int, treesTotal int) {
	m.TreeCellsTotal.WithLabelValues(tree).Set(float64(cellCount))
	m.TreesTotal.Set(float64(treesTotal))
}
