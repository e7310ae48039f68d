package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "hyperlath"
	metricsSubsystem = "core"

	statusSuccess = "success"
	statusError   = "error"
)

var (
	// AddNodeTotal counts AddNode/InsertNode calls by outcome.
	AddNodeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "add_node_total",
			Help:      "Total number of add node operations",
		},
		[]string{"status"},
	)

	// RemoveNodeTotal counts RemoveNode calls by outcome.
	RemoveNodeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "remove_node_total",
			Help:      "Total number of remove node operations",
		},
		[]string{"status"},
	)

	// AddEdgeTotal counts AddEdge/AddSurface calls by outcome.
	AddEdgeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "add_edge_total",
			Help:      "Total number of add hyperedge operations",
		},
		[]string{"status"},
	)

	// RemoveEdgeTotal counts RemoveEdge calls by outcome.
	RemoveEdgeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "remove_edge_total",
			Help:      "Total number of remove hyperedge operations",
		},
		[]string{"status"},
	)

	// MergeEdgesTotal counts MergeEdges calls by outcome.
	MergeEdgesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "merge_edges_total",
			Help:      "Total number of hyperedge merge operations",
		},
		[]string{"status"},
	)

	// CascadeRemovedEdgesTotal counts hyperedges dropped because RemoveNode emptied them.
	CascadeRemovedEdgesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "cascade_removed_edges_total",
			Help:      "Total number of hyperedges removed by vertex removal cascades",
		},
	)
)

// observe records the outcome of one operation on vec.
func observe(vec *prometheus.CounterVec, err error) {
	if err != nil {
		vec.WithLabelValues(statusError).Inc()

		return
	}
	vec.WithLabelValues(statusSuccess).Inc()
}
