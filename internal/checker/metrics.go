package checker

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const (
	resultValid   = "valid"
	resultInvalid = "invalid"
	resultError   = "error"
)

var (
	checksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fcsr_checks_total",
			Help: "Number of workspace checks by result.",
		},
		[]string{"result"},
	)
	checkWarningsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fcsr_check_warnings_total",
			Help: "Number of warnings reported by kind.",
		},
		[]string{"kind"},
	)

	workspacePackages = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fcsr_workspace_packages",
			Help: "Number of packages, root included, in the last checked workspace.",
		},
	)
	internalDependencies = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fcsr_internal_dependencies",
			Help: "Number of validated internal dependencies in the last checked workspace.",
		},
	)
	dependencyGraphValid = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fcsr_dependency_graph_valid",
			Help: "1 if the last dependency graph was valid, 0 otherwise.",
		},
	)

	checkDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fcsr_check_duration_seconds",
			Help:    "Time taken to check a workspace.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	metrics.Registry.MustRegister(
		checksTotal,
		checkWarningsTotal,
		workspacePackages,
		internalDependencies,
		dependencyGraphValid,
		checkDuration,
	)
}

func recordResult(res Result) {
	if res.Valid() {
		checksTotal.WithLabelValues(resultValid).Inc()
		dependencyGraphValid.Set(1)
	} else {
		checksTotal.WithLabelValues(resultInvalid).Inc()
		dependencyGraphValid.Set(0)
	}
	workspacePackages.Set(float64(len(res.Graph.Nodes)))
	internalDependencies.Set(float64(res.Graph.EdgeCount()))

	for kind, n := range res.Report.CountByKind() {
		checkWarningsTotal.WithLabelValues(string(kind)).Add(float64(n))
	}
}

// WriteMetrics writes every registered metric to path in the node_exporter
// textfile collector format.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, metrics.Registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
