// Package metrics describes one ordering run as Prometheus metrics, written
// out in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/nagorder/internal/nag"
)

const namespace = "nagorder"

// Recorder holds the metrics of a run on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	nodes            prometheus.Gauge
	edges            prometheus.Gauge
	components       prometheus.Gauge
	cyclicComponents prometheus.Gauge
	componentSize    prometheus.Histogram
	planSteps        prometheus.Gauge
	scheduleDuration prometheus.Gauge
}

// NewRecorder creates a Recorder with every metric registered.
func NewRecorder() *Recorder {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}
	r := &Recorder{
		registry:         prometheus.NewRegistry(),
		nodes:            gauge("nodes", "Number of nodes in the action graph."),
		edges:            gauge("edges", "Number of edges in the action graph."),
		components:       gauge("components", "Number of strongly connected components."),
		cyclicComponents: gauge("cyclic_components", "Number of components that contain a cycle."),
		componentSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "component_size",
			Help:      "Members per strongly connected component.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1 to 128
		}),
		planSteps:        gauge("plan_steps", "Number of steps in the linearised plan."),
		scheduleDuration: gauge("schedule_duration_seconds", "Time spent finding and ordering components."),
	}
	r.registry.MustRegister(
		r.nodes, r.edges, r.components, r.cyclicComponents,
		r.componentSize, r.planSteps, r.scheduleDuration,
	)
	return r
}

// ObserveGraph records the size of g.
func (r *Recorder) ObserveGraph(g *nag.Graph) {
	r.nodes.Set(float64(g.NodeCount()))
	r.edges.Set(float64(g.EdgeCount()))
}

// ObserveComponents records the component ordering and how long it took.
func (r *Recorder) ObserveComponents(sorted nag.SortedStronglyConnectedComponents, took time.Duration) {
	cyclic := 0
	for _, c := range sorted {
		r.componentSize.Observe(float64(len(c.Nodes)))
		if c.IsCycle() {
			cyclic++
		}
	}
	r.components.Set(float64(len(sorted)))
	r.cyclicComponents.Set(float64(cyclic))
	r.scheduleDuration.Set(took.Seconds())
}

// ObservePlan records the number of planned steps.
func (r *Recorder) ObservePlan(steps int) {
	r.planSteps.Set(float64(steps))
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every metric to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
