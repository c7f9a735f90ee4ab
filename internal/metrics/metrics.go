// Package metrics mirrors simulator state into prometheus gauges.
package metrics

import (
	"fmt"

	"github.com/philipparndt/globesim/pkg/catheter"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "globesim"

// Recorder holds the simulator gauges in its own registry
type Recorder struct {
	registry   *prometheus.Registry
	threshold  float64
	moves      prometheus.Counter
	contacting prometheus.Gauge
	progress   prometheus.Gauge
	strength   *prometheus.GaugeVec
	hub        *prometheus.GaugeVec
}

// NewRecorder creates a recorder counting contact above threshold
func NewRecorder(threshold float64) *Recorder {
	r := &Recorder{
		registry:  prometheus.NewRegistry(),
		threshold: threshold,
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catheter_moves_total",
			Help:      "Number of recomputes of the electrode ring.",
		}),
		contacting: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "electrodes_contacting",
			Help:      "Electrodes whose signal is above the contact threshold.",
		}),
		progress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mapping_progress_ratio",
			Help:      "Mean electrode signal strength capped at 1.",
		}),
		strength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "electrode_signal_strength",
			Help:      "Contact signal strength per electrode.",
		}, []string{"electrode"}),
		hub: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catheter_hub_position",
			Help:      "Hub position per axis.",
		}, []string{"axis"}),
	}

	r.registry.MustRegister(r.moves, r.contacting, r.progress, r.strength, r.hub)
	return r
}

// Observe records one snapshot. It has the catheter.Listener signature.
func (r *Recorder) Observe(snap catheter.Snapshot) {
	r.moves.Inc()
	r.contacting.Set(float64(snap.ContactingCount(r.threshold)))
	r.progress.Set(snap.MappingProgress())
	for _, e := range snap.Electrodes {
		r.strength.WithLabelValues(e.Name).Set(e.Strength)
	}
	r.hub.WithLabelValues("x").Set(snap.Hub.X)
	r.hub.WithLabelValues("y").Set(snap.Hub.Y)
	r.hub.WithLabelValues("z").Set(snap.Hub.Z)
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the current values in the node exporter textfile format
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
