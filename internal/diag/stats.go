// Public domain.

package diag

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bsc2java"

// Stats counts what happened to catalog records during a run.
type Stats struct {
	Registry *prometheus.Registry

	Read    prometheus.Counter // lines read from the catalog
	Dropped prometheus.Counter // no usable magnitude
	Skipped prometheus.Counter // RecordError
	Emitted prometheus.Counter
	Batches prometheus.Counter

	ProperNames prometheus.Gauge
	IAUNames    prometheus.Gauge
}

func counter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
}

func gauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
}

// NewStats returns zeroed Stats registered with a new registry.
func NewStats() *Stats {
	s := &Stats{
		Registry:    prometheus.NewRegistry(),
		Read:        counter("records_read_total", "Catalog records read."),
		Dropped:     counter("records_dropped_total", "Catalog records dropped for lack of a magnitude."),
		Skipped:     counter("records_skipped_total", "Catalog records skipped for an unusable position or index."),
		Emitted:     counter("entries_emitted_total", "Star table entries generated."),
		Batches:     counter("batches_total", "Initializer batch methods generated."),
		ProperNames: gauge("proper_names", "Entries in the proper name table."),
		IAUNames:    gauge("iau_names", "Entries in the IAU name table."),
	}
	s.Registry.MustRegister(s.Read, s.Dropped, s.Skipped, s.Emitted,
		s.Batches, s.ProperNames, s.IAUNames)
	return s
}

// WriteTextfile writes the current values in the text exposition format,
// as read by the node exporter textfile collector.
func (s *Stats) WriteTextfile(fn string) error {
	return prometheus.WriteToTextfile(fn, s.Registry)
}
