// Package metrics holds the prometheus collectors for dataset loads and chart
// commands. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "regionchart"

type Metrics struct {
	registry     *prometheus.Registry
	loadDuration *prometheus.HistogramVec
	records      prometheus.Gauge
	commands     *prometheus.CounterVec
}

// New registers all collectors on a private registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		loadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Time spent reading, cleaning and parsing the source export.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Number of records in the active dataset.",
		}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Chart selection commands by type and outcome.",
		}, []string{"command", "outcome"}),
	}
	reg.MustRegister(
		m.loadDuration,
		m.records,
		m.commands,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveLoad records one load attempt.
func (m *Metrics) ObserveLoad(d time.Duration, records int, err error) {
	if m == nil {
		return
	}
	m.loadDuration.WithLabelValues(outcome(err)).Observe(d.Seconds())
	if err == nil {
		m.records.Set(float64(records))
	}
}

// ObserveCommand counts one chart command.
func (m *Metrics) ObserveCommand(command string, err error) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command, outcome(err)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the exposition format for the private registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
