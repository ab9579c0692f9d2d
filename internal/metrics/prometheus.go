// Package metrics exposes report finding counts as Prometheus metrics and
// writes them in the text format read by the node exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/defenseunicorns/uds-sarif-report/pkg/types"
)

// Collector holds the report gauges on a private registry.
type Collector struct {
	registry *prometheus.Registry
	findings *prometheus.GaugeVec
	total    prometheus.Gauge
}

// severities are the buckets a report counts.
var severities = []string{"high", "medium", "low", "info"}

// NewCollector creates a Collector whose metric names start with namespace.
func NewCollector(namespace string) (*Collector, error) {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		findings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "findings",
			Help:      "Findings in the last generated report by severity.",
		}, []string{"severity"}),
		total: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "findings_total",
			Help:      "All findings in the last generated report.",
		}),
	}

	for _, col := range []prometheus.Collector{c.findings, c.total} {
		if err := c.registry.Register(col); err != nil {
			return nil, fmt.Errorf("error registering collector: %w", err)
		}
	}
	return c, nil
}

// Observe records the counts of data.
func (c *Collector) Observe(data types.ReportData) {
	counts := map[string]int{
		"high":   data.HighSeverityCount,
		"medium": data.MediumSeverityCount,
		"low":    data.LowSeverityCount,
		"info":   data.InfoSeverityCount,
	}
	for _, sev := range severities {
		c.findings.WithLabelValues(sev).Set(float64(counts[sev]))
	}
	c.total.Set(float64(data.TotalFindings))
}

// WriteTextfile writes every metric to path, replacing the file atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("error writing metrics textfile: %w", err)
	}
	return nil
}
