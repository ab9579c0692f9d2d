package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/zeebo/assert"

	"github.com/defenseunicorns/uds-sarif-report/pkg/types"
)

func sampleReport() types.ReportData {
	return types.ReportData{
		TotalFindings:       5,
		HighSeverityCount:   2,
		MediumSeverityCount: 1,
		InfoSeverityCount:   1,
	}
}

// TestObserve tests that report counts are exposed per severity.
func TestObserve(t *testing.T) {
	collector, err := NewCollector("sarif_report")
	assert.NoError(t, err)

	collector.Observe(sampleReport())

	err = testutil.GatherAndCompare(collector.registry, strings.NewReader(`
		# HELP sarif_report_findings Findings in the last generated report by severity.
		# TYPE sarif_report_findings gauge
		sarif_report_findings{severity="high"} 2
		sarif_report_findings{severity="info"} 1
		sarif_report_findings{severity="low"} 0
		sarif_report_findings{severity="medium"} 1
		# HELP sarif_report_findings_total All findings in the last generated report.
		# TYPE sarif_report_findings_total gauge
		sarif_report_findings_total 5
	`))
	assert.NoError(t, err)
}

// TestObserveReplacesValues tests that a second report overwrites the first.
func TestObserveReplacesValues(t *testing.T) {
	collector, err := NewCollector("sarif_report")
	assert.NoError(t, err)

	collector.Observe(sampleReport())
	collector.Observe(types.ReportData{TotalFindings: 1, LowSeverityCount: 1})

	assert.Equal(t, testutil.ToFloat64(collector.total), 1.0)
	assert.Equal(t, testutil.ToFloat64(collector.findings.WithLabelValues("high")), 0.0)
	assert.Equal(t, testutil.ToFloat64(collector.findings.WithLabelValues("low")), 1.0)
}

// TestWriteTextfile tests the textfile collector output.
func TestWriteTextfile(t *testing.T) {
	collector, err := NewCollector("sarif_report")
	assert.NoError(t, err)
	collector.Observe(sampleReport())

	path := filepath.Join(t.TempDir(), "sarif_report.prom")
	assert.NoError(t, collector.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.That(t, strings.Contains(string(raw), `sarif_report_findings{severity="high"} 2`))
	assert.That(t, strings.Contains(string(raw), "sarif_report_findings_total 5"))
}

// TestWriteTextfileMissingDirectory tests that write failures are reported.
func TestWriteTextfileMissingDirectory(t *testing.T) {
	collector, err := NewCollector("sarif_report")
	assert.NoError(t, err)

	err = collector.WriteTextfile(filepath.Join(t.TempDir(), "missing", "out.prom"))
	assert.Error(t, err)
}

// TestInvalidNamespace tests that an invalid metric name is rejected at registration.
func TestInvalidNamespace(t *testing.T) {
	_, err := NewCollector("not a valid-namespace")
	assert.Error(t, err)
}
