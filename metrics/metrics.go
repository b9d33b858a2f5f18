package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// AnalyzedTotal counts analysis requests by outcome.
	AnalyzedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "incident",
		Subsystem: "analysis",
		Name:      "analyzed_total",
		Help:      "Total number of incident analyses performed, labeled by result.",
	}, []string{"result"})

	// LabelTotal counts analyses by the authenticity label assigned.
	LabelTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "incident",
		Subsystem: "analysis",
		Name:      "label_total",
		Help:      "Total number of analyses by authenticity label.",
	}, []string{"label"})

	// RedFlagTotal counts red flags raised across all analyses.
	RedFlagTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "incident",
		Subsystem: "analysis",
		Name:      "red_flag_total",
		Help:      "Total number of red flags raised across analyses.",
	})

	// AnalysisDurationSeconds is end-to-end time per analysis request.
	AnalysisDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "incident",
		Subsystem: "analysis",
		Name:      "duration_seconds",
		Help:      "End-to-end time to analyze one incident report.",
		// The engine is pure computation, so buckets stay sub-second.
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}, []string{"result"})
)

// Register registers analysis metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			AnalyzedTotal,
			LabelTotal,
			RedFlagTotal,
			AnalysisDurationSeconds,
		)
	})
}
