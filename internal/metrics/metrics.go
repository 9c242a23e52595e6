// Package metrics records generation statistics in a private Prometheus
// registry and renders them in the text exposition format.
package metrics

import (
	"io"
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Recorder collects per-process generation statistics.
type Recorder struct {
	registry  *prometheus.Registry
	runs      prometheus.Counter
	terms     prometheus.Counter
	largest   prometheus.Gauge
	termsHist prometheus.Histogram
}

// NewRecorder creates a Recorder with its own registry, so tests and
// multiple instances never collide on global collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fibseq",
			Name:      "runs_total",
			Help:      "Number of sequence generations performed.",
		}),
		terms: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fibseq",
			Name:      "terms_generated_total",
			Help:      "Total number of Fibonacci terms generated.",
		}),
		largest: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fibseq",
			Name:      "largest_term_bits",
			Help:      "Bit length of the last term of the most recent sequence.",
		}),
		termsHist: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fibseq",
			Name:      "sequence_length",
			Help:      "Distribution of requested sequence lengths.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 6),
		}),
	}
	r.registry.MustRegister(r.runs, r.terms, r.largest, r.termsHist)
	return r
}

// Observe records one generated sequence.
func (r *Recorder) Observe(seq []*big.Int) {
	r.runs.Inc()
	r.terms.Add(float64(len(seq)))
	r.termsHist.Observe(float64(len(seq)))
	if len(seq) == 0 {
		r.largest.Set(0)
		return
	}
	r.largest.Set(float64(seq[len(seq)-1].BitLen()))
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteText writes all gathered metric families in text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
