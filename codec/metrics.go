// SPDX-License-Identifier: MIT

package codec

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics holds the Prometheus collectors a Decoder reports into.
// A nil *Metrics records nothing.
type Metrics struct {
	decodes  *prometheus.CounterVec
	duration prometheus.Histogram
	genes    prometheus.Histogram
	leaves   prometheus.Counter
}

// NewMetrics creates the codec collectors and registers them with reg.
// A nil reg leaves them unregistered. Registering twice with the same
// registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// decodes counts Decode calls by result
		decodes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wbe_codec_decode_total",
			Help: "Total genotype decodes by result.",
		}, []string{"result"}),

		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wbe_codec_decode_duration_seconds",
			Help:    "Genotype decode duration in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),

		genes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wbe_codec_decode_genes",
			Help:    "Number of genes consumed per successful decode.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),

		leaves: f.NewCounter(prometheus.CounterOpts{
			Name: "wbe_codec_leaves_decoded_total",
			Help: "Total leaf tensors reconstructed.",
		}),
	}
}

func (m *Metrics) observe(err error, d time.Duration, genes int) {
	if m == nil {
		return
	}
	m.duration.Observe(d.Seconds())
	if err != nil {
		m.decodes.WithLabelValues(resultError).Inc()
		return
	}
	m.decodes.WithLabelValues(resultOK).Inc()
	m.genes.Observe(float64(genes))
}

func (m *Metrics) leaf() {
	if m == nil {
		return
	}
	m.leaves.Inc()
}
