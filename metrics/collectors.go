package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors bundles every metric this module exports, registered once
// per process against a caller-supplied registry.
type Collectors struct {
	RunDuration     prometheus.Histogram
	TickCount       prometheus.Histogram
	ConflictRatio   prometheus.Histogram
	TileUtilization *prometheus.GaugeVec
}

// NewCollectors registers and returns the run's metrics against reg.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nocsim",
			Name:      "run_duration_ticks",
			Help:      "Final simulated time of a completed run, in engine time units.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 12),
		}),
		TickCount: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nocsim",
			Name:      "run_tick_count",
			Help:      "Number of discrete-event ticks a completed run advanced through.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
		ConflictRatio: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nocsim",
			Name:      "communication_conflict_ratio",
			Help:      "Off-diagonal conflict_matrix[i][j] values observed in the transparent pass.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		}),
		TileUtilization: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "nocsim",
			Name:      "tile_utilization_ratio",
			Help:      "Fraction of the opaque pass a tile spent actively computing.",
		}, []string{"tile_id"}),
	}
}

// Observe records one completed run's summary statistics.
func (c *Collectors) Observe(finalTime float64, tickCount int, conflict []float64, tileUtilization map[int]float64) {
	c.RunDuration.Observe(finalTime)
	c.TickCount.Observe(float64(tickCount))
	for _, v := range conflict {
		c.ConflictRatio.Observe(v)
	}
	for tileID, rate := range tileUtilization {
		c.TileUtilization.WithLabelValues(itoa(tileID)).Set(rate)
	}
}

func itoa(i int) string {
	const digits = "0123456789"
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = digits[i%10]
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
