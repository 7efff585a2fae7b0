package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"

	"github.com/rickgao/coinboard/internal/model"
)

const namespace = "coinboard"

// Cycle outcomes, used as the "outcome" label.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeDiscarded = "discarded"
)

// Tracker records fetch-cycle metrics. The zero value is not usable;
// call NewTracker.
type Tracker struct {
	registry *prometheus.Registry
	cycles   *prometheus.CounterVec
	duration prometheus.Histogram
	rows     prometheus.Gauge

	mu        sync.Mutex
	started   time.Time
	minTime   time.Duration
	maxTime   time.Duration
	totalTime time.Duration
	applied   int64
	lastAt    time.Time
}

// Stats is the health-endpoint summary.
type Stats struct {
	Cycles    int64         `json:"cycles"`
	Succeeded int64         `json:"succeeded"`
	Failed    int64         `json:"failed"`
	Discarded int64         `json:"discarded"`
	Min       time.Duration `json:"min_ns"`
	Max       time.Duration `json:"max_ns"`
	Avg       time.Duration `json:"avg_ns"`
	LastAt    time.Time     `json:"last_at"`
	Uptime    time.Duration `json:"uptime_ns"`
}

// NewTracker creates a tracker with its own registry, so several trackers
// can coexist in one process.
func NewTracker() *Tracker {
	t := &Tracker{
		registry: prometheus.NewRegistry(),
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "cycles_total",
			Help:      "Fetch cycles by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "cycle_duration_seconds",
			Help:      "Duration of applied fetch cycles.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),
		rows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "rows",
			Help:      "Rows returned by the last applied cycle.",
		}),
		started: time.Now(),
		minTime: time.Duration(1<<63 - 1),
	}

	// Pre-create each outcome so the series exist at zero.
	for _, o := range []string{OutcomeSucceeded, OutcomeFailed, OutcomeDiscarded} {
		t.cycles.WithLabelValues(o)
	}

	t.registry.MustRegister(
		t.cycles,
		t.duration,
		t.rows,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return t
}

// TrackCycle records one completed cycle. Discarded cycles only bump the
// discarded counter; their durations would skew the latency figures.
func (t *Tracker) TrackCycle(c model.Cycle) {
	if t == nil {
		return
	}

	if !c.Applied {
		t.cycles.WithLabelValues(OutcomeDiscarded).Inc()
		return
	}

	if c.Err != nil {
		t.cycles.WithLabelValues(OutcomeFailed).Inc()
	} else {
		t.cycles.WithLabelValues(OutcomeSucceeded).Inc()
		t.rows.Set(float64(c.Rows))
	}
	t.duration.Observe(c.Duration.Seconds())

	t.mu.Lock()
	defer t.mu.Unlock()

	t.applied++
	t.totalTime += c.Duration
	if c.Duration < t.minTime {
		t.minTime = c.Duration
	}
	if c.Duration > t.maxTime {
		t.maxTime = c.Duration
	}
	t.lastAt = time.Now()
}

// Handler serves the registry in the Prometheus exposition format.
func (t *Tracker) Handler() http.Handler {
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{Registry: t.registry})
}

// Stats returns the current summary.
func (t *Tracker) Stats() Stats {
	s := Stats{
		Succeeded: t.count(OutcomeSucceeded),
		Failed:    t.count(OutcomeFailed),
		Discarded: t.count(OutcomeDiscarded),
	}
	s.Cycles = s.Succeeded + s.Failed + s.Discarded

	t.mu.Lock()
	defer t.mu.Unlock()

	s.Max = t.maxTime
	s.LastAt = t.lastAt
	s.Uptime = time.Since(t.started)
	if t.applied > 0 {
		s.Min = t.minTime
		s.Avg = t.totalTime / time.Duration(t.applied)
	}
	return s
}

// count reads a counter back from the vector.
func (t *Tracker) count(outcome string) int64 {
	var m dto.Metric
	if err := t.cycles.WithLabelValues(outcome).Write(&m); err != nil {
		return 0
	}
	return int64(m.GetCounter().GetValue())
}
