// Package metrics counts gestures and decisions for the session summary.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"swipedeck/gesture"
)

const namespace = "swipedeck"

// Metrics provides observability for the swipe deck.
// Each instance owns its registry so sessions and tests never share counts.
type Metrics struct {
	registry *prometheus.Registry

	Gestures      *prometheus.CounterVec
	Decisions     *prometheus.CounterVec
	Matches       prometheus.Counter
	Navigations   prometheus.Counter
	Actions       *prometheus.CounterVec
	ReleaseTravel prometheus.Histogram
}

// New creates a Metrics instance with all counters registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Gestures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gestures_total",
			Help:      "Finished gestures by classification",
		}, []string{"kind"}),
		Decisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Committed decisions by direction",
		}, []string{"direction"}),
		Matches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Likes that were reciprocated",
		}),
		Navigations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_navigations_total",
			Help:      "Photo carousel steps",
		}),
		Actions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Control presses that do not dismiss the card",
		}, []string{"action"}),
		ReleaseTravel: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "release_travel_pixels",
			Help:      "Absolute horizontal displacement at pointer release",
			Buckets:   []float64{10, 25, 50, 75, 100, 150, 200, 300},
		}),
	}
}

// Registry returns the private registry, e.g. for an exporter
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveGesture records a classified release
func (m *Metrics) ObserveGesture(r gesture.Result) {
	m.Gestures.WithLabelValues(strings.ToLower(r.Kind.String())).Inc()
	if r.Kind != gesture.KindTap && r.Kind != gesture.KindDiscard {
		dx := r.Delta.DX
		if dx < 0 {
			dx = -dx
		}
		m.ReleaseTravel.Observe(dx)
	}
}

// IncrementDecision records a committed like or dislike
func (m *Metrics) IncrementDecision(liked bool) {
	dir := "dislike"
	if liked {
		dir = "like"
	}
	m.Decisions.WithLabelValues(dir).Inc()
}

// IncrementMatch records a reciprocated like
func (m *Metrics) IncrementMatch() {
	m.Matches.Inc()
}

// IncrementNavigation records a carousel step
func (m *Metrics) IncrementNavigation() {
	m.Navigations.Inc()
}

// IncrementAction records a non-dismissing control press
func (m *Metrics) IncrementAction(action string) {
	m.Actions.WithLabelValues(strings.ToLower(action)).Inc()
}

// Summary flattens every counter into "name{labels}" -> value
// Histograms contribute their sample count
func (m *Metrics) Summary() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName() + labelString(metric.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out[key] = metric.GetCounter().GetValue()
			case dto.MetricType_HISTOGRAM:
				out[key+"_count"] = float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}

// Value returns one flattened counter, zero if never incremented
func (m *Metrics) Value(key string) float64 {
	s, err := m.Summary()
	if err != nil {
		return 0
	}
	return s[key]
}

// Format renders the summary as sorted lines for the exit report
func (m *Metrics) Format() string {
	s, err := m.Summary()
	if err != nil {
		return err.Error()
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%-50s %g\n", k, s[k])
	}
	return b.String()
}

func labelString(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = l.GetName() + "=" + l.GetValue()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
