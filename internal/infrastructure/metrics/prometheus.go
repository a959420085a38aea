// Package metrics provides Prometheus collectors for the application and
// the HTTP layer.
package metrics

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements port.Metrics on a Prometheus registry.
// Collectors are created on first use; the label names are the tag keys of
// that first call. Later calls fill missing labels with "" and drop unknown tags.
type Prometheus struct {
	reg      prometheus.Registerer
	buckets  []float64
	mu       sync.Mutex
	counters map[string]*prometheus.CounterVec
	histos   map[string]*prometheus.HistogramVec
	labels   map[string][]string
}

// NewPrometheus creates a Prometheus metrics recorder.
//
// Parameters:
//   - reg: registry the collectors are registered in, DefaultRegisterer when nil
//   - buckets: histogram buckets, prometheus.DefBuckets when empty
//
// Returns:
//   - *Prometheus: the recorder
func NewPrometheus(reg prometheus.Registerer, buckets []float64) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	} else {
		buckets = append([]float64(nil), buckets...)
		sort.Float64s(buckets)
	}
	return &Prometheus{
		reg:      reg,
		buckets:  buckets,
		counters: make(map[string]*prometheus.CounterVec),
		histos:   make(map[string]*prometheus.HistogramVec),
		labels:   make(map[string][]string),
	}
}

// Counter adds value to the named counter.
func (p *Prometheus) Counter(name string, value float64, tags map[string]string) {
	p.mu.Lock()
	vec, ok := p.counters[name]
	if !ok {
		names := labelNames(tags)
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: fmt.Sprintf("Counter %s.", name),
		}, names)
		vec = register(p.reg, vec)
		p.counters[name] = vec
		p.labels[name] = names
	}
	names := p.labels[name]
	p.mu.Unlock()

	vec.WithLabelValues(labelValues(names, tags)...).Add(value)
}

// Histogram records value in the named histogram.
func (p *Prometheus) Histogram(name string, value float64, tags map[string]string) {
	p.mu.Lock()
	vec, ok := p.histos[name]
	if !ok {
		names := labelNames(tags)
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    name,
			Help:    fmt.Sprintf("Distribution of %s.", name),
			Buckets: p.buckets,
		}, names)
		vec = register(p.reg, vec)
		p.histos[name] = vec
		p.labels[name] = names
	}
	names := p.labels[name]
	p.mu.Unlock()

	vec.WithLabelValues(labelValues(names, tags)...).Observe(value)
}

// Timing records duration in seconds in the named histogram.
func (p *Prometheus) Timing(name string, duration time.Duration, tags map[string]string) {
	p.Histogram(name, duration.Seconds(), tags)
}

// register registers c, or returns the collector already registered under
// the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(fmt.Errorf("register %T: %w", c, err))
	}
	return c
}

func labelNames(tags map[string]string) []string {
	names := make([]string, 0, len(tags))
	for k := range tags {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func labelValues(names []string, tags map[string]string) []string {
	values := make([]string, len(names))
	for i, n := range names {
		values[i] = tags[n]
	}
	return values
}
