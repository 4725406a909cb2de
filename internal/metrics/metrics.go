// Package metrics exposes Prometheus counters for conversion requests.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "edm4hep2lcio"

// Request outcomes.
const (
	StatusOK          = "ok"
	StatusMalformed   = "malformed_request"
	StatusStoreFailed = "store_failed"
)

// Recorder holds the converter counters. A nil *Recorder records nothing.
type Recorder struct {
	Converted    *prometheus.CounterVec
	Placeholders *prometheus.CounterVec
	Unresolved   *prometheus.CounterVec
	Requests     *prometheus.CounterVec
}

// New creates a Recorder and registers it with reg. A nil reg leaves the
// counters unregistered, which is what tests usually want.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		Converted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "objects_converted_total",
				Help:      "Destination objects converted from available source records, by entity kind",
			},
			[]string{"kind"},
		),
		Placeholders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "placeholders_created_total",
				Help:      "Empty destination objects written for unavailable source slots, by entity kind",
			},
			[]string{"kind"},
		),
		Unresolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "references_unresolved_total",
				Help:      "Source references that found no converted counterpart, by entity kind",
			},
			[]string{"kind"},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Conversion requests, by outcome",
			},
			[]string{"status"},
		),
	}

	if reg != nil {
		reg.MustRegister(r.Converted, r.Placeholders, r.Unresolved, r.Requests)
	}

	return r
}

// ObjectConverted counts one destination object of kind.
func (r *Recorder) ObjectConverted(kind string) {
	if r == nil {
		return
	}

	r.Converted.WithLabelValues(kind).Inc()
}

// PlaceholderCreated counts one empty destination object of kind.
func (r *Recorder) PlaceholderCreated(kind string) {
	if r == nil {
		return
	}

	r.Placeholders.WithLabelValues(kind).Inc()
}

// ReferenceUnresolved counts one reference miss of kind.
func (r *Recorder) ReferenceUnresolved(kind string) {
	if r == nil {
		return
	}

	r.Unresolved.WithLabelValues(kind).Inc()
}

// Request counts one finished request with the given status.
func (r *Recorder) Request(status string) {
	if r == nil {
		return
	}

	r.Requests.WithLabelValues(status).Inc()
}
