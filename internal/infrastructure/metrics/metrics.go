package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateMetrics holds every metric the engines emit.
type RateMetrics struct {
	RatesCreatedTotal      prometheus.Counter
	RateEditsTotal         prometheus.CounterVec
	RatesDeactivatedTotal  prometheus.Counter
	SweepDuration          prometheus.Histogram
	EnquiriesCreatedTotal  prometheus.Counter
	ActivityStatusTotal    prometheus.CounterVec
	ProjectStatusTotal     prometheus.CounterVec
	PersistenceErrorsTotal prometheus.CounterVec
}

func NewRateMetrics() *RateMetrics {
	return &RateMetrics{
		RatesCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "variant_rates_created_total",
				Help: "Total number of variant rates created",
			},
		),

		RateEditsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "variant_rate_edits_total",
				Help: "Variant rate edit attempts by cooldown outcome",
			},
			[]string{"outcome"}, // allowed, cooling, rejected
		),

		RatesDeactivatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "variant_rates_deactivated_total",
				Help: "Variant rates deactivated by the expiry sweep",
			},
		),

		SweepDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rate_expiry_sweep_duration_seconds",
				Help:    "Duration of the rate expiry sweep in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
		),

		EnquiriesCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "enquiries_created_total",
				Help: "Total number of enquiries created",
			},
		),

		ActivityStatusTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_status_derived_total",
				Help: "Derived activity statuses by status name",
			},
			[]string{"status"},
		),

		ProjectStatusTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "project_status_writes_total",
				Help: "Project status propagation writes by status name",
			},
			[]string{"status"},
		),

		PersistenceErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "persistence_errors_total",
				Help: "Persistence failures by originating component",
			},
			[]string{"component"},
		),
	}
}

func (m *RateMetrics) RecordRateCreated() {
	m.RatesCreatedTotal.Inc()
}

func (m *RateMetrics) RecordRateEdit(outcome string) {
	m.RateEditsTotal.WithLabelValues(outcome).Inc()
}

func (m *RateMetrics) RecordRateDeactivated() {
	m.RatesDeactivatedTotal.Inc()
}

func (m *RateMetrics) RecordSweepDuration(seconds float64) {
	m.SweepDuration.Observe(seconds)
}

func (m *RateMetrics) RecordEnquiryCreated() {
	m.EnquiriesCreatedTotal.Inc()
}

func (m *RateMetrics) RecordActivityStatus(status string) {
	m.ActivityStatusTotal.WithLabelValues(status).Inc()
}

func (m *RateMetrics) RecordProjectStatus(status string) {
	m.ProjectStatusTotal.WithLabelValues(status).Inc()
}

func (m *RateMetrics) RecordPersistenceError(component string) {
	m.PersistenceErrorsTotal.WithLabelValues(component).Inc()
}
