package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the declaration lifecycle.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	DeclarationsCreated *prometheus.CounterVec
	Transitions         *prometheus.CounterVec
	PenaltiesAssessed   prometheus.Counter
	PenaltyAmount       prometheus.Counter
	OperationDuration   *prometheus.HistogramVec
	CacheLookups        *prometheus.CounterVec
}

// New registers the declaration metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		DeclarationsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gdt_declarations_created_total",
			Help: "Total number of declarations created, by tax type",
		}, []string{"tax_type"}),
		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gdt_declaration_transitions_total",
			Help: "Lifecycle transitions, by target status",
		}, []string{"status"}),
		PenaltiesAssessed: f.NewCounter(prometheus.CounterOpts{
			Name: "gdt_late_penalties_assessed_total",
			Help: "Declarations filed after their due date",
		}),
		PenaltyAmount: f.NewCounter(prometheus.CounterOpts{
			Name: "gdt_late_penalty_amount_total",
			Help: "Sum of late filing penalties assessed",
		}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gdt_declaration_operation_duration_seconds",
			Help:    "Duration of declaration service operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gdt_declaration_cache_lookups_total",
			Help: "View cache lookups, by result (hit, miss, error)",
		}, []string{"result"}),
	}
}

// IncrementCreated records a successful creation.
func (m *Metrics) IncrementCreated(taxType string) {
	if m == nil {
		return
	}
	m.DeclarationsCreated.WithLabelValues(taxType).Inc()
}

// IncrementTransition records a committed move to status.
func (m *Metrics) IncrementTransition(status string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(status).Inc()
}

// ObservePenalty records a late filing penalty. Zero amounts are ignored.
func (m *Metrics) ObservePenalty(amount float64) {
	if m == nil || amount <= 0 {
		return
	}
	m.PenaltiesAssessed.Inc()
	m.PenaltyAmount.Add(amount)
}

// ObserveOperation records the duration of a service operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementCacheLookup(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
