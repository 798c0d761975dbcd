package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementCreated("VAT")
	m.IncrementCreated("VAT")
	m.IncrementTransition("FILED")
	m.ObservePenalty(1800)
	m.ObservePenalty(0)
	m.ObserveOperation("file", time.Now())
	m.IncrementCacheLookup("hit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DeclarationsCreated.WithLabelValues("VAT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("FILED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PenaltiesAssessed))
	assert.Equal(t, 1800.0, testutil.ToFloat64(m.PenaltyAmount))
	assert.Equal(t, 1, testutil.CollectAndCount(m.OperationDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementCreated("INCOME")
		m.IncrementTransition("APPROVED")
		m.ObservePenalty(10)
		m.ObserveOperation("create", time.Now())
		m.IncrementCacheLookup("miss")
	})
}
