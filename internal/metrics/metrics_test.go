package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, c.Write(&out))
	return out.GetCounter().GetValue()
}

func TestBookingOutcomeCounts(t *testing.T) {
	m := New("test")

	m.BookingOutcome("created")
	m.BookingOutcome("created")
	m.BookingOutcome("time_conflict")

	assert.Equal(t, 2.0, counterValue(t, m.BookingsCreated.WithLabelValues("created")))
	assert.Equal(t, 1.0, counterValue(t, m.BookingsCreated.WithLabelValues("time_conflict")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.BookingOutcome("created")
		m.SlotQuery()
		m.StatusChanged("confirmed")
	})
}

func TestHandlerExposesNamespace(t *testing.T) {
	m := New("barberia")
	m.SlotQuery()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "barberia_slot_queries_total 1"))
}
