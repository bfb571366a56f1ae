package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewSavingsMetricsIsSingleton(t *testing.T) {
	first := NewSavingsMetrics()
	second := NewSavingsMetrics()

	assert.Same(t, first, second)
}

func TestStrandedDistributions(t *testing.T) {
	m := NewSavingsMetrics()
	before := testutil.ToFloat64(m.StrandedDistributions)

	m.StrandedDistributions.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(m.StrandedDistributions))
}

func TestHandler(t *testing.T) {
	NewSavingsMetrics().EntriesAppended.WithLabelValues("save").Inc()
	rr := httptest.NewRecorder()

	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "pooled_savings_ledger_entries_appended_total")
}
