package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics_Request(t *testing.T) {
	f := NewFactory().(*prometheusFactory)

	f.HTTP().Request(http.MethodPost, "/dishes", http.StatusCreated, 20*time.Millisecond)
	f.HTTP().Request(http.MethodPost, "/dishes", http.StatusCreated, 5*time.Millisecond)
	f.HTTP().Request(http.MethodPost, "/dishes", http.StatusBadRequest, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(f.http.requestCounter.WithLabelValues("POST", "/dishes", "201")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(f.http.requestCounter.WithLabelValues("POST", "/dishes", "400")), 0)
}

func TestValidationMetrics_Failure(t *testing.T) {
	f := NewFactory().(*prometheusFactory)

	f.Validation().Failure("invalid_price")

	assert.InDelta(t, 1, testutil.ToFloat64(f.validation.failures.WithLabelValues("invalid_price")), 0)
}

func TestOrderMetrics(t *testing.T) {
	f := NewFactory().(*prometheusFactory)

	f.Orders().SetStatusCount("pending", 4)
	f.Orders().SetStatusCount("pending", 3)
	f.Orders().SetBacklog(7)

	assert.InDelta(t, 3, testutil.ToFloat64(f.orders.byStatus.WithLabelValues("pending")), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(f.orders.backlog), 0)
}

func TestHandler_ServesRegistry(t *testing.T) {
	f := NewFactory()
	f.Orders().SetBacklog(2)

	rec := httptest.NewRecorder()
	f.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "grubdash_orders_backlog 2")
}

func TestNewFactory_Independent(t *testing.T) {
	assert.NotPanics(t, func() {
		NewFactory()
		NewFactory()
	})
}
