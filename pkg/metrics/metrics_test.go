package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordPlacement(t *testing.T) {
	before := testutil.ToFloat64(orderPlacements.WithLabelValues(OutcomeAppended))
	RecordPlacement(OutcomeAppended)
	assert.Equal(t, before+1, testutil.ToFloat64(orderPlacements.WithLabelValues(OutcomeAppended)))
}

func TestHandlerExposesHTTPMetrics(t *testing.T) {
	ObserveHTTP("GET", "/api/mesas/", 200, 15*time.Millisecond)
	ObserveHTTP("GET", "", 404, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `poskeeper_http_requests_total{method="GET",route="/api/mesas/",status="200"}`)
	assert.Contains(t, body, `route="unmatched"`)
}
