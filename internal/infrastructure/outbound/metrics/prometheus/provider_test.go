package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetricsProvider(t *testing.T) {
	p := NewPrometheusMetricsProvider()

	before := testutil.ToFloat64(PostOperationsTotal.WithLabelValues("create", "true"))
	p.IncrementPostOperations("create", true)
	assert.Equal(t, before+1, testutil.ToFloat64(PostOperationsTotal.WithLabelValues("create", "true")))

	before = testutil.ToFloat64(CommentOperationsTotal.WithLabelValues("delete", "false"))
	p.IncrementCommentOperations("delete", false)
	assert.Equal(t, before+1, testutil.ToFloat64(CommentOperationsTotal.WithLabelValues("delete", "false")))

	before = testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/posts", "200"))
	p.IncrementHTTPRequests("GET", "/posts", "200")
	p.RecordHTTPRequestDuration("GET", "/posts", "200", 10*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/posts", "200")))

	hits := testutil.ToFloat64(CacheHitsTotal)
	p.IncrementCacheHits()
	assert.Equal(t, hits+1, testutil.ToFloat64(CacheHitsTotal))

	p.SetServiceHealth(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(ServiceHealth))
	p.SetServiceHealth(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(ServiceHealth))
}
