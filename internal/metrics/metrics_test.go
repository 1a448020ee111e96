package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCacheLookup(t *testing.T) {
	const cache = "test_cache"

	before := map[string]float64{
		"hit":   testutil.ToFloat64(CacheRequests.WithLabelValues(cache, "hit")),
		"miss":  testutil.ToFloat64(CacheRequests.WithLabelValues(cache, "miss")),
		"error": testutil.ToFloat64(CacheRequests.WithLabelValues(cache, "error")),
	}

	RecordCacheLookup(cache, true, nil)
	RecordCacheLookup(cache, false, nil)
	RecordCacheLookup(cache, false, nil)
	RecordCacheLookup(cache, true, errors.New("connection refused"))

	assert.Equal(t, before["hit"]+1, testutil.ToFloat64(CacheRequests.WithLabelValues(cache, "hit")))
	assert.Equal(t, before["miss"]+2, testutil.ToFloat64(CacheRequests.WithLabelValues(cache, "miss")))
	assert.Equal(t, before["error"]+1, testutil.ToFloat64(CacheRequests.WithLabelValues(cache, "error")))
}

func TestRecordRecommendation(t *testing.T) {
	success := testutil.ToFloat64(RecommendationRequests.WithLabelValues("success"))
	failed := testutil.ToFloat64(RecommendationRequests.WithLabelValues("error"))

	RecordRecommendation(10*time.Millisecond, nil)
	RecordRecommendation(0, errors.New("interaction log unavailable"))

	assert.Equal(t, success+1, testutil.ToFloat64(RecommendationRequests.WithLabelValues("success")))
	assert.Equal(t, failed+1, testutil.ToFloat64(RecommendationRequests.WithLabelValues("error")))
}

func TestRecordWalrusRequest(t *testing.T) {
	before := testutil.ToFloat64(WalrusRequests.WithLabelValues("store", "failure"))

	RecordWalrusRequest("store", time.Second, errors.New("timeout"))

	assert.Equal(t, before+1, testutil.ToFloat64(WalrusRequests.WithLabelValues("store", "failure")))
}
