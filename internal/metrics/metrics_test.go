package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		StoreTransitionsTotal,
		StoreObserverPanics,
		PersistenceOpsTotal,
		PersistenceFailuresTotal,
		PersistenceQueueDepth,
		PersistenceOpDuration,
		LoadFailuresTotal,
	}
	for _, c := range collectors {
		assert.NotNil(t, c)
		// promauto registered them on the default registry already.
		err := prometheus.Register(c)
		assert.Error(t, err, "collector should already be registered")
	}
}

func TestObserveTransition(t *testing.T) {
	applied := StoreTransitionsTotal.WithLabelValues("test_transition", OutcomeApplied)
	noop := StoreTransitionsTotal.WithLabelValues("test_transition", OutcomeNoop)
	beforeApplied := testutil.ToFloat64(applied)
	beforeNoop := testutil.ToFloat64(noop)

	ObserveTransition("test_transition", true)
	ObserveTransition("test_transition", false)
	ObserveTransition("test_transition", false)

	assert.Equal(t, beforeApplied+1, testutil.ToFloat64(applied))
	assert.Equal(t, beforeNoop+2, testutil.ToFloat64(noop))
}
