package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsIsIdempotent(t *testing.T) {
	MustRegisterMetrics()
	MustRegisterMetrics()
}

func TestRecordConnectCountsByOutcome(t *testing.T) {
	before := testutil.ToFloat64(connectAttempts.WithLabelValues("UserRejected"))
	RecordConnect("UserRejected", 20*time.Millisecond)
	RecordConnect("UserRejected", 30*time.Millisecond)
	if got := testutil.ToFloat64(connectAttempts.WithLabelValues("UserRejected")) - before; got != 2 {
		t.Fatalf("UserRejected delta = %v, want 2", got)
	}
}

func TestRecordProviderCallAndViews(t *testing.T) {
	before := testutil.ToFloat64(providerCalls.WithLabelValues("balance", "true"))
	RecordProviderCall("balance", true)
	if got := testutil.ToFloat64(providerCalls.WithLabelValues("balance", "true")) - before; got != 1 {
		t.Fatalf("balance delta = %v", got)
	}
	SetOpenViews(3)
	if got := testutil.ToFloat64(openViews); got != 3 {
		t.Fatalf("open views = %v", got)
	}
}
