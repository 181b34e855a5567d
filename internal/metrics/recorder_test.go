package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveStepDuration("pages_convert", time.Millisecond)
	r.ObserveBuildDuration(time.Second)
	r.IncBuildOutcome(OutcomeSuccess)
	r.SetPagesTotal(3)
}

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.IncBuildOutcome(OutcomeSuccess)
	r.IncBuildOutcome(OutcomeSuccess)
	r.IncBuildOutcome(OutcomeFailed)
	r.SetPagesTotal(42)
	r.ObserveStepDuration("pages_save", 25*time.Millisecond)
	r.ObserveBuildDuration(200 * time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.buildOutcome.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.buildOutcome.WithLabelValues("failed")))
	assert.Equal(t, float64(42), testutil.ToFloat64(r.pagesTotal))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["sitebuilder_step_duration_seconds"])
	assert.True(t, names["sitebuilder_build_duration_seconds"])
}
