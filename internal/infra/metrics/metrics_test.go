package metrics

import (
	"testing"
	"time"

	"poolscout/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRunObserver_ObserveRun(t *testing.T) {
	started := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	summary := entity.NewRunSummary(entity.PipelineReconcile, "run-1", started)
	summary.FinishedAt = started.Add(90 * time.Second)
	summary.RowsIn = 10
	summary.RowsOut = 7
	summary.Corrected = 2
	summary.Drop("missing_coordinates", 3)
	summary.Matches["address_set"] = 5
	summary.Matches["proximity"] = 1

	runsBefore := testutil.ToFloat64(RunsTotal.WithLabelValues("reconcile", "succeeded"))
	inBefore := testutil.ToFloat64(RowsTotal.WithLabelValues("reconcile", "in"))
	droppedBefore := testutil.ToFloat64(RowsDropped.WithLabelValues("reconcile", "missing_coordinates"))
	matchedBefore := testutil.ToFloat64(Matches.WithLabelValues("reconcile", "address_set"))

	NewRunObserver().ObserveRun(summary)

	assert.InDelta(t, 1, testutil.ToFloat64(RunsTotal.WithLabelValues("reconcile", "succeeded"))-runsBefore, 1e-9)
	assert.InDelta(t, 10, testutil.ToFloat64(RowsTotal.WithLabelValues("reconcile", "in"))-inBefore, 1e-9)
	assert.InDelta(t, 3, testutil.ToFloat64(RowsDropped.WithLabelValues("reconcile", "missing_coordinates"))-droppedBefore, 1e-9)
	assert.InDelta(t, 5, testutil.ToFloat64(Matches.WithLabelValues("reconcile", "address_set"))-matchedBefore, 1e-9)
}

func TestRunObserver_FailedRun(t *testing.T) {
	summary := entity.NewRunSummary(entity.PipelineOSM, "run-2", time.Now())
	summary.Failed = true

	before := testutil.ToFloat64(RunsTotal.WithLabelValues("osm", "failed"))
	NewRunObserver().ObserveRun(summary)
	NewRunObserver().ObserveRun(nil)

	assert.InDelta(t, 1, testutil.ToFloat64(RunsTotal.WithLabelValues("osm", "failed"))-before, 1e-9)
}
