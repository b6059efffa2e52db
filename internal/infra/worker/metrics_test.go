package worker

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWorkerMetrics_RecordJobRun(t *testing.T) {
	before := testutil.ToFloat64(testWorkerMetrics.CronJobRunsTotal.WithLabelValues("success"))

	testWorkerMetrics.RecordJobRun("success")
	testWorkerMetrics.RecordJobRun("success")
	testWorkerMetrics.RecordJobRun("failure")

	assert.Equal(t, before+2,
		testutil.ToFloat64(testWorkerMetrics.CronJobRunsTotal.WithLabelValues("success")))
	assert.GreaterOrEqual(t,
		testutil.ToFloat64(testWorkerMetrics.CronJobRunsTotal.WithLabelValues("failure")), 1.0)
}

func TestWorkerMetrics_RecordDatasetsRelayed(t *testing.T) {
	before := testutil.ToFloat64(testWorkerMetrics.CronJobDatasetsRelayedTotal)

	testWorkerMetrics.RecordDatasetsRelayed(3)

	assert.Equal(t, before+3, testutil.ToFloat64(testWorkerMetrics.CronJobDatasetsRelayedTotal))
}

func TestWorkerMetrics_RecordLastSuccess(t *testing.T) {
	testWorkerMetrics.RecordLastSuccess()

	assert.Greater(t, testutil.ToFloat64(testWorkerMetrics.CronJobLastSuccessTimestamp), 0.0)
}
