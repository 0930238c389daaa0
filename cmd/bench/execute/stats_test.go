package execute

import (
	"testing"

	"github.com/5fatya/bench/cmd/bench/entities"
	"github.com/stretchr/testify/require"
)

func record(s *Statistics, kind entities.OutcomeKind, seconds float64) {
	outcome := entities.RunOutcome{Kind: kind, Seconds: seconds}
	s.Record(&outcome)
}

func TestStatisticsFirstRunInitializesMinMax(t *testing.T) {
	stats := &Statistics{}
	record(stats, entities.OutcomeSuccess, 2.0)

	require.Equal(t, int64(1), stats.Runs)
	require.Equal(t, int64(0), stats.Fails)
	require.Equal(t, 2.0, stats.MinSeconds)
	require.Equal(t, 2.0, stats.MaxSeconds)
	require.Equal(t, 2.0, stats.SumSeconds)
}

func TestStatisticsFoldsMinMaxSum(t *testing.T) {
	stats := &Statistics{}
	record(stats, entities.OutcomeSuccess, 3.0)
	record(stats, entities.OutcomeSuccess, 1.0)
	record(stats, entities.OutcomeSuccess, 2.0)

	require.Equal(t, int64(3), stats.Runs)
	require.Equal(t, 1.0, stats.MinSeconds)
	require.Equal(t, 3.0, stats.MaxSeconds)
	require.Equal(t, 6.0, stats.SumSeconds)
	require.Equal(t, 2.0, stats.AvgSeconds())
}

func TestStatisticsCountsFailuresAndSystemErrors(t *testing.T) {
	stats := &Statistics{}
	record(stats, entities.OutcomeSuccess, 0.1)
	record(stats, entities.OutcomeFailure, 0.2)
	record(stats, entities.OutcomeSystemError, 0.0)

	require.Equal(t, int64(3), stats.Runs)
	require.Equal(t, int64(2), stats.Fails)
}

func TestStatisticsSystemErrorWithZeroDurationStillCounts(t *testing.T) {
	stats := &Statistics{}
	record(stats, entities.OutcomeSuccess, 0.5)
	record(stats, entities.OutcomeSystemError, 0.0)

	require.Equal(t, int64(2), stats.Runs)
	require.Equal(t, 0.0, stats.MinSeconds)
	require.Equal(t, 0.5, stats.MaxSeconds)
}

func TestStatisticsEmptyAverageIsZero(t *testing.T) {
	stats := &Statistics{}
	require.Equal(t, 0.0, stats.AvgSeconds())
}

func TestStatisticsMinAvgMaxOrdering(t *testing.T) {
	stats := &Statistics{}
	for _, seconds := range []float64{0.31, 0.07, 1.93, 0.44, 0.02, 0.88, 0.61} {
		record(stats, entities.OutcomeSuccess, seconds)
	}

	require.LessOrEqual(t, stats.MinSeconds, stats.AvgSeconds())
	require.LessOrEqual(t, stats.AvgSeconds(), stats.MaxSeconds)
}
