package execute

import (
	"github.com/5fatya/bench/cmd/bench/entities"
)

// Statistics accumulates streaming aggregates over measured runs. It keeps
// no per-run history, so the measurement phase can execute any number of
// runs in constant space.
type Statistics struct {
	Runs       int64
	Fails      int64
	MinSeconds float64
	MaxSeconds float64
	SumSeconds float64
}

// Record folds one completed run into the aggregates. Every outcome counts
// as a run, including system errors that never produced a child; their
// duration is whatever partial interval was measured.
func (s *Statistics) Record(outcome *entities.RunOutcome) {
	if s.Runs == 0 {
		s.MinSeconds = outcome.Seconds
		s.MaxSeconds = outcome.Seconds
	} else {
		s.MinSeconds = min(s.MinSeconds, outcome.Seconds)
		s.MaxSeconds = max(s.MaxSeconds, outcome.Seconds)
	}

	s.SumSeconds += outcome.Seconds
	s.Runs++

	if outcome.Failed() {
		s.Fails++
	}
}

// AvgSeconds is the mean run duration, zero when nothing was recorded.
func (s *Statistics) AvgSeconds() float64 {
	if s.Runs == 0 {
		return 0
	}

	return s.SumSeconds / float64(s.Runs)
}
