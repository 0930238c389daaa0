package execute

import (
	"github.com/5fatya/bench/cmd/bench/clock"
	"github.com/5fatya/bench/cmd/bench/entities"
	"github.com/5fatya/bench/cmd/bench/utils"
	"github.com/sirupsen/logrus"
)

// Scheduler drives the two benchmark phases in order: a fixed number of
// warmup runs whose results are discarded, then measured runs until the
// time budget is spent. There is no transition back.
type Scheduler struct {
	Clock  clock.Clock
	Runner Runner
}

func NewScheduler(c clock.Clock, r Runner) *Scheduler {
	return &Scheduler{Clock: c, Runner: r}
}

// Run executes the benchmark described by config and returns the collected
// statistics together with the measurement phase's total elapsed seconds.
// Warmups have no deadline; they always complete all configured iterations.
func (s *Scheduler) Run(config *entities.Config) (*Statistics, float64) {
	for i := 0; i < config.Warmups; i++ {
		outcome := s.Runner.RunOnce(config.Command)

		logrus.WithFields(logrus.Fields{
			"session": utils.SessionId,
			"warmup":  i + 1,
			"status":  outcome.Kind,
			"seconds": outcome.Seconds,
		}).Debug("Warmup run completed")
	}

	stats := &Statistics{}
	phaseStart := s.Clock.Now()

	for {
		// Deadline boundary check: the budget only decides whether another
		// run may begin. A run that has started is always carried to
		// completion, even past the deadline; a long command simply yields
		// fewer samples, never a truncated one.
		if clock.Since(s.Clock, phaseStart) >= config.Duration {
			break
		}

		outcome := s.Runner.RunOnce(config.Command)
		stats.Record(&outcome)

		logrus.WithFields(logrus.Fields{
			"session": utils.SessionId,
			"run":     stats.Runs,
			"status":  outcome.Kind,
			"seconds": outcome.Seconds,
		}).Debug("Measured run completed")
	}

	return stats, clock.Since(s.Clock, phaseStart)
}
