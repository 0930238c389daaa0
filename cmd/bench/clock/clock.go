// Package clock provides the monotonic time source every duration
// measurement depends on.
package clock

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Timestamp is a point on the monotonic clock, in fractional seconds. It is
// meaningful only relative to other timestamps from the same clock.
type Timestamp float64

// Clock produces monotonically non-decreasing timestamps, unaffected by
// wall-clock adjustments.
type Clock interface {
	Now() Timestamp
}

// Monotonic reads CLOCK_MONOTONIC directly.
type Monotonic struct{}

func (Monotonic) Now() Timestamp {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		// No statistic is trustworthy without the clock, so there is no
		// degraded mode.
		logrus.WithError(err).Fatal("Monotonic clock source unavailable")
	}

	return Timestamp(float64(ts.Sec) + float64(ts.Nsec)/1e9)
}

// Since returns the seconds elapsed on c since the given timestamp.
func Since(c Clock, since Timestamp) float64 {
	return float64(c.Now() - since)
}
