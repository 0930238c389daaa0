// Package execute drives the benchmark: it spawns the target command,
// classifies each run, schedules warmup and measured phases, and aggregates
// the statistics the final report is built from.
package execute

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/5fatya/bench/cmd/bench/clock"
	"github.com/5fatya/bench/cmd/bench/entities"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Exit status a shell reports when the command cannot be found or loaded.
const ExitCodeCommandNotFound = 127

// Runner executes the target command once per call.
type Runner interface {
	RunOnce(command []string) entities.RunOutcome
}

// ProcessRunner spawns the target command as a child process and blocks
// until it is reaped. The child inherits the parent's standard streams
// unchanged; at most one child exists at a time.
type ProcessRunner struct {
	Clock clock.Clock

	wait4 func(pid int, status *unix.WaitStatus, options int, rusage *unix.Rusage) (int, error)
}

func NewProcessRunner(c clock.Clock) *ProcessRunner {
	return &ProcessRunner{
		Clock: c,
		wait4: unix.Wait4,
	}
}

// RunOnce measures the full interval from just before the spawn to just
// after the reap, so process creation and teardown overhead is part of the
// reported duration. Spawn and wait problems never propagate as errors; they
// come back as failed outcomes so the measurement loop can keep going.
func (r *ProcessRunner) RunOnce(command []string) entities.RunOutcome {
	start := r.Clock.Now()

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		seconds := clock.Since(r.Clock, start)

		if isExecLoadError(err) {
			// A program that cannot be found or loaded behaves like a child
			// that exited with status 127, matching what an exec'ing shell
			// would report.
			return entities.RunOutcome{
				Kind:     entities.OutcomeFailure,
				Reason:   err.Error(),
				ExitCode: ExitCodeCommandNotFound,
				Seconds:  seconds,
			}
		}

		logrus.WithError(err).Warn("Error spawning the command")
		return entities.RunOutcome{
			Kind:    entities.OutcomeSystemError,
			Reason:  fmt.Sprintf("spawn failed: %s", err),
			Seconds: seconds,
		}
	}

	status, err := r.reap(cmd.Process.Pid)
	seconds := clock.Since(r.Clock, start)

	// The child is already reaped through wait4; drop the handle so no
	// descriptor survives the call.
	_ = cmd.Process.Release()

	if err != nil {
		logrus.WithError(err).Warn("Error waiting for the command")
		return entities.RunOutcome{
			Kind:    entities.OutcomeSystemError,
			Reason:  fmt.Sprintf("wait failed: %s", err),
			Seconds: seconds,
		}
	}

	return classify(status, seconds)
}

// reap blocks until the child terminates. Benign signals (terminal resizes
// and the like) interrupt the wait routinely; the wait is restarted rather
// than surfaced as a failed run.
func (r *ProcessRunner) reap(pid int) (unix.WaitStatus, error) {
	var status unix.WaitStatus
	for {
		if _, err := r.wait4(pid, &status, 0, nil); err != nil {
			if err == unix.EINTR {
				continue
			}
			return status, err
		}
		return status, nil
	}
}

// isExecLoadError reports whether the spawn failed because the program could
// not be found or its image could not be loaded, the cases an exec'ing shell
// reports as exit status 127. Anything else (resource exhaustion and the
// like) means the spawn itself broke.
func isExecLoadError(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, unix.ENOEXEC)
}

func classify(status unix.WaitStatus, seconds float64) entities.RunOutcome {
	switch {
	case status.Exited() && status.ExitStatus() == 0:
		return entities.RunOutcome{
			Kind:    entities.OutcomeSuccess,
			Seconds: seconds,
		}
	case status.Exited():
		return entities.RunOutcome{
			Kind:     entities.OutcomeFailure,
			Reason:   fmt.Sprintf("exit status %d", status.ExitStatus()),
			ExitCode: status.ExitStatus(),
			Seconds:  seconds,
		}
	case status.Signaled():
		sig := status.Signal()
		return entities.RunOutcome{
			Kind:     entities.OutcomeFailure,
			Reason:   fmt.Sprintf("terminated by %s", unix.SignalName(sig)),
			ExitCode: 128 + int(sig),
			Signal:   unix.SignalName(sig),
			Seconds:  seconds,
		}
	default:
		return entities.RunOutcome{
			Kind:    entities.OutcomeFailure,
			Reason:  fmt.Sprintf("abnormal termination: %v", status),
			Seconds: seconds,
		}
	}
}
