package entities

type OutcomeKind string

const (
	// OutcomeSuccess: the child terminated normally with exit status 0.
	OutcomeSuccess OutcomeKind = "SUCCESS"
	// OutcomeFailure: the child terminated with a nonzero exit status or was
	// killed by a signal.
	OutcomeFailure OutcomeKind = "FAILURE"
	// OutcomeSystemError: spawning or waiting for the child failed, so no
	// exit status was ever observed.
	OutcomeSystemError OutcomeKind = "SYSTEM_ERROR"
)

// RunOutcome describes a single invocation of the target command. It is
// produced per run and consumed immediately, never persisted.
type RunOutcome struct {
	Kind     OutcomeKind
	Reason   string
	ExitCode int
	Signal   string
	Seconds  float64
}

// Failed reports whether the run counts toward the failure tally. Both
// ordinary failures and system errors do.
func (o *RunOutcome) Failed() bool {
	return o.Kind != OutcomeSuccess
}
