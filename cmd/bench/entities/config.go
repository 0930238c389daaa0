package entities

// Config is the benchmark configuration assembled from the command line and,
// optionally, a JSON config file. It is immutable once validated.
type Config struct {
	// Warmups is the number of runs executed before measurement begins.
	// Their outcomes and durations are discarded unconditionally.
	Warmups int `mapstructure:"warmups" validate:"min=0"`

	// Duration is the measurement window in seconds. New runs start only
	// while the elapsed time stays below it.
	Duration float64 `mapstructure:"duration" validate:"gt=0"`

	// Command is the target program followed by its arguments.
	Command []string `mapstructure:"command" validate:"required,dive,required"`
}
