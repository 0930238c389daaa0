package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/5fatya/bench/cmd/bench/clock"
	"github.com/5fatya/bench/cmd/bench/entities"
	"github.com/5fatya/bench/cmd/bench/execute"
	"github.com/5fatya/bench/cmd/bench/utils"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit status for configuration and usage errors, distinct from the single
// failed-run status so scripts can tell the two apart.
const exitCodeUsageError = 2

func init() {
	if os.Getenv("BENCH_DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.FatalLevel)
	}

	// The report owns stdout; logs always go to stderr.
	logrus.SetOutput(os.Stderr)
}

type cliOptions struct {
	warmups    int
	duration   float64
	configFile string
	jsonOutput bool
}

func newBenchCommand(options *cliOptions) *cobra.Command {
	command := &cobra.Command{
		Use:     "bench [-w warmups] [-d seconds] -- command [args...]",
		Short:   "Measure command execution time by repeatedly running it",
		Example: "  bench -w 2 -d 4 -- sleep 1",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := assembleConfig(cmd, args, options)
			if err != nil {
				return err
			}

			// Past this point problems are run failures, not usage errors.
			cmd.SilenceUsage = true

			runBench(config, options.jsonOutput)
			return nil
		},
	}

	flags := command.Flags()
	flags.IntVarP(&options.warmups, "warmups", "w", 0, "number of warmup runs excluded from statistics")
	flags.Float64VarP(&options.duration, "duration", "d", 5.0, "measurement window in seconds")
	flags.StringVarP(&options.configFile, "config", "c", "", "JSON config file; flags override its values")
	flags.BoolVar(&options.jsonOutput, "json", false, "emit the report as JSON instead of text")

	// The target command keeps its own flags: parsing stops at the first
	// positional argument.
	flags.SetInterspersed(false)

	return command
}

// assembleConfig merges the optional config file, the flag values and the
// positional command into a validated Config. Explicit flags win over file
// values, the positional command wins over the file's command.
func assembleConfig(cmd *cobra.Command, args []string, options *cliOptions) (*entities.Config, error) {
	config := &entities.Config{
		Warmups:  0,
		Duration: 5.0,
	}

	if options.configFile != "" {
		if !utils.FileExists(options.configFile) {
			return nil, fmt.Errorf("Config file not found: %s", options.configFile)
		}

		data, err := os.ReadFile(options.configFile)
		if err != nil {
			return nil, fmt.Errorf("Error reading the config file %s: %w", options.configFile, err)
		}

		var payload map[string]interface{}
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("Error unmarshalling the config file %s: %w", options.configFile, err)
		}

		if err := mapstructure.Decode(payload, config); err != nil {
			return nil, fmt.Errorf("Error decoding the config file %s: %w", options.configFile, err)
		}
	}

	if cmd.Flags().Changed("warmups") {
		config.Warmups = options.warmups
	}
	if cmd.Flags().Changed("duration") {
		config.Duration = options.duration
	}
	if len(args) > 0 {
		config.Command = args
	}

	if len(config.Command) == 0 {
		return nil, errors.New("Missing command, e.g.: bench -w 2 -d 4 -- sleep 1")
	}

	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("Invalid config: %w", err)
	}

	return config, nil
}

func runBench(config *entities.Config, jsonOutput bool) {
	logrus.WithFields(logrus.Fields{
		"session":  utils.SessionId,
		"warmups":  config.Warmups,
		"duration": config.Duration,
		"command":  config.Command,
	}).Debug("Starting the benchmark")

	monotonic := clock.Monotonic{}
	scheduler := execute.NewScheduler(monotonic, execute.NewProcessRunner(monotonic))

	stats, totalSeconds := scheduler.Run(config)
	report := execute.MakeReport(stats, totalSeconds, config.Warmups)

	if jsonOutput {
		output, err := json.Marshal(report)
		if err != nil {
			logrus.WithError(err).Fatal("Error marshalling the report")
		}
		fmt.Println(string(output))
	} else {
		fmt.Print(execute.FormatReport(report))
	}

	os.Exit(execute.ExitCode(report))
}

func main() {
	options := &cliOptions{}
	if err := newBenchCommand(options).Execute(); err != nil {
		os.Exit(exitCodeUsageError)
	}
}
