// Package cli wires the takeoff command tree: one-off evaluations, obstacle
// height sweeps and the HTTP API.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yegors/takeoff/internal/config"
	"github.com/yegors/takeoff/internal/takeoff"
	"github.com/yegors/takeoff/pkg/logger"
)

// app carries what every subcommand needs once flags have been parsed.
type app struct {
	config *config.Config
	logger *logger.Logger
	out    io.Writer
}

// NewRootCommand builds the command tree. Results go to out, logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out}

	var (
		configPath string
		logLevel   string
		logFormat  string
	)

	root := &cobra.Command{
		Use:           "takeoff",
		Short:         "Take-off distance calculator",
		Long:          `Computes transition, climb and total take-off distance over an obstacle from closed-form performance equations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			if flags.Changed("log-format") {
				cfg.Logging.Format = logFormat
			}
			cfg.Logging.Output = errOut

			log, err := logger.New(cfg.Logging)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}

			a.config = cfg
			a.logger = log
			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format: console, json")

	root.AddCommand(
		newComputeCommand(a),
		newSweepCommand(a),
		newServeCommand(a),
	)

	return root
}

// profile resolves the named aircraft from the loaded config.
func (a *app) profile(name string) (config.AircraftConfig, error) {
	p, ok := a.config.FindAircraft(name)
	if !ok {
		return config.AircraftConfig{}, fmt.Errorf("unknown aircraft %q (configured: %v)", name, a.config.AircraftNames())
	}
	return p, nil
}

// exitCode maps calculation failures onto distinct process exit codes.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, takeoff.ErrInvalidInput):
		return 2
	case errors.Is(err, takeoff.ErrDomain):
		return 3
	default:
		return 1
	}
}

// Execute runs the command tree against os-level streams and returns the
// process exit code.
func Execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	}
	return exitCode(err)
}
