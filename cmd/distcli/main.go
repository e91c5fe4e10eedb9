package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"godist/internal"
	"godist/internal/config"
)

// app carries what every subcommand needs once flags are parsed
type app struct {
	cfg    *config.Config
	logger *internal.Logger
	output string
}

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "distcli",
		Short:         "Inspect, evaluate and fit parametric probability distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text or json (default from OUTPUT_FORMAT)")

	rootCmd.AddCommand(
		newListCmd(a),
		newDescribeCmd(a),
		newPDFCmd(a),
		newComposeCmd(a),
		newRefreshCmd(a),
		newSampleCmd(a),
		newZScoreCmd(a),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.output != "" {
		if err := cfg.SetOutputFormat(a.output); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = internal.NewLoggerTo(cfg.LogLevel, cmd.ErrOrStderr())
	a.logger.Debug("[distcli] log level %s, output %s", cfg.LogLevel, cfg.Output.Format)
	return nil
}
