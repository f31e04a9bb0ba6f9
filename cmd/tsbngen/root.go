package main

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsbngen/internal/logging"
)

type rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "tsbngen",
		Short: "Synthetic time series from dynamic Bayesian networks",
		Long: "tsbngen samples multivariate discrete/continuous time series from a\n" +
			"dynamic Bayesian network described in a YAML or JSON model file.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newGenerateCmd(flags))
	return cmd
}

// logger builds the run logger on the command's error stream.
func (f *rootFlags) logger(cmd *cobra.Command) (logr.Logger, error) {
	level, err := logging.ParseLevel(f.logLevel)
	if err != nil {
		return logr.Discard(), err
	}
	h, err := logging.NewHandler(level, f.logFormat, cmd.ErrOrStderr())
	if err != nil {
		return logr.Discard(), err
	}
	return logging.New(h, "sampler"), nil
}
