package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/katalvlaran/tsbngen/config"
	"github.com/katalvlaran/tsbngen/sampler"
)

// Fallbacks when neither a flag nor the model's run section sets a value.
const (
	defaultSeries  = 1
	defaultLength  = 10
	defaultSeed    = 1
	defaultWorkers = 1
)

type generateFlags struct {
	series     int
	length     int
	seed       int64
	workers    int
	switchTime int
	output     string
	indent     bool
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate <model>",
		Short: "Sample series from a model file and write them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], root, flags)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&flags.series, "series", "n", defaultSeries, "Number of independent series")
	f.IntVarP(&flags.length, "length", "t", defaultLength, "Steps per series")
	f.Int64Var(&flags.seed, "seed", defaultSeed, "Master random seed")
	f.IntVarP(&flags.workers, "workers", "w", defaultWorkers, "Series sampled concurrently")
	f.IntVar(&flags.switchTime, "switch-time", 0, "First step of the secondary phase (0 = largest secondary lag)")
	f.StringVarP(&flags.output, "output", "o", "", "Output file (default stdout)")
	f.BoolVar(&flags.indent, "indent", false, "Indent JSON output")
	return cmd
}

func runGenerate(cmd *cobra.Command, path string, root *rootFlags, flags *generateFlags) error {
	f, err := config.LoadFromPath(path)
	if err != nil {
		return err
	}
	resolveRun(cmd, flags, f)

	m, err := f.Model()
	if err != nil {
		return fmt.Errorf("model %s: %w", path, err)
	}
	if flags.workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", flags.workers)
	}
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	gen, err := sampler.NewGenerator(m,
		sampler.WithSeed(flags.seed),
		sampler.WithWorkers(flags.workers),
		sampler.WithLogr(log.WithValues("model", path)),
	)
	if err != nil {
		return fmt.Errorf("model %s: %w", path, err)
	}
	res, err := gen.Generate(cmd.Context(), flags.series, flags.length)
	if err != nil {
		return err
	}

	if flags.output == "" {
		return writeResult(cmd.OutOrStdout(), res, flags.indent)
	}
	out, err := os.Create(flags.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	return writeAndClose(out, res, flags.indent)
}

// writeAndClose writes res to wc and closes it; a close failure is reported
// even when the write succeeded.
func writeAndClose(wc io.WriteCloser, res *sampler.Result, indent bool) error {
	err := writeResult(wc, res, indent)
	if cerr := wc.Close(); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("close output: %w", cerr))
	}

	return err
}

// writeResult encodes res as one JSON document.
func writeResult(w io.Writer, res *sampler.Result, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}

// resolveRun fills unset flags from the model's run section and applies an
// explicit --switch-time to the model.
func resolveRun(cmd *cobra.Command, flags *generateFlags, f *config.File) {
	changed := cmd.Flags().Changed
	if !changed("series") && f.Run.Series > 0 {
		flags.series = f.Run.Series
	}
	if !changed("length") && f.Run.Length > 0 {
		flags.length = f.Run.Length
	}
	if !changed("seed") && f.Run.Seed != 0 {
		flags.seed = f.Run.Seed
	}
	if !changed("workers") && f.Run.Workers > 0 {
		flags.workers = f.Run.Workers
	}
	if changed("switch-time") {
		f.SwitchTime = flags.switchTime
	}
}
