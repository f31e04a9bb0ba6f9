package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsbngen/config"
	"github.com/katalvlaran/tsbngen/sampler"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <model>",
		Short: "Check a model file and print its compiled structure",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := config.LoadFromPath(args[0])
	if err != nil {
		return err
	}
	m, err := f.Model()
	if err != nil {
		return fmt.Errorf("model %s: %w", args[0], err)
	}
	net, err := sampler.Compile(m)
	if err != nil {
		return fmt.Errorf("model %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: ok\n", args[0])
	fmt.Fprint(out, net.Describe())
	return nil
}
