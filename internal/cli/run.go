package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvqubit/circuit"
	"github.com/katalvlaran/lvqubit/snapshot"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	Save string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <program.yaml>",
		Short: "Run a circuit program and print its trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Save, "save", "o", "", "write the final register to this snapshot file")

	return cmd
}

func runProgram(rootOpts *RootOptions, opts *RunOptions, path string, cmd *cobra.Command) error {
	p, err := circuit.LoadFile(path)
	if err != nil {
		return err
	}

	runOpts := []circuit.Option{circuit.WithLogger(rootOpts.Log)}
	if rootOpts.Seed != 0 {
		runOpts = append(runOpts, circuit.WithSeed(rootOpts.Seed))
	}
	res, err := circuit.Run(p, runOpts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err = res.WriteTrace(out); err != nil {
		return err
	}
	fmt.Fprintf(out, "final: %s\n", res.Register)
	if m := res.Measurements(); len(m) > 0 {
		fmt.Fprintf(out, "measured: %v\n", m)
	}

	if opts.Save != "" {
		if err = snapshot.Save(opts.Save, res.Register); err != nil {
			return err
		}
		rootOpts.Log.Info().Str("path", opts.Save).Msg("snapshot written")
	}

	return nil
}
