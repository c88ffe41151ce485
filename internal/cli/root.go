package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvqubit/internal/config"
	"github.com/katalvlaran/lvqubit/internal/logger"
	"github.com/katalvlaran/lvqubit/qubit"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Seed    uint64
	Verbose bool

	// Resolved in PersistentPreRunE.
	Config *config.Config
	Log    zerolog.Logger
}

// NewRootCommand creates the root command for the qsim CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "qsim",
		Short: "qsim - sparse qubit register simulator",
		Long: `Simulate small qubit registers on a sparse superposition.

Registers are written in ket notation, e.g. "|0>+|1>" or "|01>-|10>".
Settings are read from QSIM_* environment variables and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				opts.Seed = cfg.Seed
			}
			level := cfg.LogLevel
			if opts.Verbose {
				level = "debug"
			}
			opts.Config = cfg
			opts.Log = logger.New(logger.Config{Level: level, Pretty: cfg.LogPretty, Out: cmd.ErrOrStderr()})
			opts.Log.Debug().Uint64("seed", opts.Seed).Int("shots", cfg.Shots).Msg("configuration loaded")

			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().Uint64Var(&opts.Seed, "seed", 0, "random seed for measurements (0 = entropy)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")

	// Add subcommands
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewMeasureCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))

	return cmd
}

// registerOptions returns the qubit options implied by the global flags.
func (o *RootOptions) registerOptions() []qubit.Option {
	out := []qubit.Option{qubit.WithLogger(o.Log)}
	if o.Seed != 0 {
		out = append(out, qubit.WithSeed(o.Seed))
	}
	return out
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <ket>",
		Short: "Parse a ket literal and print the normalized register",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := qubit.FromKet(args[0], rootOpts.registerOptions()...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bits:  %d\n", r.BitLength())
			fmt.Fprintf(out, "terms: %d\n", r.Len())
			fmt.Fprintf(out, "state: %s\n", r)

			return nil
		},
	}
}
