package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvqubit/qubit"
)

// MeasureOptions holds flags for the measure command.
type MeasureOptions struct {
	Bits  []int
	Shots int
}

// NewMeasureCommand creates the measure command.
func NewMeasureCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MeasureOptions{}

	cmd := &cobra.Command{
		Use:   "measure <ket>",
		Short: "Measure a register repeatedly and print the outcome histogram",
		Long: `Measure a fresh copy of the register once per shot and count outcomes.

With --bits the outcome packs the selected bits, lowest index first;
without it every bit is measured.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeasure(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().IntSliceVarP(&opts.Bits, "bits", "b", nil, "bit indices to measure (default all)")
	cmd.Flags().IntVarP(&opts.Shots, "shots", "n", 0, "number of measurements (default QSIM_SHOTS)")

	return cmd
}

func runMeasure(rootOpts *RootOptions, opts *MeasureOptions, literal string, cmd *cobra.Command) error {
	shots := opts.Shots
	if shots <= 0 {
		shots = rootOpts.Config.Shots
	}
	base, err := qubit.FromKet(literal, rootOpts.registerOptions()...)
	if err != nil {
		return err
	}

	sel, width := qubit.All(), base.BitLength()
	if len(opts.Bits) > 0 {
		sel, width = qubit.Bits(opts.Bits...), uint(len(opts.Bits))
	}

	counts := make(map[uint64]int)
	for i := 0; i < shots; i++ {
		m, err := base.Clone().Measure(sel)
		if err != nil {
			return err
		}
		counts[m.Value]++
	}
	rootOpts.Log.Info().Int("shots", shots).Int("outcomes", len(counts)).Msg("measurement done")

	return writeHistogram(cmd.OutOrStdout(), counts, shots, width)
}

// writeHistogram renders outcome counts sorted by value.
func writeHistogram(w io.Writer, counts map[uint64]int, shots int, width uint) error {
	values := make([]uint64, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	slices.Sort(values)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Value", "Bits", "Count", "Frequency"})
	table.SetAutoFormatHeaders(false)
	for _, v := range values {
		table.Append([]string{
			strconv.FormatUint(v, 10),
			padBits(v, width),
			strconv.Itoa(counts[v]),
			fmt.Sprintf("%.4f", float64(counts[v])/float64(shots)),
		})
	}
	table.Render()

	return nil
}

// padBits formats v in binary, zero-padded to width digits.
func padBits(v uint64, width uint) string {
	s := strconv.FormatUint(v, 2)
	if pad := int(width) - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}
