package cli

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvqubit/snapshot"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Print a saved register and its outcome probabilities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := snapshot.Load(args[0], rootOpts.registerOptions()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bits:  %d\n", r.BitLength())
			fmt.Fprintf(out, "state: %s\n", r)

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Value", "Bits", "Probability"})
			table.SetAutoFormatHeaders(false)
			for _, o := range r.Probabilities() {
				table.Append([]string{
					strconv.FormatUint(o.Value, 10),
					padBits(o.Value, r.BitLength()),
					fmt.Sprintf("%.4f", o.Probability),
				})
			}
			table.Render()

			return nil
		},
	}
}
