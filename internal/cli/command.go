package cli

import (
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

var longDesc = heredoc.Doc(`
	Find a route across a grid of digit costs.

	The input is a rectangle of digits 0-9, one row per line, read from FILE or
	standard input. Moving onto a cell costs its digit. The route runs from the
	top-left cell to the bottom-right cell unless --from and --to say otherwise.

	Values may also come from a YAML file given with --config; flags set on the
	command line take precedence over it.`)

var example = heredoc.Doc(`
	# Cheapest route through a puzzle input
	gridpath --strategy dijkstra input.txt

	# Same grid tiled five times, costs above 9 wrap to 1
	gridpath --tile 5 input.txt

	# Fewest steps using only cells of cost 3 or less
	cat input.txt | gridpath -s bfs -t 3 --print-path`)

// NewCommand returns the gridpath root command wired to the given streams.
func NewCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	o := NewOptions(in, out, errOut)

	cmd := &cobra.Command{
		Use:           "gridpath [flags] [FILE]",
		Short:         "Find a route across a grid of digit costs",
		Long:          longDesc,
		Example:       example,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	o.AddFlags(cmd.Flags())

	return cmd
}
