package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/svg"
)

var svgOpts struct {
	output string
	labels bool
	margin float64
}

var svgCmd = &cobra.Command{
	Use:   "svg <script.vl|snapshot.json>",
	Short: "Plot a venue as SVG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadVenue(args[0])
		if err != nil {
			return err
		}
		opts := svg.DefaultOptions()
		opts.Labels = svgOpts.labels
		if cmd.Flags().Changed("margin") {
			opts.Margin = svgOpts.margin
		}
		return writeOutput(cmd, svgOpts.output, func(w io.Writer) error {
			return svg.Write(w, v, opts)
		})
	},
}

func init() {
	rootCmd.AddCommand(svgCmd)

	svgCmd.Flags().StringVarP(&svgOpts.output, "output", "o", "", "output file (default stdout)")
	svgCmd.Flags().BoolVar(&svgOpts.labels, "labels", false, "draw seat labels")
	svgCmd.Flags().Float64Var(&svgOpts.margin, "margin", 20, "margin around the venue")
}
