package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/shape"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List sector shapes",
	Long: `Lists every built-in sector shape with the number of vertices of its
generated outline, flat and fully curved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SHAPE\tVERTICES\tARC VERTICES\tRADIAL")
		for _, s := range shape.All() {
			fmt.Fprintf(w, "%s\t%d\t%d\t%v\n", s,
				shape.CanonicalVertexCount(s),
				shape.ExpectedVertexCount(s, shape.MaxCurvature),
				shape.IsRadial(s, shape.MaxCurvature))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(shapesCmd)
}
