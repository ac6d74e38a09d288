package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceVenue/internal/editor"
	"github.com/OpenTraceLab/OpenTraceVenue/internal/ui"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/hittest"
)

var viewOutput string

var viewCmd = &cobra.Command{
	Use:   "view <script.vl|snapshot.json>",
	Short: "Open a venue in the editor",
	Long: `Opens the venue editor window. Press E in the editor to save the venue as
a JSON snapshot next to the input, or to the --output path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadVenue(args[0])
		if err != nil {
			return err
		}
		out := viewOutput
		if out == "" {
			out = withExt(args[0], ".json")
		}
		opts := editor.Options{
			HistoryLimit: cfg.Editor.HistoryLimit,
			Debounce:     cfg.Editor.Debounce,
			Radii:        hittest.Radii{Vertex: cfg.Editor.HitRadius, Edge: cfg.Editor.EdgeThreshold},
		}
		return ui.Run(v, opts, out)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().StringVarP(&viewOutput, "output", "o", "", "export path (default: input with .json)")
}
