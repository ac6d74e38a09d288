package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build <script.vl>",
	Short: "Build a layout script into a JSON snapshot",
	Long: `Parses a venue layout script, lays out the seats of every sector and
writes the venue as a JSON snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadVenue(args[0])
		if err != nil {
			return err
		}
		return writeOutput(cmd, buildOutput, func(w io.Writer) error {
			if err := v.Export(w); err != nil {
				return fmt.Errorf("failed to export venue: %w", err)
			}
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <script.vl|snapshot.json>",
	Short: "Count the seats of a venue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadVenue(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		st := v.Stats()
		fmt.Fprintf(out, "Venue: %s\n", v.Name)
		fmt.Fprintf(out, "Sectors: %d\n", st.Sectors)
		fmt.Fprintf(out, "Seats: %d\n", st.Seats)
		for _, sec := range v.Sectors {
			fmt.Fprintf(out, "  %-16s %-14s curvature %3d  %4d seats\n",
				sec.Name, sec.Shape, sec.Curvature, len(sec.Seats))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(statsCmd)

	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output file (default stdout)")
}
