package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceVenue/internal/config"
	"github.com/OpenTraceLab/OpenTraceVenue/internal/logger"
)

var (
	// Global flags
	verbose bool
	envFile string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "venue",
	Short: "OpenTraceVenue - venue seating layout tools",
	Long: `OpenTraceVenue lays out seats in venue sectors and edits them.

Examples:
  venue shapes                               # List sector shapes
  venue generate --shape arc --curvature 100 # Lay out one sector
  venue build hall.vl -o hall.json           # Build a layout script
  venue svg hall.vl -o hall.svg --labels     # Plot a venue
  venue view hall.vl                         # Open the editor`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(envFile)
		if err != nil {
			return err
		}
		cfg = c
		logger.Init(cfg.Logging, verbose, os.Stderr)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load settings from this .env file")
}
