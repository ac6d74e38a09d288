package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/script"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"
)

// loadVenue reads a JSON snapshot or builds a layout script, by extension.
func loadVenue(path string) (*venue.Venue, error) {
	v, err := script.Open(path)
	if err != nil {
		return nil, err
	}
	st := v.Stats()
	slog.Debug("Loaded venue", "component", "cli", "path", path, "sectors", st.Sectors, "seats", st.Seats)
	return v, nil
}

// withExt replaces the extension of path.
func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// writeOutput runs write against path, or against the command's output for
// "" and "-".
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}
