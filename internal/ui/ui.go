// Package ui is the Gio editor window for a venue.
package ui

import (
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/OpenTraceLab/OpenTraceVenue/internal/editor"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"
)

// Run launches the editor for v and blocks until the window closes. E
// exports the venue as JSON to exportPath.
func Run(v *venue.Venue, opts editor.Options, exportPath string) error {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Venue Editor: "+v.Name), app.Size(unit.Dp(1280), unit.Dp(800)))
		if err := Open(w, v, opts, exportPath); err != nil {
			slog.Error("Editor window closed with error", "component", "ui", "error", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
