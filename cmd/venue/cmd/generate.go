package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/labels"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/shape"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"
)

var genOpts struct {
	shape     string
	width     float64
	height    float64
	rows      int
	cols      int
	seatSize  float64
	spacing   float64
	curvature int
	rotation  float64
	rowType   string
	rowStart  string
	numbering string
	seatStart int
	direction string
	json      bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Lay out the seats of a single sector",
	Long: `Generates a sector outline and packs seats into it, then prints each row
and how many of the requested seats fit. With --json the sector is printed as
a venue snapshot instead.

Rows and cols of 0 scan the whole outline.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.StringVar(&genOpts.shape, "shape", string(shape.Rectangle), "sector shape (see 'venue shapes')")
	f.Float64Var(&genOpts.width, "width", 400, "sector width")
	f.Float64Var(&genOpts.height, "height", 300, "sector height")
	f.IntVar(&genOpts.rows, "rows", 4, "number of rows")
	f.IntVar(&genOpts.cols, "cols", 4, "seats per row")
	f.Float64Var(&genOpts.seatSize, "seat-size", 0, "seat size (default from VENUE_SEAT_SIZE)")
	f.Float64Var(&genOpts.spacing, "spacing", -1, "gap between seats and rows (default from VENUE_SEAT_SPACING)")
	f.IntVar(&genOpts.curvature, "curvature", 0, "curvature 0..100")
	f.Float64Var(&genOpts.rotation, "rotation", 0, "seat grid rotation in degrees")
	f.StringVar(&genOpts.rowType, "row-type", string(labels.RowAlpha), "row labels: alpha, numeric or roman")
	f.StringVar(&genOpts.rowStart, "row-start", "", "first row label")
	f.StringVar(&genOpts.numbering, "numbering", string(labels.Numeric), "seat numbering scheme")
	f.IntVar(&genOpts.seatStart, "seat-start", 1, "first seat number")
	f.StringVar(&genOpts.direction, "direction", string(labels.LeftToRight), "numbering direction: ltr, rtl or center-out")
	f.BoolVar(&genOpts.json, "json", false, "print a JSON snapshot")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := slog.With("component", "cli", "command", "generate")

	sh, ok := shape.Parse(genOpts.shape)
	if !ok {
		return fmt.Errorf("unknown shape %q", genOpts.shape)
	}
	if genOpts.curvature < shape.MinCurvature || genOpts.curvature > shape.MaxCurvature {
		return fmt.Errorf("curvature %d not within %d..%d", genOpts.curvature, shape.MinCurvature, shape.MaxCurvature)
	}
	b := geometry.Rect(0, 0, genOpts.width, genOpts.height)
	if b.Width < layout.MinSectorSize || b.Height < layout.MinSectorSize ||
		b.Width > layout.MaxSectorSize || b.Height > layout.MaxSectorSize {
		return fmt.Errorf("%w: %gx%g", layout.ErrBoundsOutOfRange, b.Width, b.Height)
	}

	s := venue.NewSector(strings.ToUpper(genOpts.shape[:1])+genOpts.shape[1:], sh, b)
	if err := applyGenerateFlags(cmd, &s.Params); err != nil {
		return err
	}
	s.SetCurvature(genOpts.curvature)
	report := s.Regenerate()
	log.Debug("Generated sector", "shape", sh, "strategy", report.Strategy.String(), "seats", report.Generated)

	v := venue.New("Generated")
	v.Add(s)
	if genOpts.json {
		return v.Export(cmd.OutOrStdout())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sector: %s %gx%g, curvature %d, %d vertices\n",
		sh, b.Width, b.Height, s.Curvature, len(s.Polygon))
	fmt.Fprintf(out, "Layout: %s\n", report)
	printRows(cmd, s)
	return nil
}

func applyGenerateFlags(cmd *cobra.Command, p *layout.Params) error {
	p.Rows, p.Cols = genOpts.rows, genOpts.cols
	p.SeatSize = cfg.Layout.SeatSize
	if cmd.Flags().Changed("seat-size") {
		p.SeatSize = genOpts.seatSize
	}
	p.SeatSpacing, p.RowSpacing = cfg.Layout.SeatSpacing, cfg.Layout.SeatSpacing
	if cmd.Flags().Changed("spacing") {
		p.SeatSpacing, p.RowSpacing = genOpts.spacing, genOpts.spacing
	}
	p.Rotation = genOpts.rotation

	rt, ok := labels.ParseRowType(genOpts.rowType)
	if !ok {
		return fmt.Errorf("unknown row type %q", genOpts.rowType)
	}
	sc, ok := labels.ParseScheme(genOpts.numbering)
	if !ok {
		return fmt.Errorf("unknown numbering scheme %q (one of %v)", genOpts.numbering, labels.Schemes())
	}
	dir, ok := labels.ParseDirection(genOpts.direction)
	if !ok {
		return fmt.Errorf("unknown direction %q", genOpts.direction)
	}
	p.RowType, p.RowStart = rt, genOpts.rowStart
	p.Scheme, p.SeatStart, p.Direction = sc, genOpts.seatStart, dir
	return nil
}

// printRows lists each row's seat numbers in layout order.
func printRows(cmd *cobra.Command, s *venue.Sector) {
	out := cmd.OutOrStdout()
	var row string
	var numbers []string
	flush := func() {
		if row != "" {
			fmt.Fprintf(out, "  %-4s %2d: %s\n", row, len(numbers), strings.Join(numbers, " "))
		}
	}
	for _, seat := range s.Seats {
		if seat.Row != row {
			flush()
			row, numbers = seat.Row, nil
		}
		numbers = append(numbers, seat.Number)
	}
	flush()
}
