package ui

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/OpenTraceVenue/internal/editor"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	seating "github.com/OpenTraceLab/OpenTraceVenue/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/render"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/script"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"
)

const (
	rotateStep    = 15.0
	curvatureStep = 10
	resizeStep    = 1.1
	zoomStep      = 1.1
)

type action int

const (
	actSelect action = iota
	actVertex
	actSeat
	actBox
	actUndo
	actRedo
	actRegenerate
	actRotateLeft
	actRotateRight
	actDelete
	actFit
	actExport
	actExportAs
	actOpen
	actToggleLabels
	actDarkMode
	actGrow
	actShrink
)

var (
	lightPalette = theme.Palette{
		Bg:         color.NRGBA{R: 245, G: 246, B: 252, A: 255},
		Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
		ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
	}
	darkPalette = theme.Palette{
		Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
		Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
		ContrastBg: color.NRGBA{R: 120, G: 150, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
		Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
	}
)

type toolButton struct {
	act   action
	name  string
	icon  *widget.Icon
	click widget.Clickable
}

// App drives the Gio venue editor window.
type App struct {
	Window  *app.Window
	Theme   *theme.Theme
	Session *editor.Session

	palette theme.Palette

	camera  *render.Camera
	painter *render.Painter
	layers  *render.LayerConfig
	ops     op.Ops

	buttons    []*toolButton
	exportPath string
	opts       editor.Options

	explorer *explorer.Explorer
	opened   chan openResult

	typeMenu   *menu.DropdownMenu
	typeBtn    widget.Clickable
	statusMenu *menu.DropdownMenu
	statusBtn  widget.Clickable

	canvasTag int
	fitted    bool
	hot       int
	panning   bool
	panLast   f32.Point

	logger *slog.Logger
}

// openResult is a venue loaded from the file picker.
type openResult struct {
	path  string
	venue *venue.Venue
	err   error
}

// New wires the Gio window, theme and editing session together.
func New(window *app.Window, v *venue.Venue, opts editor.Options, exportPath string) *App {
	a := &App{
		Window:     window,
		Theme:      theme.NewTheme("", nil, true),
		Session:    editor.NewSession(v, opts),
		camera:     render.NewCamera(1, 1),
		painter:    render.NewPainter(),
		layers:     render.NewLayerConfig(),
		exportPath: exportPath,
		opts:       opts,
		explorer:   explorer.NewExplorer(window),
		opened:     make(chan openResult, 1),
		hot:        -1,
		logger:     slog.With("component", "ui"),
	}
	a.applyPalette()
	a.initToolbar()
	a.initSeatMenus()
	return a
}

func (a *App) applyPalette() {
	if render.CurrentTheme == render.ThemeDark {
		a.palette = darkPalette
	} else {
		a.palette = lightPalette
	}
	a.Theme.WithPalette(a.palette)
}

// initSeatMenus builds the dropdowns that assign a type or status to the
// selected seats.
func (a *App) initSeatMenus() {
	types := make([]menu.MenuOption, 0, len(seating.SeatTypes))
	for _, t := range seating.SeatTypes {
		types = append(types, a.menuOption(string(t), render.SeatColor(t), func() {
			if n := a.Session.SetSeatType(t); n > 0 {
				a.logger.Info("Changed seat type", "type", t, "count", n)
			}
		}))
	}
	statuses := make([]menu.MenuOption, 0, len(seating.SeatStatuses))
	for _, st := range seating.SeatStatuses {
		statuses = append(statuses, a.menuOption(string(st), render.StatusColor(st), func() {
			if n := a.Session.SetSeatStatus(st); n > 0 {
				a.logger.Info("Changed seat status", "status", st, "count", n)
			}
		}))
	}
	a.typeMenu = menu.NewDropdownMenu([][]menu.MenuOption{types})
	a.typeMenu.MaxWidth = unit.Dp(180)
	a.statusMenu = menu.NewDropdownMenu([][]menu.MenuOption{statuses})
	a.statusMenu.MaxWidth = unit.Dp(180)
}

func (a *App) menuOption(label string, swatch color.NRGBA, apply func()) menu.MenuOption {
	return menu.MenuOption{
		OnClicked: func() error {
			apply()
			a.Window.Invalidate()
			return nil
		},
		Layout: func(gtx menu.C, th *theme.Theme) menu.D {
			lbl := material.Body1(th.Theme, label)
			lbl.Color = swatch
			return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
		},
	}
}

// Run processes Gio events until the window is closed.
func (a *App) Run() error {
	for {
		e := a.Window.Event()
		a.explorer.ListenEvents(e)
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) initToolbar() {
	makeIcon := func(data []byte, name string) *widget.Icon {
		icon, err := widget.NewIcon(data)
		if err != nil {
			a.logger.Warn("Failed to load icon", "icon", name, "error", err)
			return nil
		}
		return icon
	}
	a.buttons = []*toolButton{
		{act: actSelect, name: "Select", icon: makeIcon(icons.MapsNearMe, "select")},
		{act: actVertex, name: "Vertices", icon: makeIcon(icons.EditorFormatShapes, "vertex")},
		{act: actSeat, name: "Seats", icon: makeIcon(icons.ActionEventSeat, "seat")},
		{act: actBox, name: "Box select", icon: makeIcon(icons.ImageCropFree, "box")},
		{act: actUndo, name: "Undo", icon: makeIcon(icons.ContentUndo, "undo")},
		{act: actRedo, name: "Redo", icon: makeIcon(icons.ContentRedo, "redo")},
		{act: actRegenerate, name: "Regenerate", icon: makeIcon(icons.ActionAutorenew, "regenerate")},
		{act: actRotateLeft, name: "Rotate left", icon: makeIcon(icons.ImageRotateLeft, "rotate-left")},
		{act: actRotateRight, name: "Rotate right", icon: makeIcon(icons.ImageRotateRight, "rotate-right")},
		{act: actGrow, name: "Grow sector", icon: makeIcon(icons.NavigationUnfoldMore, "grow")},
		{act: actShrink, name: "Shrink sector", icon: makeIcon(icons.NavigationUnfoldLess, "shrink")},
		{act: actDelete, name: "Delete seats", icon: makeIcon(icons.ActionDelete, "delete")},
		{act: actFit, name: "Fit", icon: makeIcon(icons.NavigationFullscreen, "fit")},
		{act: actOpen, name: "Open", icon: makeIcon(icons.FileFolderOpen, "open")},
		{act: actExport, name: "Export", icon: makeIcon(icons.FileFileDownload, "export")},
		{act: actExportAs, name: "Export as", icon: makeIcon(icons.ContentSave, "export-as")},
		{act: actDarkMode, name: "Dark mode", icon: makeIcon(icons.ActionInvertColors, "dark-mode")},
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	if a.Session.Tick(gtx.Now) {
		a.logger.Debug("Applied settled slider value")
	}
	select {
	case r := <-a.opened:
		a.replaceVenue(r)
	default:
	}
	a.handleKeys(gtx)
	for _, b := range a.buttons {
		if b.click.Clicked(gtx) {
			a.perform(gtx, b.act)
		}
	}

	paint.FillShape(gtx.Ops, a.palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())
	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Flexed(1, a.layoutCanvas),
		layout.Rigid(a.layoutStatus),
	)

	if at, ok := a.Session.NextDeadline(); ok {
		gtx.Execute(op.InvalidateCmd{At: at})
	}
	return dims
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	children := make([]layout.FlexChild, 0, len(a.buttons))
	for _, b := range a.buttons {
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				if b.icon == nil {
					return material.Button(a.Theme.Theme, &b.click, b.name).Layout(gtx)
				}
				btn := material.IconButton(a.Theme.Theme, &b.click, b.icon, b.name)
				btn.Size = unit.Dp(20)
				btn.Inset = layout.UniformInset(unit.Dp(6))
				if a.isActiveTool(b.act) {
					btn.Background = a.palette.ContrastBg
				} else {
					btn.Background = color.NRGBA{R: 120, G: 124, B: 140, A: 255}
				}
				return btn.Layout(gtx)
			})
		}))
	}
	children = append(children,
		layout.Rigid(a.menuButton(&a.typeBtn, a.typeMenu, "Seat type")),
		layout.Rigid(a.menuButton(&a.statusBtn, a.statusMenu, "Status")),
	)
	return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

func (a *App) menuButton(click *widget.Clickable, drop *menu.DropdownMenu, label string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		if click.Clicked(gtx) {
			drop.ToggleVisibility(gtx)
		}
		return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			dims := material.Button(a.Theme.Theme, click, label).Layout(gtx)
			drop.Layout(gtx, a.Theme)
			return dims
		})
	}
}

func (a *App) isActiveTool(act action) bool {
	switch act {
	case actSelect:
		return a.Session.Tool == editor.ToolSelect
	case actVertex:
		return a.Session.Tool == editor.ToolVertex
	case actSeat:
		return a.Session.Tool == editor.ToolSeat
	case actBox:
		return a.Session.Tool == editor.ToolBox
	}
	return false
}

func (a *App) layoutStatus(gtx layout.Context) layout.Dimensions {
	st := a.Session.Venue.Stats()
	text := fmt.Sprintf("%s | tool: %s | %d sectors, %d seats | %d selected | zoom %.2f",
		a.Session.Venue.Name, a.Session.Tool, st.Sectors, st.Seats,
		len(a.Session.Selection.Seats), a.camera.Zoom)
	if n := a.Session.Notice(); n != "" {
		text += " | " + n
	}
	return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		label := material.Body2(a.Theme.Theme, text)
		label.MaxLines = 1
		return label.Layout(gtx)
	})
}

func (a *App) layoutCanvas(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	a.camera.UpdateScreenSize(size.X, size.Y)
	if !a.fitted && size.X > 0 && size.Y > 0 {
		a.fit()
		a.fitted = true
	}

	a.handlePointer(gtx)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, &a.canvasTag)
	pointer.CursorCrosshair.Add(gtx.Ops)

	ov := render.Overlay{
		Sector:    a.Session.Selection.Sector,
		Seats:     a.Session.Selection.Seats,
		HotVertex: a.hot,
		Layers:    a.layers,
	}
	if i := a.Session.DragVertex(); i >= 0 {
		ov.HotVertex = i
	}
	if box, ok := a.Session.DragBox(); ok {
		ov.Box = &box
	}
	a.painter.DrawVenue(gtx, a.camera, a.Session.Venue, ov)
	return layout.Dimensions{Size: size}
}

func (a *App) world(p f32.Point) geometry.Vertex {
	return a.camera.ScreenToWorld(float64(p.X), float64(p.Y))
}

func (a *App) handlePointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  &a.canvasTag,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Move | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
		})
		if !ok {
			break
		}
		pev, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		switch pev.Kind {
		case pointer.Press:
			if pev.Buttons.Contain(pointer.ButtonSecondary) || pev.Buttons.Contain(pointer.ButtonTertiary) {
				a.panning = true
				a.panLast = pev.Position
				continue
			}
			if pev.Buttons.Contain(pointer.ButtonPrimary) {
				a.press(pev)
			}

		case pointer.Drag:
			if a.panning {
				d := pev.Position.Sub(a.panLast)
				a.camera.Pan(float64(d.X), float64(d.Y))
				a.panLast = pev.Position
			} else if a.Session.Dragging() {
				a.Session.UpdateDrag(a.world(pev.Position))
			}

		case pointer.Release:
			if a.panning {
				a.panning = false
			} else if a.Session.Dragging() {
				if err := a.Session.EndDrag(); err != nil {
					a.logger.Warn("Drag ended with error", "error", err)
				}
			}

		case pointer.Cancel:
			a.panning = false
			if a.Session.Dragging() {
				a.Session.CancelDrag()
			}

		case pointer.Move:
			a.hot = -1
			if sec, err := a.Session.Selected(); err == nil {
				if i, ok := a.Session.Radii.VertexAt(a.world(pev.Position), sec.Target(), a.camera.Zoom); ok {
					a.hot = i
				}
			}

		case pointer.Scroll:
			factor := zoomStep
			if pev.Scroll.Y > 0 {
				factor = 1 / zoomStep
			}
			a.camera.ZoomAt(float64(pev.Position.X), float64(pev.Position.Y), factor)
		}
		gtx.Execute(op.InvalidateCmd{})
	}
}

// press starts the gesture the active tool implies for a primary press.
func (a *App) press(pev pointer.Event) {
	s := a.Session
	pt := a.world(pev.Position)
	zoom := a.camera.Zoom

	switch s.Tool {
	case editor.ToolVertex:
		switch {
		case pev.Modifiers.Contain(key.ModCtrl):
			s.InsertVertexAt(pt, zoom)
		case pev.Modifiers.Contain(key.ModAlt):
			s.RemoveVertexAt(pt, zoom)
		default:
			if err := s.BeginVertexDrag(pt, zoom); err != nil {
				s.Select(pt)
			}
		}

	case editor.ToolSeat:
		if pev.Modifiers.Contain(key.ModShift) {
			s.ToggleSeat(pt, true)
			return
		}
		if err := s.BeginSeatDrag(pt); err != nil {
			s.BeginBoxSelect(pt)
		}

	case editor.ToolBox:
		s.BeginBoxSelect(pt)

	default:
		if err := s.BeginVertexDrag(pt, zoom); err == nil {
			return
		}
		s.Select(pt)
	}
}

type shortcut struct {
	filter key.Filter
	act    action
}

var shortcuts = []shortcut{
	{key.Filter{Name: "G"}, actRegenerate},
	{key.Filter{Name: "["}, actRotateLeft},
	{key.Filter{Name: "]"}, actRotateRight},
	{key.Filter{Name: "Z", Required: key.ModShortcut}, actUndo},
	{key.Filter{Name: "Y", Required: key.ModShortcut}, actRedo},
	{key.Filter{Name: key.NameDeleteForward}, actDelete},
	{key.Filter{Name: key.NameDeleteBackward}, actDelete},
	{key.Filter{Name: "F"}, actFit},
	{key.Filter{Name: "E"}, actExport},
	{key.Filter{Name: "V"}, actVertex},
	{key.Filter{Name: "S"}, actSeat},
	{key.Filter{Name: "B"}, actBox},
	{key.Filter{Name: "L"}, actToggleLabels},
	{key.Filter{Name: "D"}, actDarkMode},
	{key.Filter{Name: "O", Required: key.ModShortcut}, actOpen},
	{key.Filter{Name: "S", Required: key.ModShortcut}, actExportAs},
	{key.Filter{Name: key.NameUpArrow, Required: key.ModShift}, actGrow},
	{key.Filter{Name: key.NameDownArrow, Required: key.ModShift}, actShrink},
}

func (a *App) handleKeys(gtx layout.Context) {
	for _, sc := range shortcuts {
		for {
			ev, ok := gtx.Event(sc.filter)
			if !ok {
				break
			}
			if e, ok := ev.(key.Event); ok && e.State == key.Press {
				a.perform(gtx, sc.act)
			}
		}
	}

	for _, k := range []struct {
		filter key.Filter
		delta  int
	}{
		{key.Filter{Name: "+", Optional: key.ModShift}, curvatureStep},
		{key.Filter{Name: "-"}, -curvatureStep},
	} {
		for {
			ev, ok := gtx.Event(k.filter)
			if !ok {
				break
			}
			if e, ok := ev.(key.Event); ok && e.State == key.Press {
				if sec, err := a.Session.Selected(); err == nil {
					a.Session.SetCurvature(gtx.Now, sec.Curvature+k.delta)
				}
				gtx.Execute(op.InvalidateCmd{})
			}
		}
	}

	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			if a.Session.Dragging() {
				a.Session.CancelDrag()
			} else {
				a.Session.Tool = editor.ToolSelect
			}
			gtx.Execute(op.InvalidateCmd{})
		}
	}
}

func (a *App) perform(gtx layout.Context, act action) {
	s := a.Session
	switch act {
	case actSelect:
		s.Tool = editor.ToolSelect
	case actVertex:
		s.Tool = editor.ToolVertex
	case actSeat:
		s.Tool = editor.ToolSeat
	case actBox:
		s.Tool = editor.ToolBox
	case actUndo:
		s.Undo()
	case actRedo:
		s.Redo()
	case actRegenerate:
		s.Regenerate()
	case actRotateLeft:
		s.Rotate(gtx.Now, -rotateStep)
	case actRotateRight:
		s.Rotate(gtx.Now, rotateStep)
	case actGrow:
		a.resizeSelected(resizeStep)
	case actShrink:
		a.resizeSelected(1 / resizeStep)
	case actDelete:
		if n := s.RemoveSelectedSeats(); n > 0 {
			a.logger.Info("Removed seats", "count", n)
		}
	case actFit:
		a.fit()
	case actToggleLabels:
		a.layers.Toggle(render.LayerLabels)
	case actExport:
		if err := a.export(); err != nil {
			a.logger.Error("Export failed", "path", a.exportPath, "error", err)
		}
	case actExportAs:
		a.exportAs()
	case actOpen:
		a.openFile()
	case actDarkMode:
		if render.CurrentTheme == render.ThemeDark {
			render.SetTheme(render.ThemeLight)
		} else {
			render.SetTheme(render.ThemeDark)
		}
		a.applyPalette()
	}
	gtx.Execute(op.InvalidateCmd{})
}

// resizeSelected scales the selected sector about its centre. Seats stay
// where they are until the next regenerate.
func (a *App) resizeSelected(f float64) {
	sec, err := a.Session.Selected()
	if err != nil {
		return
	}
	b := sec.Frame
	if sec.IsCustomized() {
		b = sec.Bounds()
	}
	c := b.Center()
	w, h := b.Width*f, b.Height*f
	if err := a.Session.Resize(geometry.Rect(c.X-w/2, c.Y-h/2, w, h)); err != nil {
		a.logger.Warn("Resize refused", "sector", sec.Name, "error", err)
	}
}

func (a *App) fit() {
	b := a.Session.Venue.Bounds()
	pad := math.Max(b.Width, b.Height) * 0.05
	a.camera.Fit(geometry.Rect(b.X-pad, b.Y-pad, b.Width+2*pad, b.Height+2*pad))
}

func (a *App) export() error {
	if a.exportPath == "" {
		return errors.New("no export path")
	}
	f, err := os.Create(a.exportPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", a.exportPath, err)
	}
	defer f.Close()
	if err := a.Session.Venue.Export(f); err != nil {
		return err
	}
	a.logger.Info("Exported venue", "path", a.exportPath)
	return nil
}

// exportAs asks for a file and writes the snapshot to it. The snapshot is
// taken before the dialog opens so the venue is only read on the UI
// goroutine.
func (a *App) exportAs() {
	var buf bytes.Buffer
	if err := a.Session.Venue.Export(&buf); err != nil {
		a.logger.Error("Export failed", "error", err)
		return
	}
	name := filepath.Base(a.exportPath)
	if a.exportPath == "" {
		name = "venue.json"
	}
	go func() {
		w, err := a.explorer.CreateFile(name)
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				a.logger.Error("Save dialog failed", "error", err)
			}
			return
		}
		defer w.Close()
		if _, err := w.Write(buf.Bytes()); err != nil {
			a.logger.Error("Export failed", "error", err)
			return
		}
		a.logger.Info("Exported venue", "file", name)
	}()
}

// openFile asks for a layout script or snapshot and loads it off the UI
// goroutine. The result is picked up by the next frame.
func (a *App) openFile() {
	go func() {
		file, err := a.explorer.ChooseFile("vl", "json")
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				a.logger.Error("File picker failed", "error", err)
			}
			return
		}
		defer file.Close()

		f, ok := file.(*os.File)
		if !ok {
			a.logger.Error("Unable to get file path from picker")
			return
		}
		v, err := script.Open(f.Name())
		a.opened <- openResult{path: f.Name(), venue: v, err: err}
		a.Window.Invalidate()
	}()
}

// replaceVenue starts a fresh session on a venue chosen in the file picker.
func (a *App) replaceVenue(r openResult) {
	if r.err != nil {
		a.logger.Error("Open failed", "path", r.path, "error", r.err)
		return
	}
	a.Session = editor.NewSession(r.venue, a.opts)
	a.exportPath = strings.TrimSuffix(r.path, filepath.Ext(r.path)) + ".json"
	a.fitted = false
	a.hot = -1
	a.Window.Option(app.Title("Venue Editor: " + r.venue.Name))
	a.logger.Info("Opened venue", "path", r.path, "sectors", len(r.venue.Sectors))
}

// Open creates a session for v and shows it in a new window. It blocks
// until the window closes.
func Open(w *app.Window, v *venue.Venue, opts editor.Options, exportPath string) error {
	return New(w, v, opts, exportPath).Run()
}
