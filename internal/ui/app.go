// Package ui is the Fyne desktop front end: an N×N grid of clickable cells
// over a board.Board, with "Find Shortest Path" and "Reset" buttons.
package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/board"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/render"
)

const (
	appTitle = "Grid Shortest Path Finder"

	// Messages
	msgNotReady  = "Please set both Start and End points."
	msgNoPath    = "No path found!"
	msgFoundPath = "Path found! Size: %d steps."

	statusStart  = "Click a cell to place the start."
	statusEnd    = "Click another cell to place the end."
	statusToggle = "Click cells to toggle walls, then find the path."
)

// PathApp is the main window.
type PathApp struct {
	app    fyne.App
	window fyne.Window
	cfg    config.Config
	board  *board.Board
	logger *slog.Logger

	colors [5]color.Color
	cells  [][]*canvas.Rectangle
	status *widget.Label
}

// NewPathApp builds the window for b inside fyneApp. Pass app.New() in
// production and test.NewApp() in tests.
func NewPathApp(fyneApp fyne.App, cfg config.Config, b *board.Board, logger *slog.Logger) *PathApp {
	if logger == nil {
		logger = slog.Default()
	}
	window := fyneApp.NewWindow(appTitle)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	a := &PathApp{
		app:    fyneApp,
		window: window,
		cfg:    cfg,
		board:  b,
		logger: logger,
		colors: render.DefaultStyle(cfg.Window.CellPx).Colors,
		status: widget.NewLabel(statusStart),
	}
	a.window.SetContent(a.createMainContent())
	a.refresh()

	return a
}

// Run shows the window and blocks until it is closed.
func (a *PathApp) Run() {
	a.window.ShowAndRun()
}

// Window exposes the underlying window.
func (a *PathApp) Window() fyne.Window { return a.window }

// createMainContent lays out the grid above the two action buttons.
func (a *PathApp) createMainContent() fyne.CanvasObject {
	n := a.board.Size()
	side := float32(a.cfg.Window.CellPx)

	a.cells = make([][]*canvas.Rectangle, n)
	objects := make([]fyne.CanvasObject, 0, n*n)
	for r := 0; r < n; r++ {
		a.cells[r] = make([]*canvas.Rectangle, n)
		for c := 0; c < n; c++ {
			cell := grid.Cell{Row: r, Col: c}
			rect := canvas.NewRectangle(a.colors[board.Empty])
			rect.SetMinSize(fyne.NewSize(side, side))
			rect.StrokeColor = color.Gray{Y: 128}
			rect.StrokeWidth = 1
			btn := widget.NewButton("", func() { a.handleCellTapped(cell) })
			btn.Importance = widget.LowImportance
			a.cells[r][c] = rect
			objects = append(objects, container.NewStack(rect, btn))
		}
	}
	gridBox := container.NewGridWithColumns(n, objects...)

	findBtn := widget.NewButton("Find Shortest Path", a.handleFindPath)
	resetBtn := widget.NewButton("Reset", a.handleReset)
	buttons := container.NewGridWithColumns(2, findBtn, resetBtn)

	footer := container.NewVBox(buttons, a.status)
	return container.NewBorder(nil, footer, nil, nil, container.NewCenter(gridBox))
}

func (a *PathApp) handleCellTapped(c grid.Cell) {
	if _, err := a.board.Click(c); err != nil {
		a.showError("Click", err)
		return
	}
	a.refresh()
}

func (a *PathApp) handleFindPath() {
	out, err := a.board.FindPath()
	switch {
	case errors.Is(err, board.ErrNotReady):
		dialog.ShowInformation("Error", msgNotReady, a.window)
		return
	case err != nil:
		a.showError("Find path", err)
		return
	}

	a.refresh()
	title, msg := outcomeMessage(out)
	if !out.Found {
		a.status.SetText(breachStatus(out.Walls))
	}
	dialog.ShowInformation(title, msg, a.window)
}

func (a *PathApp) handleReset() {
	a.board.Reset()
	a.refresh()
}

// refresh repaints every cell from a fresh snapshot.
func (a *PathApp) refresh() {
	snap := a.board.Snapshot()
	for r, row := range snap.Kinds() {
		for c, k := range row {
			rect := a.cells[r][c]
			if rect.FillColor == a.colors[k] {
				continue
			}
			rect.FillColor = a.colors[k]
			rect.Refresh()
		}
	}
	a.status.SetText(stateStatus(snap))
}

func (a *PathApp) showError(title string, err error) {
	a.logger.Error(title, slog.String("error", err.Error()))
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.window)
}

// outcomeMessage returns the dialog title and text for a finished query.
func outcomeMessage(out board.Outcome) (title, msg string) {
	if out.Found {
		return "Success", fmt.Sprintf(msgFoundPath, out.Steps())
	}
	return "Result", msgNoPath
}

func breachStatus(walls int) string {
	if walls == 1 {
		return "Clearing 1 wall would connect start and end."
	}
	return fmt.Sprintf("Clearing %d walls would connect start and end.", walls)
}

func stateStatus(s board.Snapshot) string {
	switch s.State {
	case board.AwaitingStart:
		return statusStart
	case board.AwaitingEnd:
		return statusEnd
	}
	if steps := s.Steps(); steps > 0 {
		return fmt.Sprintf("Shortest path: %d steps.", steps)
	}
	return statusToggle
}
