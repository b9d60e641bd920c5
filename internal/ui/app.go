package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"MyWhiteboard/internal/config"
)

// AppID identifies the application to fyne for preferences and storage.
const AppID = "io.github.mywhiteboard"

// App is the whiteboard window.
type App struct {
	app    fyne.App
	window fyne.Window
	board  *BoardWidget
	notes  *NotesPanel
	status *widget.Label
}

// New creates the whiteboard in a new fyne application.
func New(cfg config.Config) (*App, error) {
	return NewApp(app.NewWithID(AppID), cfg)
}

// NewApp creates the whiteboard window inside fa. cfg must be valid.
func NewApp(fa fyne.App, cfg config.Config) (*App, error) {
	bw, err := NewBoardWidget(cfg.Width, cfg.Height, cfg.BoardOptions()...)
	if err != nil {
		return nil, err
	}
	a := &App{
		app:    fa,
		window: fa.NewWindow("Whiteboard"),
		board:  bw,
		notes:  NewNotesPanel(),
		status: widget.NewLabel("Ready"),
	}

	notes := container.New(layout.NewGridWrapLayout(fyne.NewSize(240, 36)), a.notes.Controls())
	toolbar := NewToolbar(bw, Actions{
		Background: a.chooseBackground,
		PrintPNG:   a.printPNG(),
		PrintPDF:   a.printPDF(),
	}, widget.NewSeparator(), widget.NewLabel("Notes:"), notes)

	surface := container.NewStack(bw, a.notes.Layer())
	a.window.SetContent(container.NewBorder(toolbar, a.status, nil, nil, surface))
	a.window.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	a.addShortcuts()
	return a, nil
}

func (a *App) addShortcuts() {
	c := a.window.Canvas()
	for _, s := range historyShortcuts {
		c.AddShortcut(s, func(s fyne.Shortcut) {
			a.board.Shortcut(s)
		})
	}
}

// Board returns the board widget.
func (a *App) Board() *BoardWidget { return a.board }

// Notes returns the sticky note panel.
func (a *App) Notes() *NotesPanel { return a.notes }

// Window returns the main window.
func (a *App) Window() fyne.Window { return a.window }

// SetStatus shows text in the status bar. It may be called from any
// goroutine.
func (a *App) SetStatus(text string) {
	fyne.Do(func() {
		a.status.SetText(text)
	})
}

// ShowAndRun shows the window and blocks until it is closed.
func (a *App) ShowAndRun() {
	a.window.ShowAndRun()
}
