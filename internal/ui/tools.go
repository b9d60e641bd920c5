package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MyWhiteboard/internal/board"
)

var palette = []color.NRGBA{
	{A: 0xff},                            // black
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // white
	{R: 0xff, A: 0xff},                   // red
	{G: 0xaa, A: 0xff},                   // green
	{B: 0xff, A: 0xff},                   // blue
	{R: 0xff, G: 0xd7, A: 0xff},          // yellow
}

var toolOrder = []board.Tool{
	board.ToolSelect,
	board.ToolLine,
	board.ToolRectangle,
	board.ToolFreehand,
	board.ToolText,
	board.ToolSticky,
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func swatches(tapped func(color.NRGBA)) *fyne.Container {
	box := container.NewHBox()
	for _, c := range palette {
		box.Add(newColorSwatch(c, tapped))
	}
	return box
}

// Actions are the toolbar buttons that need a window.
type Actions struct {
	Background func()
	PrintPNG   func()
	PrintPDF   func()
}

// NewToolbar builds the tool picker, pens, history buttons and the given
// actions for bw.
func NewToolbar(bw *BoardWidget, actions Actions, extra ...fyne.CanvasObject) fyne.CanvasObject {
	b := bw.Board()

	names := make([]string, len(toolOrder))
	for i, t := range toolOrder {
		names[i] = t.String()
	}
	tools := widget.NewRadioGroup(names, func(name string) {
		t, err := board.ParseTool(name)
		if err != nil || t == b.Tool() {
			return
		}
		bw.SetTool(t)
	})
	tools.Horizontal = true
	tools.Required = true
	tools.SetSelected(b.Tool().String())
	b.OnChange(func() {
		if tools.Selected != b.Tool().String() {
			tools.SetSelected(b.Tool().String())
		}
	})

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), b.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), b.Redo),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FileImageIcon(), actions.Background),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), actions.PrintPNG),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), actions.PrintPDF),
	)

	widthSlider := widget.NewSlider(1, 50)
	widthSlider.SetValue(b.Style().Width)
	widthSlider.OnChanged = b.SetLineWidth
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), widthSlider)

	row1 := container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		tb,
		layout.NewSpacer(),
	)
	row2 := container.NewHBox(
		widget.NewLabel("Line:"),
		swatches(b.SetLineColor),
		widget.NewSeparator(),
		widget.NewLabel("Fill:"),
		swatches(b.SetFillColor),
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		sliderContainer,
	)
	row2.Objects = append(row2.Objects, extra...)
	return container.NewVBox(row1, row2)
}
