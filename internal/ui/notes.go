package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MyWhiteboard/internal/state"
)

var (
	noteColor  = color.NRGBA{R: 0xff, G: 0xf1, B: 0x76, A: 0xff}
	noteSize   = fyne.NewSize(160, 110)
	dropOffset = fyne.NewPos(50, 50)
)

// NotesPanel shows sticky notes as cards floating over the board and owns
// the controls that add them.
type NotesPanel struct {
	store *state.NoteStore
	input *widget.Entry
	layer *fyne.Container
	cards map[string]*noteCard
}

// NewNotesPanel returns an empty panel.
func NewNotesPanel() *NotesPanel {
	p := &NotesPanel{
		store: &state.NoteStore{},
		input: widget.NewEntry(),
		layer: container.NewWithoutLayout(),
		cards: make(map[string]*noteCard),
	}
	p.input.SetPlaceHolder("New note")
	p.input.OnSubmitted = func(string) { p.Add() }
	p.store.OnChange = p.sync
	return p
}

// Layer is the free-layout container the cards live in. Stack it above the
// board.
func (p *NotesPanel) Layer() fyne.CanvasObject { return p.layer }

// Controls returns the note entry and its add button.
func (p *NotesPanel) Controls() fyne.CanvasObject {
	add := widget.NewButtonWithIcon("", theme.ContentAddIcon(), p.Add)
	return container.NewBorder(nil, nil, nil, add, p.input)
}

// Notes returns the notes on the board.
func (p *NotesPanel) Notes() []state.Note { return p.store.State().Notes }

// Add turns the entry text into a note. Blank text is ignored.
func (p *NotesPanel) Add() {
	text := strings.TrimSpace(p.input.Text)
	if text == "" {
		return
	}
	if err := p.store.Dispatch(state.NoteAction{Type: state.AddNote, Note: state.NewNote(text)}); err != nil {
		log.Errorf("add note: %v", err)
		return
	}
	p.input.SetText("")
}

// Delete removes a note.
func (p *NotesPanel) Delete(n state.Note) {
	if err := p.store.Dispatch(state.NoteAction{Type: state.DeleteNote, Note: n}); err != nil {
		log.Errorf("delete note: %v", err)
	}
}

// sync makes the cards match the note collection.
func (p *NotesPanel) sync(s state.NotesState) {
	keep := make(map[string]bool, len(s.Notes))
	for _, n := range s.Notes {
		keep[n.ID] = true
		if _, ok := p.cards[n.ID]; ok {
			continue
		}
		c := newNoteCard(n, p.Delete)
		c.Resize(noteSize)
		offset := float32(20 + 30*(len(p.cards)%10))
		c.Move(fyne.NewPos(offset, offset))
		p.cards[n.ID] = c
		p.layer.Add(c)
	}
	for id, c := range p.cards {
		if !keep[id] {
			p.layer.Remove(c)
			delete(p.cards, id)
		}
	}
	p.layer.Refresh()
}

// noteCard is a draggable sticky note.
type noteCard struct {
	widget.BaseWidget
	note     state.Note
	onDelete func(state.Note)
	pointer  fyne.Position
}

func newNoteCard(n state.Note, onDelete func(state.Note)) *noteCard {
	c := &noteCard{note: n, onDelete: onDelete}
	c.ExtendBaseWidget(c)
	return c
}

func (c *noteCard) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(noteColor)
	bg.CornerRadius = 4
	text := widget.NewLabel(c.note.Text)
	text.Wrapping = fyne.TextWrapWord
	del := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() { c.onDelete(c.note) })
	del.Importance = widget.LowImportance
	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewBorder(nil, container.NewHBox(del), nil, nil, text)))
}

func (c *noteCard) Dragged(e *fyne.DragEvent) {
	c.pointer = c.Position().Add(e.Position)
	c.Move(c.Position().Add(e.Dragged))
}

// DragEnd drops the card with its corner 50,50 above and left of the
// pointer.
func (c *noteCard) DragEnd() {
	c.Move(c.pointer.Subtract(dropOffset))
}
