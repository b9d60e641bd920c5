package board

import (
	"strings"

	"seehuhn.de/go/geom/vec"
)

// EventType is the kind of a normalized input event.
type EventType int

const (
	PointerDown EventType = iota
	PointerMove
	PointerUp
	Blur
	Key
)

func (t EventType) String() string {
	switch t {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case Blur:
		return "blur"
	case Key:
		return "key"
	}
	return "unknown"
}

// Source records where an event came from. The state machine treats all
// sources alike.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
	SourceRemote
)

// Chord is a key press with its modifiers.
type Chord struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool
}

// Event is the single input type every pointer, touch, keyboard and focus
// handler is reduced to before it reaches the Board. X and Y are surface
// coordinates.
type Event struct {
	Type   EventType
	Source Source
	X, Y   float64
	// Positionless marks a pointer-up that carries no coordinates (a lifted
	// touch); the Board uses the last known pointer position.
	Positionless bool
	// Text is the edited text of a Blur event.
	Text string
	// Chord is the key of a Key event.
	Chord Chord
}

// TouchPhase is the stage of a touch gesture.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
)

// FromTouch maps a touch at client coordinates onto the equivalent pointer
// event, translated by the surface origin. A lifted touch has no contact
// point, so TouchEnd yields a positionless pointer-up.
func FromTouch(phase TouchPhase, clientX, clientY float64, origin vec.Vec2) Event {
	ev := Event{Source: SourceTouch, X: clientX - origin.X, Y: clientY - origin.Y}
	switch phase {
	case TouchStart:
		ev.Type = PointerDown
	case TouchMove:
		ev.Type = PointerMove
	case TouchEnd:
		ev = Event{Type: PointerUp, Source: SourceTouch, Positionless: true}
	}
	return ev
}

// ShortcutAction is what a key chord asks the board to do.
type ShortcutAction int

const (
	NoShortcut ShortcutAction = iota
	UndoShortcut
	RedoShortcut
)

// ShortcutFor maps Ctrl/Cmd+Z to undo and Ctrl/Cmd+Shift+Z or Ctrl/Cmd+Y to
// redo.
func ShortcutFor(c Chord) ShortcutAction {
	if !c.Ctrl && !c.Meta {
		return NoShortcut
	}
	switch strings.ToLower(c.Key) {
	case "z":
		if c.Shift {
			return RedoShortcut
		}
		return UndoShortcut
	case "y":
		return RedoShortcut
	}
	return NoShortcut
}
