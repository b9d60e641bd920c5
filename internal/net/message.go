package net

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"MyWhiteboard/internal/board"
	"MyWhiteboard/internal/state"
)

// Message is one JSON frame sent by a remote input device.
type Message struct {
	Type  string  `json:"type"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Text  string  `json:"text,omitempty"`
	Key   string  `json:"key,omitempty"`
	Ctrl  bool    `json:"ctrl,omitempty"`
	Meta  bool    `json:"meta,omitempty"`
	Shift bool    `json:"shift,omitempty"`
	Tool  string  `json:"tool,omitempty"`
}

// Reply is sent back to the device when a frame is rejected.
type Reply struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Input is a decoded message: a board event, or a tool switch when IsTool
// is set.
type Input struct {
	Event  board.Event
	Tool   board.Tool
	IsTool bool
}

// Decode turns a device message into board input. Touch coordinates are
// taken as surface coordinates.
func Decode(m Message) (Input, error) {
	ev := board.Event{Source: board.SourceRemote, X: m.X, Y: m.Y}
	switch m.Type {
	case "pointerdown":
		ev.Type = board.PointerDown
	case "pointermove":
		ev.Type = board.PointerMove
	case "pointerup":
		ev.Type = board.PointerUp
	case "touchstart", "touchmove", "touchend":
		phase := map[string]board.TouchPhase{
			"touchstart": board.TouchStart,
			"touchmove":  board.TouchMove,
			"touchend":   board.TouchEnd,
		}[m.Type]
		ev = board.FromTouch(phase, m.X, m.Y, vec.Vec2{})
		ev.Source = board.SourceRemote
	case "blur":
		ev = board.Event{Type: board.Blur, Source: board.SourceRemote, Text: m.Text}
	case "key":
		if m.Key == "" {
			return Input{}, fmt.Errorf("key message without a key")
		}
		ev = board.Event{Type: board.Key, Source: board.SourceRemote, Chord: board.Chord{
			Key: m.Key, Ctrl: m.Ctrl, Meta: m.Meta, Shift: m.Shift,
		}}
	case "undo":
		ev = board.Event{Type: board.Key, Source: board.SourceRemote, Chord: board.Chord{Key: "z", Ctrl: true}}
	case "redo":
		ev = board.Event{Type: board.Key, Source: board.SourceRemote, Chord: board.Chord{Key: "y", Ctrl: true}}
	case "tool":
		t, err := board.ParseTool(m.Tool)
		if err != nil {
			return Input{}, err
		}
		return Input{Tool: t, IsTool: true}, nil
	default:
		return Input{}, state.Unrecognized("decode message", m.Type)
	}
	return Input{Event: ev}, nil
}
