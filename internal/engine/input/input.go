// Package input handles SDL2 input events and maps them to viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a polled event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX int
	DeltaY int
	Wheel  int
	Button uint8
}

// Action is what the viewer should do in response to an event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNext
	ActionPrevious
	ActionFirst
	ActionCycleSelection
	ActionOrbit
	ActionZoom
	ActionPick
	ActionSave
	ActionResize
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionFirst:
		return "first"
	case ActionCycleSelection:
		return "cycle"
	case ActionOrbit:
		return "orbit"
	case ActionZoom:
		return "zoom"
	case ActionPick:
		return "pick"
	case ActionSave:
		return "save"
	case ActionResize:
		return "resize"
	default:
		return "none"
	}
}

var keyActions = map[sdl.Scancode]Action{
	sdl.SCANCODE_RIGHT:  ActionNext,
	sdl.SCANCODE_N:      ActionNext,
	sdl.SCANCODE_LEFT:   ActionPrevious,
	sdl.SCANCODE_P:      ActionPrevious,
	sdl.SCANCODE_HOME:   ActionFirst,
	sdl.SCANCODE_TAB:    ActionCycleSelection,
	sdl.SCANCODE_S:      ActionSave,
	sdl.SCANCODE_ESCAPE: ActionQuit,
	sdl.SCANCODE_Q:      ActionQuit,
}

// Input handles all input processing.
type Input struct {
	events   []Event
	dragging bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events. Returns true if the window should close.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if ev, ok := convert(event); ok {
			i.events = append(i.events, ev)
			if ev.Type == EventQuit {
				return true
			}
		}
	}

	return false
}

func convert(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			DeltaX: int(e.XRel),
			DeltaY: int(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventMouseDown
		}
		return Event{Type: t, MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}, true

	case *sdl.MouseWheelEvent:
		return Event{Type: EventMouseWheel, Wheel: int(e.Y)}, true
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Map translates ev into an action, tracking left-button drags for orbiting.
// A right click picks the face under the cursor.
func (i *Input) Map(ev Event) Action {
	switch ev.Type {
	case EventQuit:
		return ActionQuit
	case EventWindowResize:
		return ActionResize
	case EventKeyDown:
		return keyActions[ev.Key]
	case EventMouseDown:
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			i.dragging = true
		case sdl.BUTTON_RIGHT:
			return ActionPick
		}
	case EventMouseUp:
		if ev.Button == sdl.BUTTON_LEFT {
			i.dragging = false
		}
	case EventMouseMove:
		if i.dragging && (ev.DeltaX != 0 || ev.DeltaY != 0) {
			return ActionOrbit
		}
	case EventMouseWheel:
		if ev.Wheel != 0 {
			return ActionZoom
		}
	}
	return ActionNone
}
