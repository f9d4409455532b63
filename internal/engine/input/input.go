// Package input turns SDL2 events into the few events the demos react to.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType is the kind of an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Event is a processed input event.
type Event struct {
	Type EventType

	// Key is the SDL scancode name, such as "W", "1", "F1" or "PageUp".
	Key    string
	Repeat bool

	Width  int
	Height int
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains the SDL queue. It returns true once a quit was requested.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			i.events = append(i.events, Event{
				Type:   EventKeyDown,
				Key:    sdl.GetScancodeName(e.Keysym.Scancode),
				Repeat: e.Repeat != 0,
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
