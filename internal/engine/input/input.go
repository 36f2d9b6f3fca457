// Package input handles SDL2 input events.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for viewer use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int32
	MouseY int32
}

// Input handles all input processing.
type Input struct {
	events  []Event
	pressed map[sdl.Scancode]struct{}
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		pressed: make(map[sdl.Scancode]struct{}),
	}
}

// Update polls SDL events without blocking and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.Handle(Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				i.Handle(Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: e.X,
				MouseY: e.Y,
			})
		}
	}

	return quit
}

// Handle records a key event in the pressed set and the event list.
func (i *Input) Handle(e Event) {
	switch e.Type {
	case EventKeyDown:
		i.pressed[e.Key] = struct{}{}
	case EventKeyUp:
		delete(i.pressed, e.Key)
	}
	i.events = append(i.events, e)
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyDown reports whether scancode is currently held.
func (i *Input) IsKeyDown(scancode sdl.Scancode) bool {
	_, ok := i.pressed[scancode]
	return ok
}

// Pressed returns the set of held keys.
func (i *Input) Pressed() map[sdl.Scancode]struct{} {
	return i.pressed
}

// Movement returns the camera-space movement vector for the held keys:
// X is right, Y is up, Z is forward.
func Movement(pressed map[sdl.Scancode]struct{}) mgl32.Vec3 {
	var m mgl32.Vec3
	for key := range pressed {
		switch key {
		case sdl.SCANCODE_W:
			m[2] += 1
		case sdl.SCANCODE_S:
			m[2] -= 1
		case sdl.SCANCODE_D:
			m[0] += 1
		case sdl.SCANCODE_A:
			m[0] -= 1
		case sdl.SCANCODE_SPACE:
			m[1] += 1
		case sdl.SCANCODE_LSHIFT:
			m[1] -= 1
		}
	}
	return m
}
