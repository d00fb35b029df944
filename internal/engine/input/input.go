// Package input turns SDL2 events into viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Input tracks which keys are held and which were pressed this frame.
type Input struct {
	pressed map[sdl.Scancode]bool
	held    map[sdl.Scancode]bool

	// Resized holds the new window size when a resize happened this frame.
	Resized       bool
	Width, Height int

	// Mouse drag delta while the left button is down, and wheel delta.
	DragX, DragY float32
	Wheel        float32

	dragging bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		pressed: make(map[sdl.Scancode]bool),
		held:    make(map[sdl.Scancode]bool),
	}
}

// Update polls pending SDL events. It returns true when the viewer
// should quit.
func (i *Input) Update() bool {
	clear(i.pressed)
	i.Resized = false
	i.DragX, i.DragY, i.Wheel = 0, 0, 0

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.Resized = true
				i.Width = int(e.Data1)
				i.Height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			code := e.Keysym.Scancode
			switch e.Type {
			case sdl.KEYDOWN:
				if e.Repeat == 0 {
					i.pressed[code] = true
				}
				i.held[code] = true
			case sdl.KEYUP:
				delete(i.held, code)
			}

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_LEFT {
				i.dragging = e.Type == sdl.MOUSEBUTTONDOWN
			}

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.DragX += float32(e.XRel)
				i.DragY += float32(e.YRel)
			}

		case *sdl.MouseWheelEvent:
			i.Wheel += float32(e.Y)
		}
	}

	return i.pressed[sdl.SCANCODE_ESCAPE]
}

// Pressed reports whether the key went down this frame.
func (i *Input) Pressed(code sdl.Scancode) bool {
	return i.pressed[code]
}

// Held reports whether the key is currently down.
func (i *Input) Held(code sdl.Scancode) bool {
	return i.held[code]
}

// Axis returns +1, -1 or 0 from a pair of held keys.
func (i *Input) Axis(positive, negative sdl.Scancode) float32 {
	var v float32
	if i.held[positive] {
		v++
	}
	if i.held[negative] {
		v--
	}
	return v
}
