package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Steerable is the part of the game driven by keyboard, mouse and focus.
type Steerable interface {
	KeyDown(key string)
	KeyUp(key string)
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
	PointerActive() bool
	PollPointer()
	FocusLost()
	SetRunning(running bool)
	Running() bool
}

// keyNames maps raylib keys to the names the game binds.
var keyNames = map[int32]string{
	rl.KeyLeft:  "ArrowLeft",
	rl.KeyRight: "ArrowRight",
	rl.KeyUp:    "ArrowUp",
	rl.KeyDown:  "ArrowDown",
	rl.KeyA:     "a",
	rl.KeyD:     "d",
	rl.KeyW:     "w",
	rl.KeyS:     "s",
}

// Input forwards raylib input to the game once per frame.
type Input struct {
	focused bool
}

// NewInput creates an input mapper for a focused window.
func NewInput() *Input {
	return &Input{focused: true}
}

// Poll reads this frame's input. Presses over the control panel are left to
// the panel.
func (in *Input) Poll(s Steerable, controls *Controls) {
	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		s.SetRunning(!s.Running())
	}

	for key, name := range keyNames {
		if rl.IsKeyPressed(key) {
			s.KeyDown(name)
		}
		if rl.IsKeyReleased(key) {
			s.KeyUp(name)
		}
	}

	focused := rl.IsWindowFocused()
	if in.focused && !focused {
		s.FocusLost()
		controls.StopAll()
	}
	in.focused = focused

	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		if !controls.Contains(mouse) {
			s.PointerDown(x, y)
		}
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		s.PointerUp()
	case s.PointerActive():
		s.PointerMove(x, y)
	}

	s.PollPointer()
}
