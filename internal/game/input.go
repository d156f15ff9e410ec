package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Input turns polled key and button levels into edges. Each query updates the
// remembered level for that key, so call each one once per frame.
type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

// edge records the new level and reports (pressed, released) transitions.
func edge(prev, down bool) (bool, bool) {
	return down && !prev, !down && prev
}

// Key returns press and release edges for key.
func (in *Input) Key(window *glfw.Window, key glfw.Key) (pressed, released bool) {
	down := window.GetKey(key) == glfw.Press
	pressed, released = edge(in.prevKeys[key], down)
	in.prevKeys[key] = down
	return pressed, released
}

// Button returns press and release edges for a mouse button.
func (in *Input) Button(window *glfw.Window, btn glfw.MouseButton) (pressed, released bool) {
	down := window.GetMouseButton(btn) == glfw.Press
	pressed, released = edge(in.prevMouse[btn], down)
	in.prevMouse[btn] = down
	return pressed, released
}

// Controls is one frame of player intent.
type Controls struct {
	ChargeDown bool // space or left button went down
	ChargeUp   bool // space or left button came up
	Start      bool // enter, or a click outside a round
	Quit       bool
}

// Poll reads every binding exactly once.
func (in *Input) Poll(window *glfw.Window) Controls {
	spaceDown, spaceUp := in.Key(window, glfw.KeySpace)
	mouseDown, mouseUp := in.Button(window, glfw.MouseButtonLeft)
	enter, _ := in.Key(window, glfw.KeyEnter)
	kpEnter, _ := in.Key(window, glfw.KeyKPEnter)
	return Controls{
		ChargeDown: spaceDown || mouseDown,
		ChargeUp:   spaceUp || mouseUp,
		Start:      enter || kpEnter,
		Quit:       window.GetKey(glfw.KeyEscape) == glfw.Press,
	}
}
