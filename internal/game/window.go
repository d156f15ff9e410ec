package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Smallest window that still fits the HUD panels.
const minWindowW, minWindowH = 480, 360

// initWindow opens a GL 4.1 core window with vsync. The caller owns
// glfw.Terminate.
func initWindow(width, height int, title string) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	hints := []struct {
		hint  glfw.Hint
		value int
	}{
		{glfw.ContextVersionMajor, 4},
		{glfw.ContextVersionMinor, 1},
		{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
		{glfw.OpenGLForwardCompatible, glfw.True},
		{glfw.Resizable, glfw.True},
		{glfw.Samples, 4},
	}
	for _, h := range hints {
		glfw.WindowHint(h.hint, h.value)
	}

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.SetSizeLimits(minWindowW, minWindowH, glfw.DontCare, glfw.DontCare)
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}
