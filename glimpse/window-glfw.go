//go:build !js

package glimpse

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw must only be called from the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win   *glfw.Window
	input InputState
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// the surface is created by webgpu, not by glfw
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	centerOnPrimaryMonitor(window, width, height)
	window.Show()

	w := &glfwWindow{win: window}

	configureInput(window, &w.input)

	slog.Info("Window created",
		slog.String("title", title),
		slog.Int("width", width),
		slog.Int("height", height),
	)

	return w, nil
}

func centerOnPrimaryMonitor(window *glfw.Window, width, height int) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}

	mode := monitor.GetVideoMode()
	if mode == nil {
		return
	}

	mx, my := monitor.GetPos()
	window.SetPos(mx+(mode.Width-width)/2, my+(mode.Height-height)/2)
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(max(width, 0)), uint32(max(height, 0))
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Close() {
	g.win.SetShouldClose(true)
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(render func(input UpdateInputState) error) error {
	var updateInputState UpdateInputState = func() InputState {
		g.input.nextTick()
		glfw.PollEvents()
		return g.input.Snapshot()
	}

	for !g.win.ShouldClose() {
		if err := render(updateInputState); err != nil {
			return err
		}
	}

	return nil
}

func configureInput(window *glfw.Window, input *InputState) {
	window.SetCloseCallback(func(_win *glfw.Window) {
		input.CloseRequested = true
	})

	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		handleKey(input, glfwKey, scancode, action)
	})

	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button := MouseButton(btn)

		switch action {
		case glfw.Press:
			input.Mouse.press(button)
		case glfw.Release:
			input.Mouse.release(button)
		}
	})

	window.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		input.Mouse.position(float32(xpos), float32(ypos))
	})
}

// handleKey records a key event. Repeats and keys without
// a mapping are dropped.
func handleKey(input *InputState, glfwKey glfw.Key, scancode int, action glfw.Action) {
	if action == glfw.Repeat {
		return
	}

	key, ok := keyOf(glfwKey, scancode)
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		input.Keys.press(key)

	case glfw.Release:
		input.Keys.release(key)
	}
}

func keyOf(glfwKey glfw.Key, scancode int) (key Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		// key names are only available after glfw.Init
		slog.Warn(
			"Unknown key code",
			slog.Int("key", int(glfwKey)),
			slog.Int("scancode", scancode),
		)
	}

	return
}
