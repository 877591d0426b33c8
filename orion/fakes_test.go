package orion

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/roxy/glimpse"
	"github.com/oliverbestmann/roxy/pulse"
)

// events records calls across the fake window and renderer
type events []string

func (e *events) add(format string, args ...any) {
	*e = append(*e, fmt.Sprintf(format, args...))
}

type fakeWindow struct {
	events *events

	// input returned for each iteration of the loop
	frames []glimpse.InputState

	// sizes returned by GetSize, the last one is repeated
	sizes [][2]uint32

	closed     bool
	terminated int
	sizeCalls  int
}

func (w *fakeWindow) GetSize() (uint32, uint32) {
	idx := min(w.sizeCalls, len(w.sizes)-1)
	w.sizeCalls++
	return w.sizes[idx][0], w.sizes[idx][1]
}

func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{}
}

func (w *fakeWindow) Run(render func(input glimpse.UpdateInputState) error) error {
	for idx := 0; !w.closed; idx++ {
		if idx >= len(w.frames) {
			return errors.New("no more scripted input")
		}

		input := w.frames[idx]
		if err := render(func() glimpse.InputState { return input }); err != nil {
			return err
		}
	}

	return nil
}

func (w *fakeWindow) Close() {
	w.events.add("window.Close")
	w.closed = true
}

func (w *fakeWindow) Terminate() {
	w.events.add("window.Terminate")
	w.terminated++
}

type fakeRenderer struct {
	events *events

	renderErr error
	resizeErr error

	rendered []pulse.Color
	released int
}

func (r *fakeRenderer) Resize(width, height uint32) error {
	r.events.add("renderer.Resize %dx%d", width, height)
	return r.resizeErr
}

func (r *fakeRenderer) Render(color pulse.Color) error {
	r.events.add("renderer.Render")
	r.rendered = append(r.rendered, color)
	return r.renderErr
}

func (r *fakeRenderer) Release() {
	r.events.add("renderer.Release")
	r.released++
}

func idleInput() glimpse.InputState {
	return glimpse.InputState{}
}

func keyInput(key glimpse.Key) glimpse.InputState {
	return glimpse.InputState{
		Keys: glimpse.KeysState{
			Pressed:     map[glimpse.Key]bool{key: true},
			JustPressed: map[glimpse.Key]bool{key: true},
		},
	}
}

func closeInput() glimpse.InputState {
	return glimpse.InputState{CloseRequested: true}
}

// installFakes replaces the window and renderer constructors for
// the duration of the test.
func installFakes(t *testing.T, win *fakeWindow, renderer *fakeRenderer, rendererErr error) {
	t.Helper()

	prevWindow, prevRenderer := newWindow, newRenderer

	t.Cleanup(func() {
		newWindow = prevWindow
		newRenderer = prevRenderer
	})

	newWindow = func(width, height int, title string) (glimpse.Window, error) {
		win.events.add("window.New %dx%d %s", width, height, title)
		return win, nil
	}

	newRenderer = func(w glimpse.Window, conf Config) (Renderer, error) {
		win.events.add("renderer.New")

		if rendererErr != nil {
			return nil, rendererErr
		}

		return renderer, nil
	}
}
