//go:build js

package glimpse

import (
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
)

type jsWindow struct {
	canvas js.Value
	closed bool
	input  InputState
}

func NewWindow(width, height int, title string) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", title)

	canvas.Set("style", "width:100vw; height:100vh")

	win := &jsWindow{
		canvas: canvas,
	}

	return win, nil
}

func (g *jsWindow) GetSize() (uint32, uint32) {
	ratio := js.Global().Get("devicePixelRatio").Float()

	vv := js.Global().Get("visualViewport")
	width := vv.Get("width").Int()
	height := vv.Get("height").Int()
	return uint32(float64(width) * ratio), uint32(float64(height) * ratio)
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) Close() {
	g.closed = true
}

func (g *jsWindow) Terminate() {
	// do nothing
}

func (g *jsWindow) Run(render func(input UpdateInputState) error) error {
	helper := js.Global().Call("eval", `({
        async run(runOnce) {
            while (runOnce()) {
                await new Promise(resolve => requestAnimationFrame(resolve))
            }
        }
	})`)

	var updateInputState UpdateInputState = func() InputState {
		g.input.nextTick()
		return g.input.Snapshot()
	}

	done := make(chan error, 1)

	renderWrapper := func(this js.Value, args []js.Value) any {
		if g.closed {
			done <- nil
			return false
		}

		resizeCanvas(g.canvas)

		if err := render(updateInputState); err != nil {
			done <- err
			return false
		}

		return true
	}

	fn := js.FuncOf(renderWrapper)
	defer fn.Release()

	helper.Call("run", fn)

	return <-done
}

func resizeCanvas(canvas js.Value) {
	vv := js.Global().Get("visualViewport")
	viewWidth := vv.Get("width").Float()
	viewHeight := vv.Get("height").Float()

	ratio := js.Global().Get("devicePixelRatio").Float()

	canvas.Set("width", viewWidth*ratio)
	canvas.Set("height", viewHeight*ratio)
}
