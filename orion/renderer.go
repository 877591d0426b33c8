package orion

import (
	"fmt"

	"github.com/oliverbestmann/roxy/glimpse"
	"github.com/oliverbestmann/roxy/pulse"
)

// Renderer owns the graphics device and the swap chain of a window.
type Renderer interface {
	// Resize reconfigures the swap chain for a new surface size
	Resize(width, height uint32) error

	// Render clears the back buffer to the given color and presents it
	Render(color pulse.Color) error

	// Release frees all device resources in reverse order of creation
	Release()
}

// replaced in tests
var newWindow = glimpse.NewWindow
var newRenderer = newDeviceRenderer

type deviceRenderer struct {
	view  *pulse.View
	clear *pulse.ClearCommand

	resources pulse.ReleaseStack
}

func newDeviceRenderer(win glimpse.Window, conf Config) (_ Renderer, err error) {
	r := &deviceRenderer{}

	defer func() {
		if err != nil {
			r.Release()
		}
	}()

	ctx, err := pulse.New(win.SurfaceDescriptor(), pulse.Options{
		ForceFallbackAdapter: conf.ForceFallbackAdapter,
	})

	if err != nil {
		return nil, fmt.Errorf("create device: %w", err)
	}

	r.resources.Push("Context", ctx)

	r.view, err = pulse.NewView(ctx, pulse.ViewOptions{VSync: conf.VSync})
	if err != nil {
		return nil, fmt.Errorf("create swap chain: %w", err)
	}

	r.resources.Push("SwapChain", r.view)

	r.clear = pulse.NewClear(ctx)

	return r, nil
}

func (r *deviceRenderer) Resize(width, height uint32) error {
	return r.view.Configure(width, height)
}

func (r *deviceRenderer) Render(color pulse.Color) error {
	frame, err := r.view.AcquireFrame()
	if err != nil {
		return err
	}

	defer frame.Release()

	if err := r.clear.Clear(&frame.Target, color); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	frame.Present()

	return nil
}

func (r *deviceRenderer) Release() {
	r.resources.Release()
}
