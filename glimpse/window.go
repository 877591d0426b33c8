package glimpse

import "github.com/cogentcore/webgpu/wgpu"

type Window interface {
	// GetSize returns the size of the framebuffer in pixels
	GetSize() (uint32, uint32)

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run calls render until the window is closed. The loop stops
	// at the first error returned by render.
	Run(render func(input UpdateInputState) error) error

	// Close asks the window to leave the Run loop after the
	// current iteration.
	Close()

	Terminate()
}
