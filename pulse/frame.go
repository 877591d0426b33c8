package pulse

import "github.com/cogentcore/webgpu/wgpu"

// Frame is a single back buffer of the swap chain.
type Frame struct {
	surface *wgpu.Surface
	texture *wgpu.Texture
	view    *wgpu.TextureView

	// Target renders into the back buffer
	Target RenderTarget

	presented bool
}

// Present shows the back buffer on screen. With fifo presentation
// this blocks until the next vertical blank.
func (f *Frame) Present() {
	if f.presented {
		return
	}

	f.presented = true

	f.surface.Present()

	// the texture belongs to the surface once presented
	f.texture = nil

	f.releaseView()
}

// Release frees the render target view and, if the frame was never
// presented, the back buffer texture too. Release is idempotent.
func (f *Frame) Release() {
	f.releaseView()

	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

func (f *Frame) releaseView() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
		f.Target.View = nil
	}
}
