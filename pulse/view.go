package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

type ViewOptions struct {
	// Wait for the vertical blank before presenting a frame
	VSync bool
}

// View is the swap chain of the screen: the configured surface
// and the format of its back buffers.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
	configured    bool

	// the frame that was acquired but not yet presented
	frame *Frame
}

func NewView(dev *Context, opts ViewOptions) (*View, error) {
	caps := dev.Surface.GetCapabilities(dev.Adapter)

	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	if len(caps.Formats) == 0 {
		return nil, errors.New("surface is not compatible with the adapter")
	}

	alphaMode := wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alphaMode = caps.AlphaModes[0]
	}

	st := &View{Context: dev}

	st.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      chooseSurfaceFormat(caps.Formats),
		PresentMode: choosePresentMode(caps.PresentModes, opts.VSync),
		AlphaMode:   alphaMode,
	}

	slog.Info("Swap chain",
		slog.Any("format", st.surfaceConfig.Format),
		slog.Any("presentMode", st.surfaceConfig.PresentMode),
	)

	return st, nil
}

// chooseSurfaceFormat prefers a non srgb 8 bit format. Clear colors
// are then written to the back buffer exactly as given.
func chooseSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	preferred := []wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8Unorm,
		wgpu.TextureFormatBGRA8Unorm,
	}

	for _, format := range preferred {
		if slices.Contains(formats, format) {
			return format
		}
	}

	return formats[0]
}

// choosePresentMode returns fifo if vsync is requested. Fifo is
// the only mode every surface supports.
func choosePresentMode(modes []wgpu.PresentMode, vsync bool) wgpu.PresentMode {
	if vsync {
		return wgpu.PresentModeFifo
	}

	for _, mode := range []wgpu.PresentMode{wgpu.PresentModeMailbox, wgpu.PresentModeImmediate} {
		if slices.Contains(modes, mode) {
			return mode
		}
	}

	return wgpu.PresentModeFifo
}

// Configure (re)creates the back buffers of the swap chain
// with the given size.
func (vs *View) Configure(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("invalid surface size %dx%d", width, height)
	}

	// a frame of the old swap chain must not outlive it
	vs.releaseFrame()

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Adapter, vs.Device, vs.surfaceConfig)

	vs.configured = true

	return nil
}

// AcquireFrame returns the current back buffer together with a
// render target view into it.
func (vs *View) AcquireFrame() (*Frame, error) {
	if !vs.configured {
		return nil, errors.New("swap chain is not configured")
	}

	vs.releaseFrame()

	texture, err := vs.Surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("get current texture: %w", err)
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create render target view: %w", err)
	}

	frame := &Frame{
		surface: vs.Surface,
		texture: texture,
		view:    view,
		Target: RenderTarget{
			View:   view,
			Format: vs.surfaceConfig.Format,
			Width:  texture.GetWidth(),
			Height: texture.GetHeight(),
		},
	}

	vs.frame = frame

	return frame, nil
}

func (vs *View) releaseFrame() {
	if vs.frame != nil {
		vs.frame.Release()
		vs.frame = nil
	}
}

// Release releases a pending frame and marks the swap chain as
// unconfigured. The surface itself is owned by the Context.
func (vs *View) Release() {
	vs.releaseFrame()
	vs.configured = false
}
