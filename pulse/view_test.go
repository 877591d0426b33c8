package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestChooseSurfaceFormat(t *testing.T) {
	t.Run("prefers rgba", func(t *testing.T) {
		formats := []wgpu.TextureFormat{
			wgpu.TextureFormatBGRA8UnormSrgb,
			wgpu.TextureFormatBGRA8Unorm,
			wgpu.TextureFormatRGBA8Unorm,
		}

		assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, chooseSurfaceFormat(formats))
	})

	t.Run("falls back to bgra", func(t *testing.T) {
		formats := []wgpu.TextureFormat{
			wgpu.TextureFormatBGRA8UnormSrgb,
			wgpu.TextureFormatBGRA8Unorm,
		}

		assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, chooseSurfaceFormat(formats))
	})

	t.Run("uses first format otherwise", func(t *testing.T) {
		formats := []wgpu.TextureFormat{
			wgpu.TextureFormatRGBA16Float,
			wgpu.TextureFormatBGRA8UnormSrgb,
		}

		assert.Equal(t, wgpu.TextureFormatRGBA16Float, chooseSurfaceFormat(formats))
	})
}

func TestChoosePresentMode(t *testing.T) {
	all := []wgpu.PresentMode{
		wgpu.PresentModeFifo,
		wgpu.PresentModeImmediate,
		wgpu.PresentModeMailbox,
	}

	assert.Equal(t, wgpu.PresentModeFifo, choosePresentMode(all, true))
	assert.Equal(t, wgpu.PresentModeMailbox, choosePresentMode(all, false))

	immediate := []wgpu.PresentMode{wgpu.PresentModeFifo, wgpu.PresentModeImmediate}
	assert.Equal(t, wgpu.PresentModeImmediate, choosePresentMode(immediate, false))

	fifoOnly := []wgpu.PresentMode{wgpu.PresentModeFifo}
	assert.Equal(t, wgpu.PresentModeFifo, choosePresentMode(fifoOnly, false))
	assert.Equal(t, wgpu.PresentModeFifo, choosePresentMode(nil, false))
}

func TestViewConfigureRejectsEmptySize(t *testing.T) {
	vs := &View{surfaceConfig: &wgpu.SurfaceConfiguration{}}

	assert.Error(t, vs.Configure(0, 720))
	assert.Error(t, vs.Configure(1280, 0))
	assert.False(t, vs.configured)
}

func TestViewAcquireFrameRequiresConfigure(t *testing.T) {
	vs := &View{surfaceConfig: &wgpu.SurfaceConfiguration{}}

	frame, err := vs.AcquireFrame()
	assert.Nil(t, frame)
	assert.Error(t, err)
}
