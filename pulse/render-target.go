package pulse

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/roxy/glm"
)

// RenderTarget holds all the information of something that can be rendered to.
// For now this is always the back buffer of the screen.
type RenderTarget struct {
	View *wgpu.TextureView

	// Texture format of View
	Format wgpu.TextureFormat

	// Size of the target to render to
	Width  uint32
	Height uint32
}

func (t *RenderTarget) Size() glm.Vec2u {
	return glm.Vec2u{t.Width, t.Height}
}
