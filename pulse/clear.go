package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

type ClearCommand struct {
	device *wgpu.Device
	queue  *wgpu.Queue
}

func NewClear(ctx *Context) *ClearCommand {
	return &ClearCommand{device: ctx.Device, queue: ctx.Queue}
}

// Clear fills the full target with the given color and submits
// the work to the queue.
func (c *ClearCommand) Clear(target *RenderTarget, color Color) error {
	enc, err := c.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "ClearTexture",
	})

	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	carr := color.ToWGPU()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearTexture",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    target.View,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: carr[0],
					G: carr[1],
					B: carr[2],
					A: carr[3],
				},
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	width, height := target.Size().XY()
	pass.SetViewport(0, 0, float32(width), float32(height), 0, 1)

	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	passGuard.Release()

	// encode into a command buffer
	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearTexture"})
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}

	defer buf.Release()

	c.queue.Submit(buf)

	return nil
}
