package orion

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/roxy/glimpse"
	"github.com/oliverbestmann/roxy/glm"
	"github.com/oliverbestmann/roxy/pulse"
)

// how long to wait before polling again while the window has no area
const idleDelay = 16 * time.Millisecond

type LoopState struct {
	Window     glimpse.Window
	Renderer   Renderer
	ClearColor pulse.Color

	// size the swap chain is currently configured for
	SurfaceSize glm.Vec2u

	Frames FrameTimes
}

func loopOnce(loopState *LoopState, inputState glimpse.UpdateInputState) error {
	input := inputState()

	if quitRequested(input) {
		slog.Info("Quit requested",
			slog.Bool("closeRequested", input.CloseRequested),
			slog.Uint64("frames", loopState.Frames.FrameCount),
		)

		loopState.Window.Close()
		return nil
	}

	// get surface size for next frame
	surfaceSize := glm.Vec2u{}
	surfaceSize[0], surfaceSize[1] = loopState.Window.GetSize()

	if surfaceSize.Area() == 0 {
		// minimized, nothing to present to
		time.Sleep(idleDelay)
		return nil
	}

	// reconfigure surface if needed
	if surfaceSize != loopState.SurfaceSize {
		slog.Debug("Resize surface",
			slog.Int("width", int(surfaceSize[0])),
			slog.Int("height", int(surfaceSize[1])),
		)

		if err := loopState.Renderer.Resize(surfaceSize.XY()); err != nil {
			return fmt.Errorf("resize surface: %w", err)
		}

		loopState.SurfaceSize = surfaceSize
	}

	if err := loopState.Renderer.Render(loopState.ClearColor); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	if loopState.Frames.Tick() {
		slog.Debug("Frame stats",
			slog.Float64("fps", loopState.Frames.FPS()),
			slog.Duration("max", loopState.Frames.MaxDuration),
		)
	}

	return nil
}
