package orion

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/oliverbestmann/roxy/glimpse"
	"github.com/oliverbestmann/roxy/pulse"
)

type RunGameOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Color the screen is cleared to every frame. Defaults
	// to the ClearColor of the Config.
	ClearColor *pulse.Color

	// Defaults to DefaultConfig()
	Config *Config
}

func (opts RunGameOptions) withDefaults() RunGameOptions {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1280
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 720
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Roxy Engine - Portal Clone"
	}

	if opts.Config == nil {
		conf := DefaultConfig()
		opts.Config = &conf
	}

	if opts.ClearColor == nil {
		color := opts.Config.ClearColor
		opts.ClearColor = &color
	}

	return opts
}

// RunGame opens the window, initializes the graphics device and
// clears the screen every frame until the window is closed or the
// QuitKey is pressed. Resources are released before RunGame returns.
func RunGame(opts RunGameOptions) error {
	opts = opts.withDefaults()
	conf := *opts.Config

	pulse.SetLogLevel(conf.WGPULogLevel)

	prof := startProfiling(conf.Profile)
	defer prof.Stop()

	// create a new window (or canvas)
	win, err := newWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindow, err)
	}

	defer win.Terminate()

	// initialize the webgpu device and swap chain
	renderer, err := newRenderer(win, conf)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDevice, err)
	}

	defer renderer.Release()

	logBanner(opts.WindowTitle)

	loopState := &LoopState{
		Window:     win,
		Renderer:   renderer,
		ClearColor: *opts.ClearColor,
	}

	return win.Run(func(inputState glimpse.UpdateInputState) error {
		// do the actual rendering here
		return loopOnce(loopState, inputState)
	})
}

func logBanner(title string) {
	line := strings.Repeat("=", len(title)+8)

	slog.Info(line)
	slog.Info("    " + title)
	slog.Info(line)
	slog.Info("Renderer initialized")
	slog.Info("Press " + quitKeyLabel + " to exit")
}
