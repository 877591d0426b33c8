package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/roxy/orion"
)

func main() {
	conf, err := orion.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %s\n", err)
		os.Exit(orion.ExitCode(err))
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: conf.LogLevel})
	slog.SetDefault(slog.New(handler))

	opts := orion.RunGameOptions{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "Roxy Engine - Portal Clone",
		Config:       &conf,
	}

	err = orion.RunGame(opts)
	if err != nil {
		slog.Error("Engine stopped with error", slog.String("error", err.Error()))
	}

	os.Exit(orion.ExitCode(err))
}
