package orion

import "github.com/oliverbestmann/roxy/glimpse"

type KeyCode = glimpse.Key

// QuitKey closes the window when pressed.
const QuitKey KeyCode = glimpse.KeyEscape

// quitKeyLabel is how QuitKey is named in the startup banner
const quitKeyLabel = "ESC"

func quitRequested(input glimpse.InputState) bool {
	return input.CloseRequested || input.Keys.JustPressed[QuitKey]
}
