//go:build !js

package glimpse

import "github.com/go-gl/glfw/v3.3/glfw"

var glfwToKey = buildGlfwKeyMap()

func buildGlfwKeyMap() map[glfw.Key]Key {
	keys := map[glfw.Key]Key{
		glfw.KeyEscape:       KeyEscape,
		glfw.KeyEnter:        KeyEnter,
		glfw.KeyKPEnter:      KeyEnter,
		glfw.KeyTab:          KeyTab,
		glfw.KeyBackspace:    KeyBackspace,
		glfw.KeySpace:        KeySpace,
		glfw.KeyLeft:         KeyArrowLeft,
		glfw.KeyRight:        KeyArrowRight,
		glfw.KeyUp:           KeyArrowUp,
		glfw.KeyDown:         KeyArrowDown,
		glfw.KeyLeftShift:    KeyShiftLeft,
		glfw.KeyRightShift:   KeyShiftRight,
		glfw.KeyLeftControl:  KeyControlLeft,
		glfw.KeyRightControl: KeyControlRight,
		glfw.KeyLeftAlt:      KeyAltLeft,
		glfw.KeyRightAlt:     KeyAltRight,
	}

	// glfw numbers letters, digits and function keys consecutively
	for idx := range Key(26) {
		keys[glfw.KeyA+glfw.Key(idx)] = KeyA + idx
	}

	for idx := range Key(10) {
		keys[glfw.Key0+glfw.Key(idx)] = KeyDigit0 + idx
	}

	for idx := range Key(12) {
		keys[glfw.KeyF1+glfw.Key(idx)] = KeyF1 + idx
	}

	return keys
}
