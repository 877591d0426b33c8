//go:build !js

package glimpse

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "KeyA", KeyA.String())
	assert.Equal(t, "KeyZ", KeyZ.String())
	assert.Equal(t, "Digit0", KeyDigit0.String())
	assert.Equal(t, "Digit9", KeyDigit9.String())
	assert.Equal(t, "F1", KeyF1.String())
	assert.Equal(t, "F12", KeyF12.String())
	assert.Equal(t, "Key(999)", Key(999).String())
}

func TestGlfwKeyMapping(t *testing.T) {
	assert.Equal(t, KeyEscape, glfwToKey[glfw.KeyEscape])
	assert.Equal(t, KeyEnter, glfwToKey[glfw.KeyKPEnter])
	assert.Equal(t, KeyW, glfwToKey[glfw.KeyW])
	assert.Equal(t, KeyDigit5, glfwToKey[glfw.Key5])
	assert.Equal(t, KeyF11, glfwToKey[glfw.KeyF11])

	_, ok := glfwToKey[glfw.KeyPrintScreen]
	assert.False(t, ok)
}
