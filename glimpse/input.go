package glimpse

import (
	"log/slog"
	"maps"
)

type UpdateInputState func() InputState

type MouseButton uint32

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[Key]bool

	// keys that where just pressed after the last call to nextTick()
	JustPressed map[Key]bool

	// keys that were just released after the last call to nextTick()
	JustReleased map[Key]bool
}

func (k *KeysState) press(key Key) {
	slog.Debug("Key just pressed", slog.String("key", key.String()))

	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) release(key Key) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

type MouseState struct {
	CursorX, CursorY float32

	// recorded movement since last tick
	DeltaX, DeltaY float32

	Pressed map[MouseButton]bool

	// mouse buttons that were just clicked after the last call to nextTick()
	JustPressed map[MouseButton]bool

	// mouse buttons that were just released after the last call to nextTick()
	JustReleased map[MouseButton]bool

	hasPosition bool
}

func (m *MouseState) press(button MouseButton) {
	setTrue(&m.Pressed, button)
	setTrue(&m.JustPressed, button)
}

func (m *MouseState) release(button MouseButton) {
	setFalse(&m.Pressed, button)
	setTrue(&m.JustReleased, button)
}

func (m *MouseState) position(x, y float32) {
	if m.hasPosition {
		m.DeltaX += x - m.CursorX
		m.DeltaY += y - m.CursorY
	}

	m.CursorX = x
	m.CursorY = y
	m.hasPosition = true
}

func (m *MouseState) nextTick() {
	clear(m.JustPressed)
	clear(m.JustReleased)

	m.DeltaX = 0
	m.DeltaY = 0
}

type InputState struct {
	Keys  KeysState
	Mouse MouseState

	// true once the user asked to close the window,
	// e.g. by clicking the close button
	CloseRequested bool
}

func (s *InputState) nextTick() {
	s.Keys.nextTick()
	s.Mouse.nextTick()
}

// Snapshot returns a deep copy of the input state. The copy does not
// change when further events are processed.
func (s *InputState) Snapshot() InputState {
	return InputState{
		Keys: KeysState{
			Pressed:      maps.Clone(s.Keys.Pressed),
			JustPressed:  maps.Clone(s.Keys.JustPressed),
			JustReleased: maps.Clone(s.Keys.JustReleased),
		},
		Mouse: MouseState{
			CursorX:      s.Mouse.CursorX,
			CursorY:      s.Mouse.CursorY,
			DeltaX:       s.Mouse.DeltaX,
			DeltaY:       s.Mouse.DeltaY,
			Pressed:      maps.Clone(s.Mouse.Pressed),
			JustPressed:  maps.Clone(s.Mouse.JustPressed),
			JustReleased: maps.Clone(s.Mouse.JustReleased),
			hasPosition:  s.Mouse.hasPosition,
		},
		CloseRequested: s.CloseRequested,
	}
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
