package glimpse

import "fmt"

// Key identifies a key on the keyboard, independent of the
// window system in use.
type Key uint16

const (
	KeyUnknown Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace

	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown

	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyUnknown:      "Unknown",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeySpace:        "Space",
	KeyArrowLeft:    "ArrowLeft",
	KeyArrowRight:   "ArrowRight",
	KeyArrowUp:      "ArrowUp",
	KeyArrowDown:    "ArrowDown",
	KeyShiftLeft:    "ShiftLeft",
	KeyShiftRight:   "ShiftRight",
	KeyControlLeft:  "ControlLeft",
	KeyControlRight: "ControlRight",
	KeyAltLeft:      "AltLeft",
	KeyAltRight:     "AltRight",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return "Key" + string(rune('A'+(k-KeyA)))

	case k >= KeyDigit0 && k <= KeyDigit9:
		return "Digit" + string(rune('0'+(k-KeyDigit0)))

	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}

	if name, ok := keyNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Key(%d)", uint16(k))
}
