package orion

import "errors"

var (
	// ErrWindow marks a failure of the windowing system
	ErrWindow = errors.New("windowing system")

	// ErrDevice marks a failure to create the graphics device or swap chain
	ErrDevice = errors.New("graphics device")
)

// ExitCode returns the process exit code for the result of RunGame.
func ExitCode(err error) int {
	if err != nil {
		return -1
	}

	return 0
}
