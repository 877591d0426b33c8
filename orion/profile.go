package orion

import (
	"log/slog"

	"github.com/pkg/profile"
)

var profileModes = []string{"cpu", "mem", "block", "mutex", "trace"}

type profiler interface{ Stop() }

type noopProfiler struct{}

func (noopProfiler) Stop() {}

// startProfiling starts recording the given profile into the
// working directory. Stop must be called to write the profile.
func startProfiling(mode string) profiler {
	var option func(*profile.Profile)

	switch mode {
	case "cpu":
		option = profile.CPUProfile
	case "mem":
		option = profile.MemProfile
	case "block":
		option = profile.BlockProfile
	case "mutex":
		option = profile.MutexProfile
	case "trace":
		option = profile.TraceProfile
	default:
		return noopProfiler{}
	}

	slog.Info("Start profiling", slog.String("mode", mode))

	return profile.Start(option, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
}
