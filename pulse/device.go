package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// SetLogLevel configures the log level of the native webgpu library.
// Unknown level names leave the current level untouched.
func SetLogLevel(level string) {
	if wgpuLevel, ok := parseLogLevel(level); ok {
		wgpu.SetLogLevel(wgpuLevel)
	}
}

func parseLogLevel(level string) (wgpu.LogLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "OFF":
		return wgpu.LogLevelOff, true
	case "ERROR":
		return wgpu.LogLevelError, true
	case "WARN":
		return wgpu.LogLevelWarn, true
	case "INFO":
		return wgpu.LogLevelInfo, true
	case "DEBUG":
		return wgpu.LogLevelDebug, true
	case "TRACE":
		return wgpu.LogLevelTrace, true
	}

	return 0, false
}

type Options struct {
	// Use the software adapter instead of real hardware
	ForceFallbackAdapter bool
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, its Queue, the Surface and active Adapter.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter

	resources ReleaseStack
}

func New(sd *wgpu.SurfaceDescriptor, opts Options) (st *Context, err error) {
	if sd == nil {
		return nil, errors.New("surface descriptor must not be nil")
	}

	st = &Context{}

	defer func() {
		if err != nil {
			st.Release()
			st = nil
		}
	}()

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// create a Surface based on the window
	st.Surface = instance.CreateSurface(sd)
	if st.Surface == nil {
		return st, errors.New("create surface")
	}

	st.resources.Push("Surface", st.Surface)

	// create an adapter that can render to the Surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		PowerPreference:      wgpu.PowerPreferenceHighPerformance,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("request adapter: %w", err)
	}

	st.resources.Push("Adapter", st.Adapter)

	// get a Device with the default settings
	st.Device, err = st.Adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "Device"})
	if err != nil {
		return st, fmt.Errorf("request device: %w", err)
	}

	st.resources.Push("Device", st.Device)

	st.Queue = st.Device.GetQueue()
	st.resources.Push("Queue", st.Queue)

	slog.Info("Graphics device created",
		slog.Bool("fallbackAdapter", opts.ForceFallbackAdapter),
	)

	return st, nil
}

// Release releases the queue, device, adapter and surface,
// in that order. Calling Release more than once is a no-op.
func (d *Context) Release() {
	d.resources.Release()

	d.Queue = nil
	d.Device = nil
	d.Adapter = nil
	d.Surface = nil
}
