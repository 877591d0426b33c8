package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReleaser struct {
	name string
	log  *[]string
}

func (r recordingReleaser) Release() {
	*r.log = append(*r.log, r.name)
}

func TestReleaseStackReleasesInReverseOrder(t *testing.T) {
	var log []string

	var stack ReleaseStack
	for _, name := range []string{"Device", "Context", "SwapChain", "RenderTargetView"} {
		stack.Push(name, recordingReleaser{name: name, log: &log})
	}

	require.Equal(t, 4, stack.Len())

	stack.Release()

	assert.Equal(t, []string{"RenderTargetView", "SwapChain", "Context", "Device"}, log)
	assert.Equal(t, 0, stack.Len())
}

func TestReleaseStackReleasesAtMostOnce(t *testing.T) {
	var log []string

	var stack ReleaseStack
	stack.Push("Device", recordingReleaser{name: "Device", log: &log})
	stack.Push("Queue", recordingReleaser{name: "Queue", log: &log})

	stack.Release()
	stack.Release()

	assert.Equal(t, []string{"Queue", "Device"}, log)
}

func TestReleaseStackPartialAcquisition(t *testing.T) {
	var log []string

	// acquisition failed after the second resource
	var stack ReleaseStack
	stack.Push("Surface", recordingReleaser{name: "Surface", log: &log})
	stack.Push("Adapter", recordingReleaser{name: "Adapter", log: &log})

	stack.Release()

	assert.Equal(t, []string{"Adapter", "Surface"}, log)
}

type panickingReleaser struct{}

func (panickingReleaser) Release() {
	panic("release failed")
}

func TestReleaseStackPopsBeforeRelease(t *testing.T) {
	var log []string

	var stack ReleaseStack
	stack.Push("Device", recordingReleaser{name: "Device", log: &log})
	stack.Push("Broken", panickingReleaser{})

	assert.Panics(t, stack.Release)

	// the broken resource is gone, the rest is still pending
	assert.Equal(t, 1, stack.Len())

	stack.Release()
	assert.Equal(t, []string{"Device"}, log)
}

func TestReleaseGuard(t *testing.T) {
	var log []string

	guard := NewReleaseGuard(recordingReleaser{name: "Pass", log: &log})
	guard.Release()
	guard.Release()
	assert.Equal(t, []string{"Pass"}, log)

	kept := NewReleaseGuard(recordingReleaser{name: "Kept", log: &log})
	kept.Keep()
	kept.Release()
	assert.Equal(t, []string{"Pass"}, log)
}

func TestContextReleaseIsIdempotent(t *testing.T) {
	var log []string

	ctx := &Context{}
	ctx.resources.Push("Surface", recordingReleaser{name: "Surface", log: &log})
	ctx.resources.Push("Adapter", recordingReleaser{name: "Adapter", log: &log})
	ctx.resources.Push("Device", recordingReleaser{name: "Device", log: &log})
	ctx.resources.Push("Queue", recordingReleaser{name: "Queue", log: &log})

	ctx.Release()
	ctx.Release()

	assert.Equal(t, []string{"Queue", "Device", "Adapter", "Surface"}, log)
	assert.Nil(t, ctx.Device)
	assert.Nil(t, ctx.Surface)
}

func TestNewRequiresSurfaceDescriptor(t *testing.T) {
	ctx, err := New(nil, Options{})
	assert.Nil(t, ctx)
	assert.Error(t, err)
}
