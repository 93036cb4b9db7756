package device_test

import (
	"sync"
	"testing"
	"time"

	"github.com/amp-labs/mote/actor"
	"github.com/amp-labs/mote/device"
	"github.com/amp-labs/mote/supervisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDevice is mounted as a pointer so publish's per-dispatch copy of
// EventBus[*recordingDevice] still shares the one underlying recorder.
type recordingDevice struct {
	mu     sync.Mutex
	events []string
}

func (d *recordingDevice) OnEvent(event string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.events = append(d.events, event)
}

func (d *recordingDevice) snapshot() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.events...)
}

var _ device.EventHandler[string] = (*recordingDevice)(nil)

func TestPublishFansOutToDeviceHandler(t *testing.T) {
	t.Parallel()

	sup := supervisor.New()
	target := &recordingDevice{}

	busAddr := device.NewAddress(actor.NewContext("bus", device.NewEventBus[*recordingDevice](target)).Mount(sup))

	device.Publish(busAddr, "button pressed")
	device.Publish(busAddr, "sensor reading")
	sup.RunUntilQuiescence()

	assert.Equal(t, []string{"button pressed", "sensor reading"}, target.snapshot())
}

func TestPublishDoesNotBlockOnHandler(t *testing.T) {
	t.Parallel()

	sup := supervisor.New()
	target := &recordingDevice{}

	busAddr := device.NewAddress(actor.NewContext("bus", device.NewEventBus[*recordingDevice](target)).Mount(sup))

	go sup.RunForever(t.Context())

	done := make(chan struct{})
	go func() {
		device.Publish(busAddr, "first")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on the handler running")
	}

	require.Eventually(t, func() bool {
		return len(target.snapshot()) == 1
	}, time.Second, time.Millisecond)
}
