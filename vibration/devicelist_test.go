package vibration_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holaimscott/hidmux/hid"
	"github.com/holaimscott/hidmux/vibration"
)

// countingActivator records every physical activation it receives.
type countingActivator struct {
	mu          sync.Mutex
	activations map[hid.VibrationDeviceHandle]int
	fail        error
}

func newCountingActivator() *countingActivator {
	return &countingActivator{activations: make(map[hid.VibrationDeviceHandle]int)}
}

func (a *countingActivator) ActivateVibrationDevice(h hid.VibrationDeviceHandle) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fail != nil {
		return a.fail
	}
	a.activations[h]++
	return nil
}

func (a *countingActivator) count(h hid.VibrationDeviceHandle) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.activations[h]
}

func dualHandle(id hid.NpadIdType, idx hid.DeviceIndex) hid.VibrationDeviceHandle {
	return hid.VibrationDeviceHandle{Type: hid.StyleIndexJoyconDual, NpadId: id, DeviceIndex: idx}
}

func TestActivateIdempotent(t *testing.T) {
	a := newCountingActivator()
	l := vibration.NewDeviceList(a)
	h := dualHandle(hid.NpadIdPlayer1, hid.DeviceIndexLeft)

	require.NoError(t, l.Activate(h))
	require.NoError(t, l.Activate(h))

	assert.Equal(t, 1, a.count(h), "physical activation must happen at most once")
	assert.Equal(t, 1, l.Len())
}

func TestActivateInvalidHandle(t *testing.T) {
	a := newCountingActivator()
	l := vibration.NewDeviceList(a)
	bad := hid.VibrationDeviceHandle{Type: hid.StyleIndexProController, NpadId: hid.NpadIdPlayer1, DeviceIndex: hid.DeviceIndexRight}

	assert.ErrorIs(t, l.Activate(bad), hid.ErrInvalidHandle)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, a.count(bad), "no side effect on rejected handle")
}

func TestActivateDelegateFailure(t *testing.T) {
	a := newCountingActivator()
	a.fail = errors.New("actuator offline")
	l := vibration.NewDeviceList(a)
	h := dualHandle(hid.NpadIdPlayer1, hid.DeviceIndexLeft)

	assert.EqualError(t, l.Activate(h), "actuator offline")
	assert.Equal(t, 0, l.Len(), "registry unchanged when activation fails")
}

// distinctHandles produces n structurally distinct valid vibration handles.
func distinctHandles(n int) []hid.VibrationDeviceHandle {
	types := []hid.NpadStyleIndex{
		hid.StyleIndexProController, hid.StyleIndexHandheld,
		hid.StyleIndexJoyconLeft, hid.StyleIndexJoyconRight,
		hid.StyleIndexGameCube, hid.StyleIndexN64,
		hid.StyleIndexJoyconDual,
	}
	out := make([]hid.VibrationDeviceHandle, 0, n)
	for _, typ := range types {
		for _, id := range hid.NpadIds {
			count := 1
			if typ == hid.StyleIndexJoyconDual {
				count = 2
			}
			for idx := 0; idx < count; idx++ {
				out = append(out, hid.VibrationDeviceHandle{Type: typ, NpadId: id, DeviceIndex: hid.DeviceIndex(idx)})
				if len(out) == n {
					return out
				}
			}
		}
	}
	return out
}

func TestActivateCapacity(t *testing.T) {
	handles := distinctHandles(vibration.MaxActiveDevices + 1)
	require.Len(t, handles, vibration.MaxActiveDevices+1,
		"topology must provide enough distinct handles for this test")

	a := newCountingActivator()
	l := vibration.NewDeviceList(a)
	for _, h := range handles[:vibration.MaxActiveDevices] {
		require.NoError(t, l.Activate(h))
	}
	assert.Equal(t, vibration.MaxActiveDevices, l.Len())

	err := l.Activate(handles[vibration.MaxActiveDevices])
	assert.ErrorIs(t, err, hid.ErrDeviceIndexOutOfRange)
	assert.Equal(t, vibration.MaxActiveDevices, l.Len())

	// Re-activating an existing handle still succeeds at capacity.
	assert.NoError(t, l.Activate(handles[0]))
}

func TestActivateConcurrent(t *testing.T) {
	const n = 64
	handles := distinctHandles(n)
	a := newCountingActivator()
	l := vibration.NewDeviceList(a)

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i, h := range handles {
		wg.Add(1)
		go func(i int, h hid.VibrationDeviceHandle) {
			defer wg.Done()
			errs[i] = l.Activate(h)
		}(i, h)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "handle %d", i)
	}
	assert.Equal(t, n, l.Len(), "no lost updates")
	for _, h := range handles {
		assert.Equal(t, 1, a.count(h), "no duplicate activation")
	}
}

func TestPermitSession(t *testing.T) {
	p := vibration.NewPermitSession()
	assert.True(t, p.IsPermitted())

	p.SetMasterVolume(0.0)
	assert.False(t, p.IsPermitted())
	assert.Equal(t, float32(0.0), p.MasterVolume())

	p.SetMasterVolume(1.0)
	assert.True(t, p.IsPermitted())

	_, held := p.Holder()
	assert.False(t, held)

	p.Begin(10)
	holder, held := p.Holder()
	assert.True(t, held)
	assert.Equal(t, uint64(10), holder)

	// Last writer wins, no queuing.
	p.Begin(11)
	holder, _ = p.Holder()
	assert.Equal(t, uint64(11), holder)

	p.End()
	_, held = p.Holder()
	assert.False(t, held)
	p.End()
}
