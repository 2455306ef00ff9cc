// Package vibration holds the arbitration state for vibration actuators:
// the per-session active device list and the global permit session.
package vibration

import (
	"sync"

	"github.com/holaimscott/hidmux/hid"
)

// MaxActiveDevices is the fixed capacity of one active vibration device list.
const MaxActiveDevices = 256

// DeviceActivator powers the physical actuator behind a handle. Implemented
// by the resource manager. Activate must be fast, must not block, and must
// not call back into the device list: it runs while the list lock is held so
// the capacity check and the physical activation are observed together.
type DeviceActivator interface {
	ActivateVibrationDevice(h hid.VibrationDeviceHandle) error
}

// DeviceList is one session's set of activated vibration device handles.
// Each list is independently owned by the session that created it; lists are
// never shared across sessions.
type DeviceList struct {
	mu        sync.Mutex
	activator DeviceActivator
	handles   []hid.VibrationDeviceHandle
}

// NewDeviceList creates an empty list delegating activation to activator.
func NewDeviceList(activator DeviceActivator) *DeviceList {
	return &DeviceList{
		activator: activator,
		handles:   make([]hid.VibrationDeviceHandle, 0, MaxActiveDevices),
	}
}

// Activate registers a handle and powers its actuator exactly once.
// Re-activating a handle already on the list succeeds without touching the
// device again. A full list fails with ErrDeviceIndexOutOfRange. The whole
// sequence runs under the list lock so concurrent callers observe a
// linearizable check-then-act: no duplicate physical activation, no racing
// past the capacity limit.
func (l *DeviceList) Activate(h hid.VibrationDeviceHandle) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := hid.ValidateVibrationHandle(h); err != nil {
		return err
	}
	for _, existing := range l.handles {
		if existing == h {
			return nil
		}
	}
	if len(l.handles) == MaxActiveDevices {
		return hid.ErrDeviceIndexOutOfRange
	}
	if err := l.activator.ActivateVibrationDevice(h); err != nil {
		return err
	}
	l.handles = append(l.handles, h)
	return nil
}

// Len reports how many handles have been activated on this list.
func (l *DeviceList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handles)
}
