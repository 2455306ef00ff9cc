package resource

import (
	"sync"

	"github.com/holaimscott/hidmux/hid"
)

// VibrationDevice is the emulated linear resonant actuator behind a standard
// vibration handle. The arbitration layer only ever talks to it through
// Activate and the value accessors; waveform synthesis happens downstream of
// the callback, if one is installed.
type VibrationDevice struct {
	mu        sync.Mutex
	handle    hid.VibrationDeviceHandle
	activated bool
	mounted   bool
	value     hid.VibrationValue
	sendFunc  func(hid.VibrationValue)
}

// Activate powers the actuator. Repeat activation is a no-op; the caller's
// registry guarantees it is only reached once per handle anyway.
func (d *VibrationDevice) Activate() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.activated = true
	d.mounted = true
	return nil
}

// SetSendCallback installs a callback invoked for every value applied.
func (d *VibrationDevice) SetSendCallback(f func(hid.VibrationValue)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sendFunc = f
}

// SendVibrationValue applies a new amplitude/frequency pair.
func (d *VibrationDevice) SendVibrationValue(v hid.VibrationValue) error {
	d.mu.Lock()
	d.value = v
	f := d.sendFunc
	d.mu.Unlock()
	if f != nil {
		f(v)
	}
	return nil
}

// ActualVibrationValue reports the value currently driving the actuator.
func (d *VibrationDevice) ActualVibrationValue() (hid.VibrationValue, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.activated {
		return hid.DefaultVibrationValue, hid.ErrDeviceNotFound
	}
	return d.value, nil
}

// IsVibrationMounted reports whether the physical actuator is present.
func (d *VibrationDevice) IsVibrationMounted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mounted
}

// GcVibrationDevice is the eccentric rotating mass motor of a GameCube
// controller. It is driven by discrete start/stop commands instead of
// amplitude pairs.
type GcVibrationDevice struct {
	mu        sync.Mutex
	handle    hid.VibrationDeviceHandle
	activated bool
	command   hid.VibrationGcErmCommand
}

func (d *GcVibrationDevice) Activate() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.activated = true
	return nil
}

// SendVibrationGcErmCommand applies a motor command.
func (d *GcVibrationDevice) SendVibrationGcErmCommand(cmd hid.VibrationGcErmCommand) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.command = cmd
	return nil
}

// ActualVibrationGcErmCommand reports the command currently applied.
func (d *GcVibrationDevice) ActualVibrationGcErmCommand() (hid.VibrationGcErmCommand, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.activated {
		return hid.GcErmStop, hid.ErrDeviceNotFound
	}
	return d.command, nil
}

// N64VibrationDevice is the rumble pak of an N64 controller, driven by a
// single on/off flag.
type N64VibrationDevice struct {
	mu        sync.Mutex
	handle    hid.VibrationDeviceHandle
	vibrating bool
}

// SendValueInBool switches the rumble pak on or off.
func (d *N64VibrationDevice) SendValueInBool(isVibrating bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.vibrating = isVibrating
	return nil
}

// IsVibrating reports the current rumble pak state.
func (d *N64VibrationDevice) IsVibrating() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.vibrating
}

// SixAxisSensor is the emulated motion sensor behind a sixaxis handle. Only
// its rest state is read by the arbitration layer; sample production lives
// outside this module.
type SixAxisSensor struct {
	mu      sync.Mutex
	handle  hid.SixAxisSensorHandle
	enabled bool
	atRest  bool
}

// SetEnabled starts or stops sampling.
func (s *SixAxisSensor) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// SetAtRest records the rest state computed by the sample pipeline.
func (s *SixAxisSensor) SetAtRest(atRest bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.atRest = atRest
}

// IsAtRest reports whether the sensor currently sees no motion. A sensor
// that was never started reads as at rest.
func (s *SixAxisSensor) IsAtRest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.atRest || !s.enabled
}

// ConsoleSixAxis is the console-internal motion sensor.
type ConsoleSixAxis struct {
	mu        sync.Mutex
	activated bool
	aruids    map[uint64]bool
}

// Activate powers the console sensor itself.
func (c *ConsoleSixAxis) Activate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activated = true
	return nil
}

// ActivateAruid attaches a session to the console sensor.
func (c *ConsoleSixAxis) ActivateAruid(aruid uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.aruids == nil {
		c.aruids = make(map[uint64]bool)
	}
	c.aruids[aruid] = true
	return nil
}
