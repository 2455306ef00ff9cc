// Package resource owns the per-session applet resources and the table of
// emulated devices addressed by HID handles. It is the single source of
// truth for which session currently holds vibration rights and hands out
// device objects to the arbitration layer.
package resource

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/holaimscott/hidmux/hid"
)

// ErrAruidAlreadyRegistered reports a duplicate CreateAppletResource call.
var ErrAruidAlreadyRegistered = errors.New("applet resource already registered for aruid")

// VibrationEvent is published to stream subscribers whenever a vibration
// value is applied on behalf of a session.
type VibrationEvent struct {
	Aruid  uint64                    `json:"aruid"`
	Handle hid.VibrationDeviceHandle `json:"handle"`
	Value  hid.VibrationValue        `json:"value"`
}

// Manager tracks applet resources keyed by ARUID and lazily materializes the
// emulated device objects for every valid handle. All lookups hand back
// shared instances; device state is guarded by the devices' own mutexes.
type Manager struct {
	mu     sync.Mutex
	logger *slog.Logger

	applets     map[uint64]bool
	activeAruid uint64
	hasActive   bool

	vibrationDevices map[hid.VibrationDeviceHandle]*VibrationDevice
	gcDevices        map[hid.VibrationDeviceHandle]*GcVibrationDevice
	n64Devices       map[hid.VibrationDeviceHandle]*N64VibrationDevice
	sixAxisSensors   map[hid.SixAxisSensorHandle]*SixAxisSensor
	consoleSixAxis   *ConsoleSixAxis

	subscribers map[uint64][]chan VibrationEvent
}

// NewManager creates an empty resource manager.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:           logger,
		applets:          make(map[uint64]bool),
		vibrationDevices: make(map[hid.VibrationDeviceHandle]*VibrationDevice),
		gcDevices:        make(map[hid.VibrationDeviceHandle]*GcVibrationDevice),
		n64Devices:       make(map[hid.VibrationDeviceHandle]*N64VibrationDevice),
		sixAxisSensors:   make(map[hid.SixAxisSensorHandle]*SixAxisSensor),
		consoleSixAxis:   &ConsoleSixAxis{},
		subscribers:      make(map[uint64][]chan VibrationEvent),
	}
}

// CreateAppletResource registers a session. The most recently created
// session becomes the active vibration owner, mirroring the focused applet
// following foreground focus.
func (m *Manager) CreateAppletResource(aruid uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.applets[aruid] {
		return ErrAruidAlreadyRegistered
	}
	m.applets[aruid] = true
	m.activeAruid = aruid
	m.hasActive = true
	m.logger.Debug("applet resource created", "aruid", aruid)
	return nil
}

// FreeAppletResource releases a session and everything it owns.
func (m *Manager) FreeAppletResource(aruid uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.applets, aruid)
	if m.hasActive && m.activeAruid == aruid {
		m.hasActive = false
	}
	for _, ch := range m.subscribers[aruid] {
		close(ch)
	}
	delete(m.subscribers, aruid)
}

// SetActiveVibrationAruid moves vibration ownership to the given session.
func (m *Manager) SetActiveVibrationAruid(aruid uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeAruid = aruid
	m.hasActive = true
}

// IsVibrationAruidActive reports whether the session currently holds
// vibration rights. Unregistered sessions never do.
func (m *Manager) IsVibrationAruidActive(aruid uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hasActive && m.applets[aruid] && m.activeAruid == aruid
}

// GetVibrationDevice returns the standard actuator for a handle, creating it
// on first use. Returns nil for handles outside the physical topology.
func (m *Manager) GetVibrationDevice(h hid.VibrationDeviceHandle) *VibrationDevice {
	if hid.ValidateVibrationHandle(h) != nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.vibrationDevices[h]
	if !ok {
		d = &VibrationDevice{handle: h, mounted: true}
		m.vibrationDevices[h] = d
	}
	return d
}

// GetGcVibrationDevice returns the GameCube motor for a handle. Only
// GameCube-typed handles resolve.
func (m *Manager) GetGcVibrationDevice(h hid.VibrationDeviceHandle) *GcVibrationDevice {
	if h.Type != hid.StyleIndexGameCube || hid.ValidateVibrationHandle(h) != nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.gcDevices[h]
	if !ok {
		d = &GcVibrationDevice{handle: h}
		m.gcDevices[h] = d
	}
	return d
}

// GetN64VibrationDevice returns the rumble pak for a handle. Only N64-typed
// handles resolve.
func (m *Manager) GetN64VibrationDevice(h hid.VibrationDeviceHandle) *N64VibrationDevice {
	if h.Type != hid.StyleIndexN64 || hid.ValidateVibrationHandle(h) != nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.n64Devices[h]
	if !ok {
		d = &N64VibrationDevice{handle: h}
		m.n64Devices[h] = d
	}
	return d
}

// GetSixAxisSensor returns the motion sensor for a handle, creating it on
// first use. Returns nil for handles outside the physical topology.
func (m *Manager) GetSixAxisSensor(h hid.SixAxisSensorHandle) *SixAxisSensor {
	if hid.ValidateSixAxisHandle(h) != nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sixAxisSensors[h]
	if !ok {
		s = &SixAxisSensor{handle: h, atRest: true}
		m.sixAxisSensors[h] = s
	}
	return s
}

// IsSixAxisAtRest reports the live rest state of a sensor. Sensors behind an
// invalid handle read as at rest, never as moving.
func (m *Manager) IsSixAxisAtRest(h hid.SixAxisSensorHandle) bool {
	s := m.GetSixAxisSensor(h)
	if s == nil {
		return true
	}
	return s.IsAtRest()
}

// GetConsoleSixAxis returns the console-internal motion sensor.
func (m *Manager) GetConsoleSixAxis() *ConsoleSixAxis {
	return m.consoleSixAxis
}

// ActivateVibrationDevice powers the actuator behind a handle. Used by the
// active vibration device list after its own validation and capacity checks.
func (m *Manager) ActivateVibrationDevice(h hid.VibrationDeviceHandle) error {
	d := m.GetVibrationDevice(h)
	if d == nil {
		return hid.ErrDeviceNotFound
	}
	return d.Activate()
}

// SendVibrationValue applies a value on behalf of a session. Writes from a
// session without vibration rights fail with ErrVibrationNotPermitted before
// any device state changes.
func (m *Manager) SendVibrationValue(aruid uint64, h hid.VibrationDeviceHandle, v hid.VibrationValue) error {
	if !m.IsVibrationAruidActive(aruid) {
		return hid.ErrVibrationNotPermitted
	}
	if err := hid.ValidateVibrationHandle(h); err != nil {
		return err
	}
	d := m.GetVibrationDevice(h)
	if d == nil {
		return hid.ErrDeviceNotFound
	}
	if err := d.SendVibrationValue(v); err != nil {
		return err
	}
	m.publish(VibrationEvent{Aruid: aruid, Handle: h, Value: v})
	return nil
}

// SubscribeVibration returns a channel of vibration events applied for the
// session, and a cancel function. Slow subscribers drop events rather than
// stalling the writer.
func (m *Manager) SubscribeVibration(aruid uint64) (<-chan VibrationEvent, func()) {
	ch := make(chan VibrationEvent, 64)
	m.mu.Lock()
	m.subscribers[aruid] = append(m.subscribers[aruid], ch)
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		subs := m.subscribers[aruid]
		for i, c := range subs {
			if c == ch {
				m.subscribers[aruid] = append(subs[:i], subs[i+1:]...)
				close(c)
				return
			}
		}
	}
	return ch, cancel
}

// publish fans an event out to the session's subscribers. The sends stay
// under m.mu: FreeAppletResource and Subscribe's cancel close channels under
// the same lock, and the sends never block.
func (m *Manager) publish(ev VibrationEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subscribers[ev.Aruid] {
		select {
		case ch <- ev:
		default:
		}
	}
}
