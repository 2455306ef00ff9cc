// Package sixaxis keeps the per-handle motion sensor configuration: fusion
// parameters, drift compensation and passthrough flags.
package sixaxis

import (
	"sync"

	"github.com/holaimscott/hidmux/hid"
)

// AtRestReader sources the live "at rest" signal for a sensor. Implemented
// by the resource manager; the config session never computes rest itself.
type AtRestReader interface {
	IsSixAxisAtRest(h hid.SixAxisSensorHandle) bool
}

// config is one sensor's settings. Sensors come up with fusion on, standard
// drift compensation and the newly-assigned flag set, matching a controller
// fresh out of pairing.
type config struct {
	enabled       bool
	fusionEnabled bool
	fusionParams  hid.SixAxisSensorFusionParameters
	driftMode     hid.GyroscopeZeroDriftMode
	passthrough   bool
	newlyAssigned bool
}

func newConfig() *config {
	return &config{
		fusionEnabled: true,
		fusionParams:  hid.DefaultSixAxisFusionParameters,
		driftMode:     hid.DriftModeStandard,
		newlyAssigned: true,
	}
}

// Session stores sixaxis configuration per sensor handle. Every accessor
// validates the handle before touching state; configs are created lazily and
// live for the process lifetime. A single lock guards the map and the
// configs: transitions are tiny and uncontended in practice.
type Session struct {
	mu      sync.Mutex
	atRest  AtRestReader
	configs map[hid.SixAxisSensorHandle]*config
}

// NewSession creates an empty config session reading rest state from r.
func NewSession(r AtRestReader) *Session {
	return &Session{
		atRest:  r,
		configs: make(map[hid.SixAxisSensorHandle]*config),
	}
}

func (s *Session) config(h hid.SixAxisSensorHandle) *config {
	c, ok := s.configs[h]
	if !ok {
		c = newConfig()
		s.configs[h] = c
	}
	return c
}

// withConfig validates the handle, then runs fn on its config under the lock.
func (s *Session) withConfig(h hid.SixAxisSensorHandle, fn func(*config)) error {
	if err := hid.ValidateSixAxisHandle(h); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.config(h))
	return nil
}

// Start enables sampling for the sensor.
func (s *Session) Start(h hid.SixAxisSensorHandle) error {
	return s.withConfig(h, func(c *config) { c.enabled = true })
}

// Stop disables sampling. Configuration is kept.
func (s *Session) Stop(h hid.SixAxisSensorHandle) error {
	return s.withConfig(h, func(c *config) { c.enabled = false })
}

// IsStarted reports whether the sensor is sampling.
func (s *Session) IsStarted(h hid.SixAxisSensorHandle) (bool, error) {
	var started bool
	err := s.withConfig(h, func(c *config) { started = c.enabled })
	return started, err
}

// SetFusionEnabled toggles sensor fusion for the handle.
func (s *Session) SetFusionEnabled(h hid.SixAxisSensorHandle, enabled bool) error {
	return s.withConfig(h, func(c *config) { c.fusionEnabled = enabled })
}

// IsFusionEnabled reports whether sensor fusion is on.
func (s *Session) IsFusionEnabled(h hid.SixAxisSensorHandle) (bool, error) {
	var enabled bool
	err := s.withConfig(h, func(c *config) { enabled = c.fusionEnabled })
	return enabled, err
}

// SetFusionParameters replaces the fusion coefficients.
func (s *Session) SetFusionParameters(h hid.SixAxisSensorHandle, p hid.SixAxisSensorFusionParameters) error {
	return s.withConfig(h, func(c *config) { c.fusionParams = p })
}

// FusionParameters reports the fusion coefficients.
func (s *Session) FusionParameters(h hid.SixAxisSensorHandle) (hid.SixAxisSensorFusionParameters, error) {
	var p hid.SixAxisSensorFusionParameters
	err := s.withConfig(h, func(c *config) { p = c.fusionParams })
	return p, err
}

// ResetFusionParameters restores the default coefficients and re-enables
// fusion. If the parameter write fails the enable step never runs and that
// error surfaces; otherwise the enable step's result is what is returned.
func (s *Session) ResetFusionParameters(h hid.SixAxisSensorHandle) error {
	if err := s.SetFusionParameters(h, hid.DefaultSixAxisFusionParameters); err != nil {
		return err
	}
	return s.SetFusionEnabled(h, true)
}

// SetGyroscopeZeroDriftMode sets the drift compensation aggressiveness.
func (s *Session) SetGyroscopeZeroDriftMode(h hid.SixAxisSensorHandle, mode hid.GyroscopeZeroDriftMode) error {
	return s.withConfig(h, func(c *config) { c.driftMode = mode })
}

// GyroscopeZeroDriftMode reports the drift compensation mode.
func (s *Session) GyroscopeZeroDriftMode(h hid.SixAxisSensorHandle) (hid.GyroscopeZeroDriftMode, error) {
	var mode hid.GyroscopeZeroDriftMode
	err := s.withConfig(h, func(c *config) { mode = c.driftMode })
	return mode, err
}

// ResetGyroscopeZeroDriftMode restores the standard drift mode.
func (s *Session) ResetGyroscopeZeroDriftMode(h hid.SixAxisSensorHandle) error {
	return s.SetGyroscopeZeroDriftMode(h, hid.DriftModeStandard)
}

// IsAtRest reports whether the sensor is currently at rest, read from the
// live sensor object.
func (s *Session) IsAtRest(h hid.SixAxisSensorHandle) (bool, error) {
	if err := hid.ValidateSixAxisHandle(h); err != nil {
		return false, err
	}
	return s.atRest.IsSixAxisAtRest(h), nil
}

// SetUnalteredPassthrough toggles raw sample passthrough.
func (s *Session) SetUnalteredPassthrough(h hid.SixAxisSensorHandle, enabled bool) error {
	return s.withConfig(h, func(c *config) { c.passthrough = enabled })
}

// IsUnalteredPassthrough reports whether raw sample passthrough is on.
func (s *Session) IsUnalteredPassthrough(h hid.SixAxisSensorHandle) (bool, error) {
	var enabled bool
	err := s.withConfig(h, func(c *config) { enabled = c.passthrough })
	return enabled, err
}

// IsNewlyAssigned reports whether the sensor has not yet been claimed.
func (s *Session) IsNewlyAssigned(h hid.SixAxisSensorHandle) (bool, error) {
	var newly bool
	err := s.withConfig(h, func(c *config) { newly = c.newlyAssigned })
	return newly, err
}

// ResetIsNewlyAssigned clears the newly-assigned flag.
func (s *Session) ResetIsNewlyAssigned(h hid.SixAxisSensorHandle) error {
	return s.withConfig(h, func(c *config) { c.newlyAssigned = false })
}

// LoadCalibrationParameter reads the factory calibration blob. The emulated
// sensors carry a zeroed blob; only the handle check can fail.
func (s *Session) LoadCalibrationParameter(h hid.SixAxisSensorHandle) (hid.SixAxisSensorCalibrationParameter, error) {
	if err := hid.ValidateSixAxisHandle(h); err != nil {
		return hid.SixAxisSensorCalibrationParameter{}, err
	}
	return hid.SixAxisSensorCalibrationParameter{}, nil
}

// IcInformation reports the sensor IC's measurement ranges. The emulated IC
// reports the ranges of the reference part.
func (s *Session) IcInformation(h hid.SixAxisSensorHandle) (hid.SixAxisSensorIcInformation, error) {
	if err := hid.ValidateSixAxisHandle(h); err != nil {
		return hid.SixAxisSensorIcInformation{}, err
	}
	return hid.SixAxisSensorIcInformation{
		AccelerometerRange: 8.0,
		GyroscopeRange:     2000.0,
	}, nil
}
