// Package service is the operation surface of hidmux: one method per HID
// service operation, routing validation and permission checks into the
// domain components before any device is touched.
package service

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/holaimscott/hidmux/hid"
	"github.com/holaimscott/hidmux/npad"
	"github.com/holaimscott/hidmux/resource"
	"github.com/holaimscott/hidmux/sixaxis"
	"github.com/holaimscott/hidmux/vibration"
)

// ErrUnknownDeviceList reports an operation on a device list id that was
// never handed out by CreateActiveVibrationDeviceList.
var ErrUnknownDeviceList = errors.New("unknown active vibration device list")

// Service owns the arbitration components and exposes every operation the
// control plane serves. Construct one per process; all methods are safe for
// concurrent use.
type Service struct {
	logger  *slog.Logger
	res     *resource.Manager
	npads   *npad.Controller
	sixaxis *sixaxis.Session
	permit  *vibration.PermitSession

	mu       sync.Mutex
	lists    map[uint32]*vibration.DeviceList
	nextList uint32
}

// New wires up a service around a fresh resource manager.
func New(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	res := resource.NewManager(logger)
	return &Service{
		logger:  logger,
		res:     res,
		npads:   npad.NewController(logger),
		sixaxis: sixaxis.NewSession(res),
		permit:  vibration.NewPermitSession(),
		lists:   make(map[uint32]*vibration.DeviceList),
	}
}

// Resources exposes the resource manager, used by the stream transport for
// vibration event subscriptions.
func (s *Service) Resources() *resource.Manager { return s.res }

// CreateAppletResource registers a session. The newest session becomes the
// active vibration owner.
func (s *Service) CreateAppletResource(aruid uint64) error {
	return s.res.CreateAppletResource(aruid)
}

// FreeAppletResource releases a session.
func (s *Service) FreeAppletResource(aruid uint64) {
	s.res.FreeAppletResource(aruid)
}

// --- npad ---

// ActivateNpad activates the session's npads at the oldest revision.
func (s *Service) ActivateNpad(aruid uint64) {
	s.npads.Activate(aruid)
}

// ActivateNpadWithRevision activates the session's npads at a revision.
func (s *Service) ActivateNpadWithRevision(aruid uint64, revision hid.NpadRevision) {
	s.npads.ActivateWithRevision(aruid, revision)
}

// DeactivateNpad is a stubbed success, kept for opcode-table completeness.
func (s *Service) DeactivateNpad(aruid uint64) {}

func (s *Service) SetSupportedNpadStyleSet(aruid uint64, styles hid.NpadStyleSet) {
	s.npads.SetSupportedStyleSet(aruid, styles)
}

func (s *Service) GetSupportedNpadStyleSet(aruid uint64) hid.NpadStyleSet {
	return s.npads.SupportedStyleSet(aruid)
}

func (s *Service) SetSupportedNpadIdType(aruid uint64, ids []hid.NpadIdType) error {
	return s.npads.SetSupportedIds(aruid, ids)
}

func (s *Service) DisconnectNpad(aruid uint64, id hid.NpadIdType) error {
	return s.npads.Disconnect(aruid, id)
}

func (s *Service) GetPlayerLedPattern(id hid.NpadIdType) (hid.LedPattern, error) {
	return s.npads.LedPattern(id)
}

func (s *Service) SetNpadJoyHoldType(aruid uint64, hold hid.NpadJoyHoldType) {
	s.npads.SetJoyHoldType(aruid, hold)
}

func (s *Service) GetNpadJoyHoldType(aruid uint64) hid.NpadJoyHoldType {
	return s.npads.JoyHoldType(aruid)
}

func (s *Service) SetNpadJoyAssignmentModeSingleByDefault(aruid uint64, id hid.NpadIdType) error {
	return s.npads.SetAssignmentSingleDefault(aruid, id)
}

func (s *Service) SetNpadJoyAssignmentModeSingle(aruid uint64, id hid.NpadIdType, device hid.NpadJoyDeviceType) error {
	_, _, err := s.npads.SetAssignmentSingle(aruid, id, device)
	return err
}

// SetNpadJoyAssignmentModeSingleWithDestination reports whether splitting the
// pair reassigned the freed half and where it landed.
func (s *Service) SetNpadJoyAssignmentModeSingleWithDestination(aruid uint64, id hid.NpadIdType, device hid.NpadJoyDeviceType) (bool, hid.NpadIdType, error) {
	return s.npads.SetAssignmentSingle(aruid, id, device)
}

func (s *Service) SetNpadJoyAssignmentModeDual(aruid uint64, id hid.NpadIdType) error {
	return s.npads.SetAssignmentDual(aruid, id)
}

func (s *Service) MergeSingleJoyAsDualJoy(aruid uint64, id1, id2 hid.NpadIdType) error {
	return s.npads.MergeSingleJoyAsDualJoy(aruid, id1, id2)
}

func (s *Service) SwapNpadAssignment(aruid uint64, id1, id2 hid.NpadIdType) error {
	return s.npads.SwapNpadAssignment(aruid, id1, id2)
}

func (s *Service) StartLrAssignmentMode(aruid uint64) {
	s.npads.StartLrAssignmentMode(aruid)
}

func (s *Service) StopLrAssignmentMode(aruid uint64) {
	s.npads.StopLrAssignmentMode(aruid)
}

func (s *Service) SetNpadHandheldActivationMode(aruid uint64, mode hid.NpadHandheldActivationMode) {
	s.npads.SetHandheldActivationMode(aruid, mode)
}

func (s *Service) GetNpadHandheldActivationMode(aruid uint64) hid.NpadHandheldActivationMode {
	return s.npads.HandheldActivationMode(aruid)
}

func (s *Service) EnableUnintendedHomeButtonInputProtection(aruid uint64, id hid.NpadIdType, enabled bool) error {
	return s.npads.SetHomeProtection(aruid, id, enabled)
}

func (s *Service) IsUnintendedHomeButtonInputProtectionEnabled(aruid uint64, id hid.NpadIdType) (bool, error) {
	return s.npads.HomeProtection(aruid, id)
}

func (s *Service) SetNpadAnalogStickUseCenterClamp(aruid uint64, use bool) {
	s.npads.SetAnalogStickUseCenterClamp(aruid, use)
}

func (s *Service) SetNpadCaptureButtonAssignment(aruid uint64, styles hid.NpadStyleSet, button hid.NpadButton) {
	s.npads.SetCaptureButtonAssignment(aruid, styles, button)
}

func (s *Service) ClearNpadCaptureButtonAssignment(aruid uint64) {
	s.npads.ClearCaptureButtonAssignment(aruid)
}

// --- vibration ---

// GetVibrationDeviceInfo derives the actuator type and position from the
// handle alone; no session is involved.
func (s *Service) GetVibrationDeviceInfo(h hid.VibrationDeviceHandle) (hid.VibrationDeviceInfo, error) {
	if err := hid.ValidateVibrationHandle(h); err != nil {
		return hid.VibrationDeviceInfo{}, err
	}
	return hid.VibrationDeviceInfoFor(h), nil
}

// SendVibrationValue applies one value on behalf of a session. The result of
// the underlying send is discarded: the operation reports success even when
// the session holds no vibration rights.
func (s *Service) SendVibrationValue(aruid uint64, h hid.VibrationDeviceHandle, v hid.VibrationValue) {
	if err := s.res.SendVibrationValue(aruid, h, v); err != nil {
		s.logger.Debug("vibration value dropped", "aruid", aruid, "error", err)
	}
}

// SendVibrationValues applies values to handles pairwise. Mismatched lengths
// fail the whole batch before any element is applied; afterwards the first
// element failure aborts the rest without rolling back applied elements.
func (s *Service) SendVibrationValues(aruid uint64, handles []hid.VibrationDeviceHandle, values []hid.VibrationValue) error {
	if len(handles) != len(values) {
		return hid.ErrArraySizeMismatch
	}
	for i, h := range handles {
		if err := s.res.SendVibrationValue(aruid, h, values[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetActualVibrationValue reads back the value driving an actuator. Reads
// are safe: an inactive session, a bad handle or a missing device all yield
// the neutral default value instead of an error.
func (s *Service) GetActualVibrationValue(aruid uint64, h hid.VibrationDeviceHandle) hid.VibrationValue {
	if !s.res.IsVibrationAruidActive(aruid) {
		return hid.DefaultVibrationValue
	}
	d := s.res.GetVibrationDevice(h)
	if d == nil {
		return hid.DefaultVibrationValue
	}
	v, err := d.ActualVibrationValue()
	if err != nil {
		return hid.DefaultVibrationValue
	}
	return v
}

// SendVibrationGcErmCommand drives a GameCube motor. Writes are gated on the
// session's vibration rights.
func (s *Service) SendVibrationGcErmCommand(aruid uint64, h hid.VibrationDeviceHandle, cmd hid.VibrationGcErmCommand) error {
	if !s.res.IsVibrationAruidActive(aruid) {
		return hid.ErrVibrationNotPermitted
	}
	if err := hid.ValidateVibrationHandle(h); err != nil {
		return err
	}
	d := s.res.GetGcVibrationDevice(h)
	if d == nil {
		return hid.ErrDeviceNotFound
	}
	return d.SendVibrationGcErmCommand(cmd)
}

// GetActualVibrationGcErmCommand reads back the GameCube motor command, with
// the same read-is-safe substitution as GetActualVibrationValue.
func (s *Service) GetActualVibrationGcErmCommand(aruid uint64, h hid.VibrationDeviceHandle) hid.VibrationGcErmCommand {
	if !s.res.IsVibrationAruidActive(aruid) {
		return hid.GcErmStop
	}
	d := s.res.GetGcVibrationDevice(h)
	if d == nil {
		return hid.GcErmStop
	}
	cmd, err := d.ActualVibrationGcErmCommand()
	if err != nil {
		return hid.GcErmStop
	}
	return cmd
}

// SendVibrationValueInBool switches an N64 rumble pak on or off.
func (s *Service) SendVibrationValueInBool(aruid uint64, h hid.VibrationDeviceHandle, isVibrating bool) error {
	if !s.res.IsVibrationAruidActive(aruid) {
		return hid.ErrVibrationNotPermitted
	}
	if err := hid.ValidateVibrationHandle(h); err != nil {
		return err
	}
	d := s.res.GetN64VibrationDevice(h)
	if d == nil {
		return hid.ErrDeviceNotFound
	}
	return d.SendValueInBool(isVibrating)
}

// IsVibrationDeviceMounted reports whether the actuator behind the handle is
// physically present. Unlike the actual-value reads this one does surface an
// invalid handle.
func (s *Service) IsVibrationDeviceMounted(aruid uint64, h hid.VibrationDeviceHandle) (bool, error) {
	if err := hid.ValidateVibrationHandle(h); err != nil {
		return false, err
	}
	d := s.res.GetVibrationDevice(h)
	if d == nil {
		return false, hid.ErrDeviceNotFound
	}
	return d.IsVibrationMounted(), nil
}

// PermitVibration maps the permit flag onto the master volume.
func (s *Service) PermitVibration(canVibrate bool) {
	if canVibrate {
		s.permit.SetMasterVolume(1.0)
	} else {
		s.permit.SetMasterVolume(0.0)
	}
}

// IsVibrationPermitted reports whether vibration output is allowed at all.
func (s *Service) IsVibrationPermitted() bool {
	return s.permit.IsPermitted()
}

// BeginPermitVibrationSession grants a session exclusive authorship of the
// master volume.
func (s *Service) BeginPermitVibrationSession(aruid uint64) {
	s.permit.Begin(aruid)
}

// EndPermitVibrationSession releases the permit bracket.
func (s *Service) EndPermitVibrationSession() {
	s.permit.End()
}

// CreateActiveVibrationDeviceList creates a fresh device list owned by the
// caller and returns its id.
func (s *Service) CreateActiveVibrationDeviceList() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextList++
	id := s.nextList
	s.lists[id] = vibration.NewDeviceList(s.res)
	return id
}

// ReleaseActiveVibrationDeviceList drops a device list once its owner is
// done with it. The activations it performed stay in effect.
func (s *Service) ReleaseActiveVibrationDeviceList(listID uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lists[listID]; !ok {
		return ErrUnknownDeviceList
	}
	delete(s.lists, listID)
	return nil
}

// ActivateVibrationDevice registers a handle on a previously created list.
func (s *Service) ActivateVibrationDevice(listID uint32, h hid.VibrationDeviceHandle) error {
	s.mu.Lock()
	l, ok := s.lists[listID]
	s.mu.Unlock()
	if !ok {
		return ErrUnknownDeviceList
	}
	return l.Activate(h)
}

// --- sixaxis ---

// StartSixAxisSensor begins sampling: the config flips to started and the
// emulated sensor is switched on.
func (s *Service) StartSixAxisSensor(aruid uint64, h hid.SixAxisSensorHandle) error {
	if err := s.sixaxis.Start(h); err != nil {
		return err
	}
	if sensor := s.res.GetSixAxisSensor(h); sensor != nil {
		sensor.SetEnabled(true)
	}
	return nil
}

// StopSixAxisSensor stops sampling, keeping the configuration.
func (s *Service) StopSixAxisSensor(aruid uint64, h hid.SixAxisSensorHandle) error {
	if err := s.sixaxis.Stop(h); err != nil {
		return err
	}
	if sensor := s.res.GetSixAxisSensor(h); sensor != nil {
		sensor.SetEnabled(false)
	}
	return nil
}

func (s *Service) IsSixAxisSensorFusionEnabled(aruid uint64, h hid.SixAxisSensorHandle) (bool, error) {
	return s.sixaxis.IsFusionEnabled(h)
}

func (s *Service) EnableSixAxisSensorFusion(aruid uint64, h hid.SixAxisSensorHandle, enabled bool) error {
	return s.sixaxis.SetFusionEnabled(h, enabled)
}

func (s *Service) SetSixAxisSensorFusionParameters(aruid uint64, h hid.SixAxisSensorHandle, p hid.SixAxisSensorFusionParameters) error {
	return s.sixaxis.SetFusionParameters(h, p)
}

func (s *Service) GetSixAxisSensorFusionParameters(aruid uint64, h hid.SixAxisSensorHandle) (hid.SixAxisSensorFusionParameters, error) {
	return s.sixaxis.FusionParameters(h)
}

func (s *Service) ResetSixAxisSensorFusionParameters(aruid uint64, h hid.SixAxisSensorHandle) error {
	return s.sixaxis.ResetFusionParameters(h)
}

func (s *Service) SetGyroscopeZeroDriftMode(aruid uint64, h hid.SixAxisSensorHandle, mode hid.GyroscopeZeroDriftMode) error {
	return s.sixaxis.SetGyroscopeZeroDriftMode(h, mode)
}

func (s *Service) GetGyroscopeZeroDriftMode(aruid uint64, h hid.SixAxisSensorHandle) (hid.GyroscopeZeroDriftMode, error) {
	return s.sixaxis.GyroscopeZeroDriftMode(h)
}

func (s *Service) ResetGyroscopeZeroDriftMode(aruid uint64, h hid.SixAxisSensorHandle) error {
	return s.sixaxis.ResetGyroscopeZeroDriftMode(h)
}

func (s *Service) IsSixAxisSensorAtRest(aruid uint64, h hid.SixAxisSensorHandle) (bool, error) {
	return s.sixaxis.IsAtRest(h)
}

func (s *Service) EnableSixAxisSensorUnalteredPassthrough(aruid uint64, h hid.SixAxisSensorHandle, enabled bool) error {
	return s.sixaxis.SetUnalteredPassthrough(h, enabled)
}

func (s *Service) IsSixAxisSensorUnalteredPassthroughEnabled(aruid uint64, h hid.SixAxisSensorHandle) (bool, error) {
	return s.sixaxis.IsUnalteredPassthrough(h)
}

func (s *Service) LoadSixAxisSensorCalibrationParameter(aruid uint64, h hid.SixAxisSensorHandle) (hid.SixAxisSensorCalibrationParameter, error) {
	return s.sixaxis.LoadCalibrationParameter(h)
}

func (s *Service) GetSixAxisSensorIcInformation(aruid uint64, h hid.SixAxisSensorHandle) (hid.SixAxisSensorIcInformation, error) {
	return s.sixaxis.IcInformation(h)
}

func (s *Service) ResetIsSixAxisSensorDeviceNewlyAssigned(aruid uint64, h hid.SixAxisSensorHandle) error {
	return s.sixaxis.ResetIsNewlyAssigned(h)
}

// --- console sixaxis ---

// ActivateConsoleSixAxisSensor powers the console-internal sensor and
// attaches the session to it.
func (s *Service) ActivateConsoleSixAxisSensor(aruid uint64) error {
	c := s.res.GetConsoleSixAxis()
	if err := c.Activate(); err != nil {
		return err
	}
	return c.ActivateAruid(aruid)
}

// StartConsoleSixAxisSensor is a stubbed success.
func (s *Service) StartConsoleSixAxisSensor(aruid uint64, h hid.ConsoleSixAxisSensorHandle) error {
	return nil
}

// StopConsoleSixAxisSensor is a stubbed success.
func (s *Service) StopConsoleSixAxisSensor(aruid uint64, h hid.ConsoleSixAxisSensorHandle) error {
	return nil
}
