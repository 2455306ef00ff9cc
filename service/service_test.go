package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holaimscott/hidmux/hid"
	"github.com/holaimscott/hidmux/service"
)

func proHandle() hid.VibrationDeviceHandle {
	return hid.VibrationDeviceHandle{Type: hid.StyleIndexProController, NpadId: hid.NpadIdPlayer1}
}

func TestSendVibrationValuesSizeMismatch(t *testing.T) {
	s := service.New(nil)
	require.NoError(t, s.CreateAppletResource(1))

	handles := []hid.VibrationDeviceHandle{proHandle(), proHandle(), proHandle()}
	values := []hid.VibrationValue{{}, {}}

	err := s.SendVibrationValues(1, handles, values)
	assert.ErrorIs(t, err, hid.ErrArraySizeMismatch)

	// Nothing was applied: the actuator still reads the neutral default.
	assert.Equal(t, hid.DefaultVibrationValue, s.GetActualVibrationValue(1, proHandle()))
}

func TestSendVibrationValuesAbortsOnFirstFailure(t *testing.T) {
	s := service.New(nil)
	require.NoError(t, s.CreateAppletResource(1))

	good := proHandle()
	bad := hid.VibrationDeviceHandle{Type: hid.StyleIndexPokeball, NpadId: hid.NpadIdPlayer1}
	after := hid.VibrationDeviceHandle{Type: hid.StyleIndexProController, NpadId: hid.NpadIdPlayer2}
	v := hid.VibrationValue{AmplitudeLow: 0.7, FrequencyLow: 160, FrequencyHigh: 320}

	err := s.SendVibrationValues(1, []hid.VibrationDeviceHandle{good, bad, after}, []hid.VibrationValue{v, v, v})
	assert.ErrorIs(t, err, hid.ErrInvalidHandle)

	// Applied elements stay applied; elements after the failure do not run.
	dev := s.Resources().GetVibrationDevice(good)
	require.NoError(t, dev.Activate())
	got, err := dev.ActualVibrationValue()
	require.NoError(t, err)
	assert.Equal(t, v, got)

	assert.Equal(t, hid.DefaultVibrationValue, s.GetActualVibrationValue(1, after))
}

func TestGetActualVibrationValueReadIsSafe(t *testing.T) {
	s := service.New(nil)

	// No session at all: reads still succeed with the neutral default.
	assert.Equal(t, hid.DefaultVibrationValue, s.GetActualVibrationValue(99, proHandle()))

	// Bad handle with an active session: same substitution, no error.
	require.NoError(t, s.CreateAppletResource(1))
	bad := hid.VibrationDeviceHandle{Type: hid.StyleIndexPokeball, NpadId: hid.NpadIdPlayer1}
	assert.Equal(t, hid.DefaultVibrationValue, s.GetActualVibrationValue(1, bad))
}

func TestGcErmRoundTrip(t *testing.T) {
	s := service.New(nil)
	gc := hid.VibrationDeviceHandle{Type: hid.StyleIndexGameCube, NpadId: hid.NpadIdPlayer1}

	// Gated before a session exists.
	err := s.SendVibrationGcErmCommand(5, gc, hid.GcErmStart)
	assert.ErrorIs(t, err, hid.ErrVibrationNotPermitted)
	assert.Equal(t, hid.GcErmStop, s.GetActualVibrationGcErmCommand(5, gc))

	require.NoError(t, s.CreateAppletResource(5))
	require.NoError(t, s.Resources().GetGcVibrationDevice(gc).Activate())
	require.NoError(t, s.SendVibrationGcErmCommand(5, gc, hid.GcErmStart))
	assert.Equal(t, hid.GcErmStart, s.GetActualVibrationGcErmCommand(5, gc))

	// A non-GameCube handle never resolves to an ERM motor.
	err = s.SendVibrationGcErmCommand(5, proHandle(), hid.GcErmStart)
	assert.ErrorIs(t, err, hid.ErrDeviceNotFound)
}

func TestN64Send(t *testing.T) {
	s := service.New(nil)
	require.NoError(t, s.CreateAppletResource(2))
	n64 := hid.VibrationDeviceHandle{Type: hid.StyleIndexN64, NpadId: hid.NpadIdPlayer1}

	require.NoError(t, s.SendVibrationValueInBool(2, n64, true))
	assert.True(t, s.Resources().GetN64VibrationDevice(n64).IsVibrating())

	err := s.SendVibrationValueInBool(2, proHandle(), true)
	assert.ErrorIs(t, err, hid.ErrDeviceNotFound)
}

func TestVibrationDeviceInfo(t *testing.T) {
	s := service.New(nil)

	info, err := s.GetVibrationDeviceInfo(hid.VibrationDeviceHandle{
		Type: hid.StyleIndexJoyconDual, NpadId: hid.NpadIdPlayer1, DeviceIndex: hid.DeviceIndexRight,
	})
	require.NoError(t, err)
	assert.Equal(t, hid.VibrationDeviceLinearResonantActuator, info.DeviceType)
	assert.Equal(t, hid.VibrationPositionRight, info.Position)

	info, err = s.GetVibrationDeviceInfo(hid.VibrationDeviceHandle{Type: hid.StyleIndexGameCube, NpadId: hid.NpadIdPlayer1})
	require.NoError(t, err)
	assert.Equal(t, hid.VibrationDeviceGcErm, info.DeviceType)

	_, err = s.GetVibrationDeviceInfo(hid.VibrationDeviceHandle{Type: hid.StyleIndexPokeball, NpadId: hid.NpadIdPlayer1})
	assert.ErrorIs(t, err, hid.ErrInvalidHandle)
}

func TestIsVibrationDeviceMounted(t *testing.T) {
	s := service.New(nil)

	mounted, err := s.IsVibrationDeviceMounted(1, proHandle())
	require.NoError(t, err)
	assert.True(t, mounted)

	_, err = s.IsVibrationDeviceMounted(1, hid.VibrationDeviceHandle{Type: hid.StyleIndexNES, NpadId: hid.NpadIdPlayer1})
	assert.ErrorIs(t, err, hid.ErrInvalidHandle)
}

func TestPermitVibration(t *testing.T) {
	s := service.New(nil)
	assert.True(t, s.IsVibrationPermitted())

	s.PermitVibration(false)
	assert.False(t, s.IsVibrationPermitted())

	s.BeginPermitVibrationSession(3)
	s.PermitVibration(true)
	assert.True(t, s.IsVibrationPermitted())
	s.EndPermitVibrationSession()
}

func TestDeviceListLifecycle(t *testing.T) {
	s := service.New(nil)

	id1 := s.CreateActiveVibrationDeviceList()
	id2 := s.CreateActiveVibrationDeviceList()
	assert.NotEqual(t, id1, id2, "each call creates an independently owned list")

	require.NoError(t, s.ActivateVibrationDevice(id1, proHandle()))
	require.NoError(t, s.ActivateVibrationDevice(id1, proHandle()))

	err := s.ActivateVibrationDevice(777, proHandle())
	assert.ErrorIs(t, err, service.ErrUnknownDeviceList)

	// Releasing a list invalidates its id but not its activations.
	require.NoError(t, s.ReleaseActiveVibrationDeviceList(id1))
	assert.ErrorIs(t, s.ActivateVibrationDevice(id1, proHandle()), service.ErrUnknownDeviceList)
	assert.ErrorIs(t, s.ReleaseActiveVibrationDeviceList(id1), service.ErrUnknownDeviceList)
	require.NoError(t, s.ActivateVibrationDevice(id2, proHandle()))
}

func TestSixAxisStartStopDrivesSensor(t *testing.T) {
	s := service.New(nil)
	h := hid.SixAxisSensorHandle{Type: hid.StyleIndexProController, NpadId: hid.NpadIdPlayer1}

	// A sensor that was never started reads as at rest.
	atRest, err := s.IsSixAxisSensorAtRest(1, h)
	require.NoError(t, err)
	assert.True(t, atRest)

	require.NoError(t, s.StartSixAxisSensor(1, h))
	s.Resources().GetSixAxisSensor(h).SetAtRest(false)
	atRest, err = s.IsSixAxisSensorAtRest(1, h)
	require.NoError(t, err)
	assert.False(t, atRest)

	// Stopping the sensor makes it read as at rest again.
	require.NoError(t, s.StopSixAxisSensor(1, h))
	atRest, err = s.IsSixAxisSensorAtRest(1, h)
	require.NoError(t, err)
	assert.True(t, atRest)
}

func TestResetFusionThroughService(t *testing.T) {
	s := service.New(nil)
	h := hid.SixAxisSensorHandle{Type: hid.StyleIndexJoyconLeft, NpadId: hid.NpadIdPlayer2}

	require.NoError(t, s.SetSixAxisSensorFusionParameters(1, h, hid.SixAxisSensorFusionParameters{Parameter1: 1, Parameter2: 1}))
	require.NoError(t, s.EnableSixAxisSensorFusion(1, h, false))
	require.NoError(t, s.ResetSixAxisSensorFusionParameters(1, h))

	params, err := s.GetSixAxisSensorFusionParameters(1, h)
	require.NoError(t, err)
	assert.Equal(t, hid.DefaultSixAxisFusionParameters, params)
	enabled, err := s.IsSixAxisSensorFusionEnabled(1, h)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestConsoleSixAxis(t *testing.T) {
	s := service.New(nil)
	require.NoError(t, s.ActivateConsoleSixAxisSensor(4))
	require.NoError(t, s.StartConsoleSixAxisSensor(4, hid.ConsoleSixAxisSensorHandle{}))
	require.NoError(t, s.StopConsoleSixAxisSensor(4, hid.ConsoleSixAxisSensorHandle{}))
}

func TestOpcodeTableCoversRoutes(t *testing.T) {
	// Every opcode resolves to a non-empty, unique path.
	seen := make(map[string]service.Opcode)
	for op, path := range service.Routes {
		require.NotEmpty(t, path, "opcode %d", op)
		prev, dup := seen[path]
		require.False(t, dup, "path %q mapped by both %d and %d", path, prev, op)
		seen[path] = op
	}
	assert.Equal(t, "vibration/send", service.Routes[service.OpSendVibrationValue])
	assert.Equal(t, "npad/assignment/merge", service.Routes[service.OpMergeSingleJoyAsDualJoy])
}
