package hid

// NpadStyleSet is the bitmask of controller styles a session accepts.
type NpadStyleSet uint32

const (
	StyleSetFullKey      NpadStyleSet = 1 << 0
	StyleSetHandheld     NpadStyleSet = 1 << 1
	StyleSetJoyDual      NpadStyleSet = 1 << 2
	StyleSetJoyLeft      NpadStyleSet = 1 << 3
	StyleSetJoyRight     NpadStyleSet = 1 << 4
	StyleSetGc           NpadStyleSet = 1 << 5
	StyleSetPalma        NpadStyleSet = 1 << 6
	StyleSetLark         NpadStyleSet = 1 << 7
	StyleSetHandheldLark NpadStyleSet = 1 << 8
	StyleSetLucia        NpadStyleSet = 1 << 9
	StyleSetLagon        NpadStyleSet = 1 << 10
	StyleSetLager        NpadStyleSet = 1 << 11
)

// NpadRevision gates which newer npad behaviors are honored for a session.
type NpadRevision uint32

const (
	Revision0 NpadRevision = iota
	Revision1
	Revision2
	Revision3
)

// NpadJoyAssignmentMode selects whether a logical npad is backed by one or
// both halves of a joy-con pair.
type NpadJoyAssignmentMode uint32

const (
	AssignmentModeDual NpadJoyAssignmentMode = iota
	AssignmentModeSingle
)

// NpadJoyDeviceType picks the physical half bound in single assignment mode.
type NpadJoyDeviceType uint32

const (
	JoyDeviceLeft NpadJoyDeviceType = iota
	JoyDeviceRight
)

// NpadJoyHoldType is the orientation a single joy-con is held in.
type NpadJoyHoldType uint64

const (
	HoldTypeVertical NpadJoyHoldType = iota
	HoldTypeHorizontal
)

// NpadHandheldActivationMode controls when the handheld npad activates.
type NpadHandheldActivationMode uint64

const (
	HandheldActivationDual NpadHandheldActivationMode = iota
	HandheldActivationSingle
	HandheldActivationNone
	handheldActivationMax
)

// Valid reports whether the mode is one of the enumerated activation modes.
func (m NpadHandheldActivationMode) Valid() bool {
	return m < handheldActivationMax
}

// GyroscopeZeroDriftMode is the gyro drift compensation aggressiveness.
type GyroscopeZeroDriftMode uint32

const (
	DriftModeLoose GyroscopeZeroDriftMode = iota
	DriftModeStandard
	DriftModeTight
	DriftModePrecise
)

// NpadButton is the button bitfield used for capture button remapping.
type NpadButton uint64

// VibrationValue is one amplitude/frequency pair per resonant actuator band.
type VibrationValue struct {
	AmplitudeLow  float32 `json:"amplitudeLow"`
	FrequencyLow  float32 `json:"frequencyLow"`
	AmplitudeHigh float32 `json:"amplitudeHigh"`
	FrequencyHigh float32 `json:"frequencyHigh"`
}

// DefaultVibrationValue is the neutral "no vibration" value substituted when
// a session without vibration rights reads back actuator state.
var DefaultVibrationValue = VibrationValue{
	AmplitudeLow:  0.0,
	FrequencyLow:  160.0,
	AmplitudeHigh: 0.0,
	FrequencyHigh: 320.0,
}

// VibrationGcErmCommand drives the GameCube eccentric rotating mass motor.
type VibrationGcErmCommand uint64

const (
	GcErmStop VibrationGcErmCommand = iota
	GcErmStart
	GcErmStopHard
)

// VibrationDeviceType classifies the physical actuator behind a handle.
type VibrationDeviceType uint32

const (
	VibrationDeviceUnknown VibrationDeviceType = iota
	VibrationDeviceLinearResonantActuator
	VibrationDeviceGcErm
	VibrationDeviceErm
)

// VibrationDevicePosition locates the actuator on the controller body.
type VibrationDevicePosition uint32

const (
	VibrationPositionNone VibrationDevicePosition = iota
	VibrationPositionLeft
	VibrationPositionRight
)

// VibrationDeviceInfo describes the actuator type and position for a handle.
type VibrationDeviceInfo struct {
	DeviceType VibrationDeviceType     `json:"deviceType"`
	Position   VibrationDevicePosition `json:"position"`
}

// SixAxisSensorFusionParameters are the two sensor fusion coefficients.
type SixAxisSensorFusionParameters struct {
	Parameter1 float32 `json:"parameter1"`
	Parameter2 float32 `json:"parameter2"`
}

// DefaultSixAxisFusionParameters matches what the hardware reports after a
// fusion parameter reset.
var DefaultSixAxisFusionParameters = SixAxisSensorFusionParameters{
	Parameter1: 0.03,
	Parameter2: 0.4,
}

// SixAxisSensorCalibrationParameter is an opaque factory calibration blob.
type SixAxisSensorCalibrationParameter struct {
	Data [0x40]byte `json:"-"`
}

// SixAxisSensorIcInformation reports the sensor IC's speed ranges.
type SixAxisSensorIcInformation struct {
	AccelerometerRange float32 `json:"accelerometerRange"`
	GyroscopeRange     float32 `json:"gyroscopeRange"`
}

// LedPattern is the player indicator LED bitfield for an npad id.
type LedPattern uint64

// LedPatternForNpadId returns the player LED arrangement assigned to a slot.
// Slots without a defined pattern (handheld, other) light nothing.
func LedPatternForNpadId(id NpadIdType) LedPattern {
	switch id {
	case NpadIdPlayer1:
		return 0b0001
	case NpadIdPlayer2:
		return 0b0011
	case NpadIdPlayer3:
		return 0b0111
	case NpadIdPlayer4:
		return 0b1111
	case NpadIdPlayer5:
		return 0b1001
	case NpadIdPlayer6:
		return 0b0101
	case NpadIdPlayer7:
		return 0b1101
	case NpadIdPlayer8:
		return 0b0110
	default:
		return 0
	}
}
