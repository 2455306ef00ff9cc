package hid

// IsNpadIdValid reports whether id addresses one of the fixed logical slots.
func IsNpadIdValid(id NpadIdType) bool {
	switch id {
	case NpadIdPlayer1, NpadIdPlayer2, NpadIdPlayer3, NpadIdPlayer4,
		NpadIdPlayer5, NpadIdPlayer6, NpadIdPlayer7, NpadIdPlayer8,
		NpadIdOther, NpadIdHandheld:
		return true
	default:
		return false
	}
}

// ValidateNpadId returns ErrInvalidNpadId for ids outside the fixed slots.
func ValidateNpadId(id NpadIdType) error {
	if !IsNpadIdValid(id) {
		return ErrInvalidNpadId
	}
	return nil
}

// deviceCount is the number of vibration/sixaxis sub-devices a controller
// type exposes. Dual joy-con pairs carry two, everything else one.
func deviceCount(t NpadStyleIndex) int {
	switch t {
	case StyleIndexJoyconDual:
		return 2
	case StyleIndexProController, StyleIndexHandheld, StyleIndexJoyconLeft,
		StyleIndexJoyconRight, StyleIndexGameCube, StyleIndexN64:
		return 1
	default:
		return 0
	}
}

// ValidateVibrationHandle checks a vibration handle against the physical
// topology. It must be called before any state mutation keyed by the handle.
func ValidateVibrationHandle(h VibrationDeviceHandle) error {
	if deviceCount(h.Type) == 0 {
		return ErrInvalidHandle
	}
	if !IsNpadIdValid(h.NpadId) {
		return ErrInvalidHandle
	}
	if int(h.DeviceIndex) >= deviceCount(h.Type) {
		return ErrInvalidHandle
	}
	return nil
}

// ValidateSixAxisHandle checks a motion sensor handle against the topology.
// Same shape as vibration handles; the families stay distinct types so a
// sensor handle can never be passed where an actuator handle is expected.
func ValidateSixAxisHandle(h SixAxisSensorHandle) error {
	if deviceCount(h.Type) == 0 {
		return ErrInvalidHandle
	}
	if !IsNpadIdValid(h.NpadId) {
		return ErrInvalidHandle
	}
	if int(h.DeviceIndex) >= deviceCount(h.Type) {
		return ErrInvalidHandle
	}
	return nil
}

// VibrationDeviceInfoFor derives the actuator class and position for a
// validated vibration handle.
func VibrationDeviceInfoFor(h VibrationDeviceHandle) VibrationDeviceInfo {
	info := VibrationDeviceInfo{}
	switch h.Type {
	case StyleIndexGameCube:
		info.DeviceType = VibrationDeviceGcErm
	case StyleIndexN64:
		info.DeviceType = VibrationDeviceErm
	default:
		info.DeviceType = VibrationDeviceLinearResonantActuator
	}
	if info.DeviceType == VibrationDeviceLinearResonantActuator {
		if h.DeviceIndex == DeviceIndexRight {
			info.Position = VibrationPositionRight
		} else {
			info.Position = VibrationPositionLeft
		}
	}
	return info
}
