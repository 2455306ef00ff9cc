package hid

import "errors"

// Arbitration error taxonomy. Validation errors are always produced before
// any state mutation; the API layer maps them onto wire error responses.
var (
	// ErrInvalidHandle reports a device handle outside the physical topology.
	ErrInvalidHandle = errors.New("invalid device handle")

	// ErrInvalidNpadId reports an npad id that is not an addressable slot.
	ErrInvalidNpadId = errors.New("invalid npad id")

	// ErrDeviceIndexOutOfRange reports a full active vibration device list.
	ErrDeviceIndexOutOfRange = errors.New("vibration device index out of range")

	// ErrArraySizeMismatch reports a batched vibration call whose handle and
	// value sequences differ in length.
	ErrArraySizeMismatch = errors.New("vibration handle and value counts differ")

	// ErrVibrationNotPermitted reports a vibration write from a session whose
	// ARUID is not the active vibration owner.
	ErrVibrationNotPermitted = errors.New("vibration not permitted")

	// ErrNpadNotSingleJoy reports a merge over an npad id that is not in
	// single assignment mode.
	ErrNpadNotSingleJoy = errors.New("npad is not in single assignment mode")

	// ErrNpadNotConnected reports an operation on an npad id with no
	// physical assignment.
	ErrNpadNotConnected = errors.New("npad is not connected")

	// ErrDeviceNotFound reports a handle that validates but resolves to no
	// emulated device.
	ErrDeviceNotFound = errors.New("device not found")
)
