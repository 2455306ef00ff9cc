// Package hid defines the value types shared by every layer of hidmux:
// device handles, npad ids, style sets and vibration values, together with
// the validation rules that gate access to them.
package hid

// NpadStyleIndex identifies the controller type a device handle refers to.
// Values match the console firmware enumeration.
type NpadStyleIndex uint8

const (
	StyleIndexNone          NpadStyleIndex = 0
	StyleIndexProController NpadStyleIndex = 3
	StyleIndexHandheld      NpadStyleIndex = 4
	StyleIndexJoyconDual    NpadStyleIndex = 5
	StyleIndexJoyconLeft    NpadStyleIndex = 6
	StyleIndexJoyconRight   NpadStyleIndex = 7
	StyleIndexGameCube      NpadStyleIndex = 8
	StyleIndexPokeball      NpadStyleIndex = 9
	StyleIndexNES           NpadStyleIndex = 10
	StyleIndexSNES          NpadStyleIndex = 12
	StyleIndexN64           NpadStyleIndex = 13
	StyleIndexSegaGenesis   NpadStyleIndex = 14
)

// NpadIdType is the logical controller slot a handle or operation addresses.
type NpadIdType uint32

const (
	NpadIdPlayer1  NpadIdType = 0
	NpadIdPlayer2  NpadIdType = 1
	NpadIdPlayer3  NpadIdType = 2
	NpadIdPlayer4  NpadIdType = 3
	NpadIdPlayer5  NpadIdType = 4
	NpadIdPlayer6  NpadIdType = 5
	NpadIdPlayer7  NpadIdType = 6
	NpadIdPlayer8  NpadIdType = 7
	NpadIdOther    NpadIdType = 0x10
	NpadIdHandheld NpadIdType = 0x20
	NpadIdInvalid  NpadIdType = 0xFF
)

// DeviceIndex selects one sub-device of a controller. Dual joy-con pairs
// expose two (left and right), every other controller type exposes one.
type DeviceIndex uint8

const (
	DeviceIndexLeft  DeviceIndex = 0
	DeviceIndexRight DeviceIndex = 1
)

// VibrationDeviceHandle addresses one vibration actuator. Compared by value.
type VibrationDeviceHandle struct {
	Type        NpadStyleIndex `json:"type"`
	NpadId      NpadIdType     `json:"npadId"`
	DeviceIndex DeviceIndex    `json:"deviceIndex"`
}

// SixAxisSensorHandle addresses one motion sensor on a controller.
type SixAxisSensorHandle struct {
	Type        NpadStyleIndex `json:"type"`
	NpadId      NpadIdType     `json:"npadId"`
	DeviceIndex DeviceIndex    `json:"deviceIndex"`
}

// ConsoleSixAxisSensorHandle addresses the console-internal motion sensor.
type ConsoleSixAxisSensorHandle struct {
	Unknown1 uint8 `json:"unknown1"`
	Unknown2 uint8 `json:"unknown2"`
}

// NpadIds lists every addressable logical controller slot in firmware order.
var NpadIds = []NpadIdType{
	NpadIdPlayer1, NpadIdPlayer2, NpadIdPlayer3, NpadIdPlayer4,
	NpadIdPlayer5, NpadIdPlayer6, NpadIdPlayer7, NpadIdPlayer8,
	NpadIdOther, NpadIdHandheld,
}
