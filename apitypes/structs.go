package apitypes

import (
	"fmt"

	"github.com/holaimscott/hidmux/hid"
)

// ApiError represents an RFC 7807 (problem+json) error response.
type ApiError struct {
	// Status is the HTTP-style status code (e.g., 400, 404, 500)
	Status int `json:"status"`
	// Title is a short, human-readable summary of the problem type
	Title string `json:"title"`
	// Detail is a human-readable explanation specific to this occurrence
	Detail string `json:"detail"`
}

func (e ApiError) Error() string {
	if e.Status == 0 && e.Title == "" {
		return "unknown error"
	}
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Title, e.Detail)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Title, e.Detail)
}

// --

type PingResponse struct {
	Server  string `json:"server"`
	Version string `json:"version"`
}

type AppletCreateRequest struct {
	Aruid uint64 `json:"aruid"`
}

// --- npad ---

type NpadActivateRequest struct {
	Aruid    uint64            `json:"aruid"`
	Revision *hid.NpadRevision `json:"revision,omitempty"`
}

type NpadStyleSetRequest struct {
	Aruid    uint64           `json:"aruid"`
	StyleSet hid.NpadStyleSet `json:"styleSet"`
}

type NpadStyleSetResponse struct {
	StyleSet hid.NpadStyleSet `json:"styleSet"`
}

type NpadSupportedIdsRequest struct {
	Aruid   uint64           `json:"aruid"`
	NpadIds []hid.NpadIdType `json:"npadIds"`
}

type NpadIdRequest struct {
	Aruid  uint64         `json:"aruid"`
	NpadId hid.NpadIdType `json:"npadId"`
}

type NpadJoyHoldTypeRequest struct {
	Aruid    uint64              `json:"aruid"`
	HoldType hid.NpadJoyHoldType `json:"holdType"`
}

type NpadJoyHoldTypeResponse struct {
	HoldType hid.NpadJoyHoldType `json:"holdType"`
}

type NpadAssignmentRequest struct {
	Aruid      uint64                `json:"aruid"`
	NpadId     hid.NpadIdType        `json:"npadId"`
	DeviceType hid.NpadJoyDeviceType `json:"deviceType"`
}

type NpadAssignmentDestinationResponse struct {
	Reassigned bool           `json:"reassigned"`
	NewNpadId  hid.NpadIdType `json:"newNpadId"`
}

type NpadPairRequest struct {
	Aruid   uint64         `json:"aruid"`
	NpadId1 hid.NpadIdType `json:"npadId1"`
	NpadId2 hid.NpadIdType `json:"npadId2"`
}

type NpadHandheldActivationRequest struct {
	Aruid uint64                         `json:"aruid"`
	Mode  hid.NpadHandheldActivationMode `json:"mode"`
}

type NpadHandheldActivationResponse struct {
	Mode hid.NpadHandheldActivationMode `json:"mode"`
}

type NpadHomeProtectionRequest struct {
	Aruid   uint64         `json:"aruid"`
	NpadId  hid.NpadIdType `json:"npadId"`
	Enabled bool           `json:"enabled"`
}

type NpadHomeProtectionResponse struct {
	Enabled bool `json:"enabled"`
}

type NpadAnalogStickClampRequest struct {
	Aruid          uint64 `json:"aruid"`
	UseCenterClamp bool   `json:"useCenterClamp"`
}

type NpadCaptureButtonRequest struct {
	Aruid    uint64           `json:"aruid"`
	StyleSet hid.NpadStyleSet `json:"styleSet"`
	Button   hid.NpadButton   `json:"button"`
}

type NpadLedPatternRequest struct {
	NpadId hid.NpadIdType `json:"npadId"`
}

type NpadLedPatternResponse struct {
	Pattern hid.LedPattern `json:"pattern"`
}

// --- vibration ---

type VibrationDeviceInfoRequest struct {
	Handle hid.VibrationDeviceHandle `json:"handle"`
}

type VibrationSendRequest struct {
	Aruid  uint64                    `json:"aruid"`
	Handle hid.VibrationDeviceHandle `json:"handle"`
	Value  hid.VibrationValue        `json:"value"`
}

type VibrationSendBatchRequest struct {
	Aruid   uint64                      `json:"aruid"`
	Handles []hid.VibrationDeviceHandle `json:"handles"`
	Values  []hid.VibrationValue        `json:"values"`
}

type VibrationHandleRequest struct {
	Aruid  uint64                    `json:"aruid"`
	Handle hid.VibrationDeviceHandle `json:"handle"`
}

type VibrationValueResponse struct {
	Value hid.VibrationValue `json:"value"`
}

type VibrationGcErmRequest struct {
	Aruid   uint64                    `json:"aruid"`
	Handle  hid.VibrationDeviceHandle `json:"handle"`
	Command hid.VibrationGcErmCommand `json:"command"`
}

type VibrationGcErmResponse struct {
	Command hid.VibrationGcErmCommand `json:"command"`
}

type VibrationN64Request struct {
	Aruid       uint64                    `json:"aruid"`
	Handle      hid.VibrationDeviceHandle `json:"handle"`
	IsVibrating bool                      `json:"isVibrating"`
}

type VibrationMountedResponse struct {
	Mounted bool `json:"mounted"`
}

type VibrationPermitRequest struct {
	CanVibrate bool `json:"canVibrate"`
}

type VibrationPermittedResponse struct {
	Permitted bool `json:"permitted"`
}

type VibrationSessionRequest struct {
	Aruid uint64 `json:"aruid"`
}

type VibrationDeviceListCreateResponse struct {
	ListId uint32 `json:"listId"`
}

type VibrationDeviceListActivateRequest struct {
	ListId uint32                    `json:"listId"`
	Handle hid.VibrationDeviceHandle `json:"handle"`
}

type VibrationDeviceListReleaseRequest struct {
	ListId uint32 `json:"listId"`
}

// VibrationStreamEvent is one JSON line pushed on a vibration stream.
type VibrationStreamEvent struct {
	Aruid  uint64                    `json:"aruid"`
	Handle hid.VibrationDeviceHandle `json:"handle"`
	Value  hid.VibrationValue        `json:"value"`
}

// --- sixaxis ---

type SixAxisHandleRequest struct {
	Aruid  uint64                  `json:"aruid"`
	Handle hid.SixAxisSensorHandle `json:"handle"`
}

type SixAxisEnableRequest struct {
	Aruid   uint64                  `json:"aruid"`
	Handle  hid.SixAxisSensorHandle `json:"handle"`
	Enabled bool                    `json:"enabled"`
}

type SixAxisBoolResponse struct {
	Enabled bool `json:"enabled"`
}

type SixAxisAtRestResponse struct {
	AtRest bool `json:"atRest"`
}

type SixAxisFusionParametersRequest struct {
	Aruid      uint64                  `json:"aruid"`
	Handle     hid.SixAxisSensorHandle `json:"handle"`
	Parameter1 float32                 `json:"parameter1"`
	Parameter2 float32                 `json:"parameter2"`
}

type SixAxisFusionParametersResponse struct {
	Parameter1 float32 `json:"parameter1"`
	Parameter2 float32 `json:"parameter2"`
}

type SixAxisDriftModeRequest struct {
	Aruid  uint64                     `json:"aruid"`
	Handle hid.SixAxisSensorHandle    `json:"handle"`
	Mode   hid.GyroscopeZeroDriftMode `json:"mode"`
}

type SixAxisDriftModeResponse struct {
	Mode hid.GyroscopeZeroDriftMode `json:"mode"`
}

type SixAxisCalibrationResponse struct {
	Data []byte `json:"data"`
}

type SixAxisIcInformationResponse struct {
	AccelerometerRange float32 `json:"accelerometerRange"`
	GyroscopeRange     float32 `json:"gyroscopeRange"`
}

type ConsoleSixAxisRequest struct {
	Aruid  uint64                          `json:"aruid"`
	Handle *hid.ConsoleSixAxisSensorHandle `json:"handle,omitempty"`
}
