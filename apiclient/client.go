package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apitypes "github.com/holaimscott/hidmux/apitypes"
	"github.com/holaimscott/hidmux/hid"
)

// Client provides a high-level interface to the hidmux API, handling request
// formatting, response parsing, and error handling.
type Client struct{ transport *Transport }

// New constructs a high-level API client using the internal low-level Transport.
// The addr parameter specifies the TCP address (host:port) of the hidmux API server.
func New(addr string) *Client { return &Client{transport: NewTransport(addr)} }

// NewWithPassword constructs a client that authenticates with the given password.
func NewWithPassword(addr, password string) *Client {
	return &Client{transport: NewTransportWithPassword(addr, password)}
}

// NewWithConfig constructs a client with custom transport timeouts.
func NewWithConfig(addr string, cfg *Config) *Client {
	return &Client{transport: NewTransportWithConfig(addr, cfg)}
}

// WithTransport constructs a Client using a custom Transport implementation.
// This is primarily useful for testing or when advanced transport configuration is needed.
func WithTransport(t *Transport) *Client { return &Client{transport: t} }

// Ping returns the version and identity of the hidmux server.
func (c *Client) Ping() (*apitypes.PingResponse, error) {
	return c.PingCtx(context.Background())
}

// PingCtx is the context-aware version of Ping.
func (c *Client) PingCtx(ctx context.Context) (*apitypes.PingResponse, error) {
	raw, err := c.transport.DoCtx(ctx, "ping", nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.PingResponse](raw)
}

// AppletCreate registers an applet resource for the given ARUID.
// Returns a conflict error if the ARUID is already registered.
func (c *Client) AppletCreate(aruid uint64) (*apitypes.AppletCreateRequest, error) {
	return c.AppletCreateCtx(context.Background(), aruid)
}

func (c *Client) AppletCreateCtx(ctx context.Context, aruid uint64) (*apitypes.AppletCreateRequest, error) {
	raw, err := c.transport.DoCtx(ctx, "applet/create", apitypes.AppletCreateRequest{Aruid: aruid}, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.AppletCreateRequest](raw)
}

// AppletFree releases the applet resource for the given ARUID.
func (c *Client) AppletFree(aruid uint64) error {
	return c.AppletFreeCtx(context.Background(), aruid)
}

func (c *Client) AppletFreeCtx(ctx context.Context, aruid uint64) error {
	return c.doEmpty(ctx, "applet/free", apitypes.AppletCreateRequest{Aruid: aruid})
}

// NpadActivate activates the NPAD subsystem for an applet session.
func (c *Client) NpadActivate(aruid uint64) error {
	return c.doEmpty(context.Background(), "npad/activate", apitypes.NpadActivateRequest{Aruid: aruid})
}

// NpadActivateWithRevision activates the NPAD subsystem pinned to a specific interface revision.
func (c *Client) NpadActivateWithRevision(aruid uint64, revision hid.NpadRevision) error {
	return c.doEmpty(context.Background(), "npad/activate-with-revision",
		apitypes.NpadActivateRequest{Aruid: aruid, Revision: &revision})
}

// NpadSetSupportedStyleSet declares which controller styles the applet accepts.
func (c *Client) NpadSetSupportedStyleSet(aruid uint64, styleSet hid.NpadStyleSet) error {
	return c.doEmpty(context.Background(), "npad/supported-style-set/set",
		apitypes.NpadStyleSetRequest{Aruid: aruid, StyleSet: styleSet})
}

// NpadGetSupportedStyleSet reads back the declared style set.
func (c *Client) NpadGetSupportedStyleSet(aruid uint64) (*apitypes.NpadStyleSetResponse, error) {
	raw, err := c.transport.Do("npad/supported-style-set/get", apitypes.NpadActivateRequest{Aruid: aruid}, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.NpadStyleSetResponse](raw)
}

// NpadSetSupportedIds declares which NPAD ids the applet accepts.
// All ids are validated before any of them are applied.
func (c *Client) NpadSetSupportedIds(aruid uint64, ids []hid.NpadIdType) error {
	return c.doEmpty(context.Background(), "npad/supported-ids/set",
		apitypes.NpadSupportedIdsRequest{Aruid: aruid, NpadIds: ids})
}

// NpadDisconnect disconnects the controller currently assigned to npadId.
func (c *Client) NpadDisconnect(aruid uint64, npadId hid.NpadIdType) error {
	return c.doEmpty(context.Background(), "npad/disconnect",
		apitypes.NpadIdRequest{Aruid: aruid, NpadId: npadId})
}

// NpadLedPattern returns the player LED pattern for an NPAD id.
func (c *Client) NpadLedPattern(npadId hid.NpadIdType) (*apitypes.NpadLedPatternResponse, error) {
	raw, err := c.transport.Do("npad/led-pattern", apitypes.NpadLedPatternRequest{NpadId: npadId}, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.NpadLedPatternResponse](raw)
}

// NpadSetJoyHoldType sets the joy-con hold orientation for the session.
func (c *Client) NpadSetJoyHoldType(aruid uint64, holdType hid.NpadJoyHoldType) error {
	return c.doEmpty(context.Background(), "npad/joy-hold-type/set",
		apitypes.NpadJoyHoldTypeRequest{Aruid: aruid, HoldType: holdType})
}

// NpadGetJoyHoldType reads back the joy-con hold orientation.
func (c *Client) NpadGetJoyHoldType(aruid uint64) (*apitypes.NpadJoyHoldTypeResponse, error) {
	raw, err := c.transport.Do("npad/joy-hold-type/get", apitypes.NpadActivateRequest{Aruid: aruid}, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.NpadJoyHoldTypeResponse](raw)
}

// NpadAssignSingle puts npadId into single joy-con mode for the given side.
func (c *Client) NpadAssignSingle(aruid uint64, npadId hid.NpadIdType, deviceType hid.NpadJoyDeviceType) error {
	return c.doEmpty(context.Background(), "npad/assignment/single",
		apitypes.NpadAssignmentRequest{Aruid: aruid, NpadId: npadId, DeviceType: deviceType})
}

// NpadAssignSingleWithDestination is like NpadAssignSingle but reports whether
// the detached half was reassigned, and to which NPAD id.
func (c *Client) NpadAssignSingleWithDestination(aruid uint64, npadId hid.NpadIdType, deviceType hid.NpadJoyDeviceType) (*apitypes.NpadAssignmentDestinationResponse, error) {
	raw, err := c.transport.Do("npad/assignment/single-destination",
		apitypes.NpadAssignmentRequest{Aruid: aruid, NpadId: npadId, DeviceType: deviceType}, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.NpadAssignmentDestinationResponse](raw)
}

// NpadAssignDual puts npadId into dual joy-con mode.
func (c *Client) NpadAssignDual(aruid uint64, npadId hid.NpadIdType) error {
	return c.doEmpty(context.Background(), "npad/assignment/dual",
		apitypes.NpadIdRequest{Aruid: aruid, NpadId: npadId})
}

// NpadMerge merges two single joy-cons into one dual pair on npadId1.
// Both ids must currently hold single joy-con assignments.
func (c *Client) NpadMerge(aruid uint64, npadId1, npadId2 hid.NpadIdType) error {
	return c.doEmpty(context.Background(), "npad/assignment/merge",
		apitypes.NpadPairRequest{Aruid: aruid, NpadId1: npadId1, NpadId2: npadId2})
}

// NpadSwap exchanges the assignments of two NPAD ids.
func (c *Client) NpadSwap(aruid uint64, npadId1, npadId2 hid.NpadIdType) error {
	return c.doEmpty(context.Background(), "npad/assignment/swap",
		apitypes.NpadPairRequest{Aruid: aruid, NpadId1: npadId1, NpadId2: npadId2})
}

// NpadSetHandheldActivationMode sets when the handheld NPAD activates.
func (c *Client) NpadSetHandheldActivationMode(aruid uint64, mode hid.NpadHandheldActivationMode) error {
	return c.doEmpty(context.Background(), "npad/handheld-activation-mode/set",
		apitypes.NpadHandheldActivationRequest{Aruid: aruid, Mode: mode})
}

// NpadSetHomeProtection toggles home button protection for an NPAD id.
func (c *Client) NpadSetHomeProtection(aruid uint64, npadId hid.NpadIdType, enabled bool) error {
	return c.doEmpty(context.Background(), "npad/home-protection/set",
		apitypes.NpadHomeProtectionRequest{Aruid: aruid, NpadId: npadId, Enabled: enabled})
}

// VibrationDeviceInfo resolves a vibration device handle to its device metadata.
func (c *Client) VibrationDeviceInfo(handle hid.VibrationDeviceHandle) (*hid.VibrationDeviceInfo, error) {
	raw, err := c.transport.Do("vibration/device-info", apitypes.VibrationDeviceInfoRequest{Handle: handle}, nil)
	if err != nil {
		return nil, err
	}
	return parse[hid.VibrationDeviceInfo](raw)
}

// VibrationSend pushes a vibration value to a device. Sends are fire-and-forget:
// the call succeeds even when the session or device cannot accept the value.
func (c *Client) VibrationSend(aruid uint64, handle hid.VibrationDeviceHandle, value hid.VibrationValue) error {
	return c.doEmpty(context.Background(), "vibration/send",
		apitypes.VibrationSendRequest{Aruid: aruid, Handle: handle, Value: value})
}

// VibrationSendBatch pushes vibration values to multiple devices. The handle
// and value slices must have equal length; delivery stops at the first failing
// handle without rolling back earlier sends.
func (c *Client) VibrationSendBatch(aruid uint64, handles []hid.VibrationDeviceHandle, values []hid.VibrationValue) error {
	return c.doEmpty(context.Background(), "vibration/send-batch",
		apitypes.VibrationSendBatchRequest{Aruid: aruid, Handles: handles, Values: values})
}

// VibrationActual reads the value a device is currently playing. Reads are
// always safe: an inactive session or unmounted device yields the default value.
func (c *Client) VibrationActual(aruid uint64, handle hid.VibrationDeviceHandle) (*apitypes.VibrationValueResponse, error) {
	raw, err := c.transport.Do("vibration/actual", apitypes.VibrationHandleRequest{Aruid: aruid, Handle: handle}, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.VibrationValueResponse](raw)
}

// VibrationMounted reports whether the vibration device behind handle is mounted.
func (c *Client) VibrationMounted(aruid uint64, handle hid.VibrationDeviceHandle) (*apitypes.VibrationMountedResponse, error) {
	raw, err := c.transport.Do("vibration/mounted", apitypes.VibrationHandleRequest{Aruid: aruid, Handle: handle}, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.VibrationMountedResponse](raw)
}

// VibrationPermit grants or revokes vibration permission globally.
func (c *Client) VibrationPermit(canVibrate bool) error {
	return c.doEmpty(context.Background(), "vibration/permit",
		apitypes.VibrationPermitRequest{CanVibrate: canVibrate})
}

// VibrationPermitted reports whether vibration is currently permitted.
func (c *Client) VibrationPermitted() (*apitypes.VibrationPermittedResponse, error) {
	raw, err := c.transport.Do("vibration/permitted", nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.VibrationPermittedResponse](raw)
}

// VibrationSessionBegin opens a permit session for the applet.
func (c *Client) VibrationSessionBegin(aruid uint64) error {
	return c.doEmpty(context.Background(), "vibration/session/begin",
		apitypes.VibrationSessionRequest{Aruid: aruid})
}

// VibrationSessionEnd closes the applet's permit session.
func (c *Client) VibrationSessionEnd(aruid uint64) error {
	return c.doEmpty(context.Background(), "vibration/session/end",
		apitypes.VibrationSessionRequest{Aruid: aruid})
}

// VibrationDeviceListCreate allocates a new active vibration device list.
func (c *Client) VibrationDeviceListCreate() (*apitypes.VibrationDeviceListCreateResponse, error) {
	raw, err := c.transport.Do("vibration/device-list/create", nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.VibrationDeviceListCreateResponse](raw)
}

// VibrationDeviceListActivate registers a handle on a device list.
// Activation is idempotent per handle.
func (c *Client) VibrationDeviceListActivate(listId uint32, handle hid.VibrationDeviceHandle) error {
	return c.doEmpty(context.Background(), "vibration/device-list/activate",
		apitypes.VibrationDeviceListActivateRequest{ListId: listId, Handle: handle})
}

// VibrationDeviceListRelease drops a device list. Devices activated through
// the list stay active.
func (c *Client) VibrationDeviceListRelease(listId uint32) error {
	return c.doEmpty(context.Background(), "vibration/device-list/release",
		apitypes.VibrationDeviceListReleaseRequest{ListId: listId})
}

// SixAxisStart starts sampling on a six-axis sensor.
func (c *Client) SixAxisStart(aruid uint64, handle hid.SixAxisSensorHandle) error {
	return c.doEmpty(context.Background(), "sixaxis/start",
		apitypes.SixAxisHandleRequest{Aruid: aruid, Handle: handle})
}

// SixAxisStop stops sampling on a six-axis sensor.
func (c *Client) SixAxisStop(aruid uint64, handle hid.SixAxisSensorHandle) error {
	return c.doEmpty(context.Background(), "sixaxis/stop",
		apitypes.SixAxisHandleRequest{Aruid: aruid, Handle: handle})
}

// SixAxisFusionEnable toggles sensor fusion for a six-axis sensor.
func (c *Client) SixAxisFusionEnable(aruid uint64, handle hid.SixAxisSensorHandle, enabled bool) error {
	return c.doEmpty(context.Background(), "sixaxis/fusion/enable",
		apitypes.SixAxisEnableRequest{Aruid: aruid, Handle: handle, Enabled: enabled})
}

// SixAxisFusionEnabled reports whether sensor fusion is enabled.
func (c *Client) SixAxisFusionEnabled(aruid uint64, handle hid.SixAxisSensorHandle) (*apitypes.SixAxisBoolResponse, error) {
	raw, err := c.transport.Do("sixaxis/fusion/enabled", apitypes.SixAxisHandleRequest{Aruid: aruid, Handle: handle}, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.SixAxisBoolResponse](raw)
}

// SixAxisSetFusionParameters sets the fusion tuning parameters.
func (c *Client) SixAxisSetFusionParameters(aruid uint64, handle hid.SixAxisSensorHandle, p1, p2 float32) error {
	return c.doEmpty(context.Background(), "sixaxis/fusion/parameters/set",
		apitypes.SixAxisFusionParametersRequest{Aruid: aruid, Handle: handle, Parameter1: p1, Parameter2: p2})
}

// SixAxisGetFusionParameters reads the fusion tuning parameters.
func (c *Client) SixAxisGetFusionParameters(aruid uint64, handle hid.SixAxisSensorHandle) (*apitypes.SixAxisFusionParametersResponse, error) {
	raw, err := c.transport.Do("sixaxis/fusion/parameters/get", apitypes.SixAxisHandleRequest{Aruid: aruid, Handle: handle}, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.SixAxisFusionParametersResponse](raw)
}

// SixAxisResetFusionParameters restores the default fusion state and parameters.
func (c *Client) SixAxisResetFusionParameters(aruid uint64, handle hid.SixAxisSensorHandle) error {
	return c.doEmpty(context.Background(), "sixaxis/fusion/parameters/reset",
		apitypes.SixAxisHandleRequest{Aruid: aruid, Handle: handle})
}

// SixAxisSetDriftMode sets the gyroscope zero drift compensation mode.
func (c *Client) SixAxisSetDriftMode(aruid uint64, handle hid.SixAxisSensorHandle, mode hid.GyroscopeZeroDriftMode) error {
	return c.doEmpty(context.Background(), "sixaxis/drift-mode/set",
		apitypes.SixAxisDriftModeRequest{Aruid: aruid, Handle: handle, Mode: mode})
}

// SixAxisGetDriftMode reads the gyroscope zero drift compensation mode.
func (c *Client) SixAxisGetDriftMode(aruid uint64, handle hid.SixAxisSensorHandle) (*apitypes.SixAxisDriftModeResponse, error) {
	raw, err := c.transport.Do("sixaxis/drift-mode/get", apitypes.SixAxisHandleRequest{Aruid: aruid, Handle: handle}, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.SixAxisDriftModeResponse](raw)
}

// SixAxisAtRest reports whether the sensor currently reads as at rest.
func (c *Client) SixAxisAtRest(aruid uint64, handle hid.SixAxisSensorHandle) (*apitypes.SixAxisAtRestResponse, error) {
	raw, err := c.transport.Do("sixaxis/at-rest", apitypes.SixAxisHandleRequest{Aruid: aruid, Handle: handle}, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.SixAxisAtRestResponse](raw)
}

// doEmpty sends a request whose success response carries no body.
// A non-empty response is either a problem document or unexpected output.
func (c *Client) doEmpty(ctx context.Context, path string, payload any) error {
	raw, err := c.transport.DoCtx(ctx, path, payload, nil)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	var problem apitypes.ApiError
	if err := json.Unmarshal([]byte(raw), &problem); err == nil && (problem.Status != 0 || problem.Title != "") {
		return &problem
	}
	return fmt.Errorf("unexpected response: %s", raw)
}

func parse[T any](data string) (*T, error) {
	if data == "" {
		return nil, errors.New("empty response")
	}
	var problem apitypes.ApiError
	if err := json.Unmarshal([]byte(data), &problem); err == nil && (problem.Status != 0 || problem.Title != "") {
		return nil, &problem
	}
	var out T
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &out, nil
}
