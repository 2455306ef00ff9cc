package handler

import (
	"github.com/holaimscott/hidmux/internal/server/api"
	"github.com/holaimscott/hidmux/service"
)

// RegisterRoutes wires every control-plane route onto the router. The path
// set mirrors the numeric opcode table in service.Routes.
func RegisterRoutes(r *api.Router, svc *service.Service) {
	r.Register("ping", Ping())

	r.Register("applet/create", AppletCreate(svc))
	r.Register("applet/free", AppletFree(svc))

	r.Register("npad/activate", NpadActivate(svc))
	r.Register("npad/activate-with-revision", NpadActivate(svc))
	r.Register("npad/deactivate", NpadDeactivate(svc))
	r.Register("npad/supported-style-set/set", NpadSetSupportedStyleSet(svc))
	r.Register("npad/supported-style-set/get", NpadGetSupportedStyleSet(svc))
	r.Register("npad/supported-ids/set", NpadSetSupportedIds(svc))
	r.Register("npad/disconnect", NpadDisconnect(svc))
	r.Register("npad/led-pattern", NpadLedPattern(svc))
	r.Register("npad/joy-hold-type/set", NpadSetJoyHoldType(svc))
	r.Register("npad/joy-hold-type/get", NpadGetJoyHoldType(svc))
	r.Register("npad/assignment/single", NpadAssignSingle(svc))
	r.Register("npad/assignment/single-default", NpadAssignSingleDefault(svc))
	r.Register("npad/assignment/single-destination", NpadAssignSingleWithDestination(svc))
	r.Register("npad/assignment/dual", NpadAssignDual(svc))
	r.Register("npad/assignment/merge", NpadMerge(svc))
	r.Register("npad/assignment/swap", NpadSwap(svc))
	r.Register("npad/lr-assignment/start", NpadLrAssignmentStart(svc))
	r.Register("npad/lr-assignment/stop", NpadLrAssignmentStop(svc))
	r.Register("npad/handheld-activation-mode/set", NpadSetHandheldActivationMode(svc))
	r.Register("npad/handheld-activation-mode/get", NpadGetHandheldActivationMode(svc))
	r.Register("npad/home-protection/set", NpadSetHomeProtection(svc))
	r.Register("npad/home-protection/get", NpadGetHomeProtection(svc))
	r.Register("npad/analog-stick-clamp", NpadAnalogStickClamp(svc))
	r.Register("npad/capture-button/set", NpadSetCaptureButton(svc))
	r.Register("npad/capture-button/clear", NpadClearCaptureButton(svc))

	r.Register("vibration/device-info", VibrationDeviceInfo(svc))
	r.Register("vibration/send", VibrationSend(svc))
	r.Register("vibration/send-batch", VibrationSendBatch(svc))
	r.Register("vibration/actual", VibrationActual(svc))
	r.Register("vibration/gc/send", VibrationGcSend(svc))
	r.Register("vibration/gc/actual", VibrationGcActual(svc))
	r.Register("vibration/n64/send", VibrationN64Send(svc))
	r.Register("vibration/mounted", VibrationMounted(svc))
	r.Register("vibration/permit", VibrationPermit(svc))
	r.Register("vibration/permitted", VibrationPermitted(svc))
	r.Register("vibration/session/begin", VibrationSessionBegin(svc))
	r.Register("vibration/session/end", VibrationSessionEnd(svc))
	r.Register("vibration/device-list/create", VibrationDeviceListCreate(svc))
	r.Register("vibration/device-list/activate", VibrationDeviceListActivate(svc))
	r.Register("vibration/device-list/release", VibrationDeviceListRelease(svc))

	r.Register("sixaxis/start", SixAxisStart(svc))
	r.Register("sixaxis/stop", SixAxisStop(svc))
	r.Register("sixaxis/fusion/enabled", SixAxisFusionEnabled(svc))
	r.Register("sixaxis/fusion/enable", SixAxisFusionEnable(svc))
	r.Register("sixaxis/fusion/parameters/set", SixAxisFusionParametersSet(svc))
	r.Register("sixaxis/fusion/parameters/get", SixAxisFusionParametersGet(svc))
	r.Register("sixaxis/fusion/parameters/reset", SixAxisFusionParametersReset(svc))
	r.Register("sixaxis/drift-mode/set", SixAxisDriftModeSet(svc))
	r.Register("sixaxis/drift-mode/get", SixAxisDriftModeGet(svc))
	r.Register("sixaxis/drift-mode/reset", SixAxisDriftModeReset(svc))
	r.Register("sixaxis/at-rest", SixAxisAtRest(svc))
	r.Register("sixaxis/passthrough/enable", SixAxisPassthroughEnable(svc))
	r.Register("sixaxis/passthrough/enabled", SixAxisPassthroughEnabled(svc))
	r.Register("sixaxis/newly-assigned/reset", SixAxisNewlyAssignedReset(svc))
	r.Register("sixaxis/calibration", SixAxisCalibration(svc))
	r.Register("sixaxis/ic-information", SixAxisIcInformation(svc))

	r.Register("console-sixaxis/activate", ConsoleSixAxisActivate(svc))
	r.Register("console-sixaxis/start", ConsoleSixAxisStart(svc))
	r.Register("console-sixaxis/stop", ConsoleSixAxisStop(svc))

	r.RegisterStream("vibration/stream/{aruid}", VibrationStream(svc))
}
