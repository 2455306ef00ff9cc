package service

// Opcode is the numeric request id of the console HID service protocol.
// Clients speaking the original numbering resolve the control-plane route
// for an opcode through this table.
type Opcode uint32

const (
	OpCreateAppletResource                         Opcode = 0
	OpStartSixAxisSensor                           Opcode = 66
	OpStopSixAxisSensor                            Opcode = 67
	OpIsSixAxisSensorFusionEnabled                 Opcode = 68
	OpEnableSixAxisSensorFusion                    Opcode = 69
	OpSetSixAxisSensorFusionParameters             Opcode = 70
	OpGetSixAxisSensorFusionParameters             Opcode = 71
	OpResetSixAxisSensorFusionParameters           Opcode = 72
	OpSetGyroscopeZeroDriftMode                    Opcode = 79
	OpGetGyroscopeZeroDriftMode                    Opcode = 80
	OpResetGyroscopeZeroDriftMode                  Opcode = 81
	OpIsSixAxisSensorAtRest                        Opcode = 82
	OpEnableSixAxisSensorUnalteredPassthrough      Opcode = 84
	OpIsSixAxisSensorUnalteredPassthroughEnabled   Opcode = 85
	OpLoadSixAxisSensorCalibrationParameter        Opcode = 87
	OpGetSixAxisSensorIcInformation                Opcode = 88
	OpResetIsSixAxisSensorDeviceNewlyAssigned      Opcode = 89
	OpSetSupportedNpadStyleSet                     Opcode = 100
	OpGetSupportedNpadStyleSet                     Opcode = 101
	OpSetSupportedNpadIdType                       Opcode = 102
	OpActivateNpad                                 Opcode = 103
	OpDeactivateNpad                               Opcode = 104
	OpDisconnectNpad                               Opcode = 106
	OpGetPlayerLedPattern                          Opcode = 107
	OpActivateNpadWithRevision                     Opcode = 109
	OpSetNpadJoyHoldType                           Opcode = 120
	OpGetNpadJoyHoldType                           Opcode = 121
	OpSetNpadJoyAssignmentModeSingleByDefault      Opcode = 122
	OpSetNpadJoyAssignmentModeSingle               Opcode = 123
	OpSetNpadJoyAssignmentModeDual                 Opcode = 124
	OpMergeSingleJoyAsDualJoy                      Opcode = 125
	OpStartLrAssignmentMode                        Opcode = 126
	OpStopLrAssignmentMode                         Opcode = 127
	OpSetNpadHandheldActivationMode                Opcode = 128
	OpGetNpadHandheldActivationMode                Opcode = 129
	OpSwapNpadAssignment                           Opcode = 130
	OpIsUnintendedHomeButtonInputProtectionEnabled Opcode = 131
	OpEnableUnintendedHomeButtonInputProtection    Opcode = 132
	OpSetNpadJoyAssignmentModeSingleWithDest       Opcode = 133
	OpSetNpadAnalogStickUseCenterClamp             Opcode = 134
	OpSetNpadCaptureButtonAssignment               Opcode = 135
	OpClearNpadCaptureButtonAssignment             Opcode = 136
	OpGetVibrationDeviceInfo                       Opcode = 200
	OpSendVibrationValue                           Opcode = 201
	OpGetActualVibrationValue                      Opcode = 202
	OpCreateActiveVibrationDeviceList              Opcode = 203
	OpPermitVibration                              Opcode = 204
	OpIsVibrationPermitted                         Opcode = 205
	OpSendVibrationValues                          Opcode = 206
	OpSendVibrationGcErmCommand                    Opcode = 207
	OpGetActualVibrationGcErmCommand               Opcode = 208
	OpBeginPermitVibrationSession                  Opcode = 209
	OpEndPermitVibrationSession                    Opcode = 210
	OpIsVibrationDeviceMounted                     Opcode = 211
	OpSendVibrationValueInBool                     Opcode = 212
	OpActivateConsoleSixAxisSensor                 Opcode = 300
	OpStartConsoleSixAxisSensor                    Opcode = 301
	OpStopConsoleSixAxisSensor                     Opcode = 302
)

// Routes maps the original opcode numbering onto control-plane paths.
var Routes = map[Opcode]string{
	OpCreateAppletResource:                         "applet/create",
	OpStartSixAxisSensor:                           "sixaxis/start",
	OpStopSixAxisSensor:                            "sixaxis/stop",
	OpIsSixAxisSensorFusionEnabled:                 "sixaxis/fusion/enabled",
	OpEnableSixAxisSensorFusion:                    "sixaxis/fusion/enable",
	OpSetSixAxisSensorFusionParameters:             "sixaxis/fusion/parameters/set",
	OpGetSixAxisSensorFusionParameters:             "sixaxis/fusion/parameters/get",
	OpResetSixAxisSensorFusionParameters:           "sixaxis/fusion/parameters/reset",
	OpSetGyroscopeZeroDriftMode:                    "sixaxis/drift-mode/set",
	OpGetGyroscopeZeroDriftMode:                    "sixaxis/drift-mode/get",
	OpResetGyroscopeZeroDriftMode:                  "sixaxis/drift-mode/reset",
	OpIsSixAxisSensorAtRest:                        "sixaxis/at-rest",
	OpEnableSixAxisSensorUnalteredPassthrough:      "sixaxis/passthrough/enable",
	OpIsSixAxisSensorUnalteredPassthroughEnabled:   "sixaxis/passthrough/enabled",
	OpLoadSixAxisSensorCalibrationParameter:        "sixaxis/calibration",
	OpGetSixAxisSensorIcInformation:                "sixaxis/ic-information",
	OpResetIsSixAxisSensorDeviceNewlyAssigned:      "sixaxis/newly-assigned/reset",
	OpSetSupportedNpadStyleSet:                     "npad/supported-style-set/set",
	OpGetSupportedNpadStyleSet:                     "npad/supported-style-set/get",
	OpSetSupportedNpadIdType:                       "npad/supported-ids/set",
	OpActivateNpad:                                 "npad/activate",
	OpDeactivateNpad:                               "npad/deactivate",
	OpDisconnectNpad:                               "npad/disconnect",
	OpGetPlayerLedPattern:                          "npad/led-pattern",
	OpActivateNpadWithRevision:                     "npad/activate-with-revision",
	OpSetNpadJoyHoldType:                           "npad/joy-hold-type/set",
	OpGetNpadJoyHoldType:                           "npad/joy-hold-type/get",
	OpSetNpadJoyAssignmentModeSingleByDefault:      "npad/assignment/single-default",
	OpSetNpadJoyAssignmentModeSingle:               "npad/assignment/single",
	OpSetNpadJoyAssignmentModeDual:                 "npad/assignment/dual",
	OpMergeSingleJoyAsDualJoy:                      "npad/assignment/merge",
	OpStartLrAssignmentMode:                        "npad/lr-assignment/start",
	OpStopLrAssignmentMode:                         "npad/lr-assignment/stop",
	OpSetNpadHandheldActivationMode:                "npad/handheld-activation-mode/set",
	OpGetNpadHandheldActivationMode:                "npad/handheld-activation-mode/get",
	OpSwapNpadAssignment:                           "npad/assignment/swap",
	OpIsUnintendedHomeButtonInputProtectionEnabled: "npad/home-protection/get",
	OpEnableUnintendedHomeButtonInputProtection:    "npad/home-protection/set",
	OpSetNpadJoyAssignmentModeSingleWithDest:       "npad/assignment/single-destination",
	OpSetNpadAnalogStickUseCenterClamp:             "npad/analog-stick-clamp",
	OpSetNpadCaptureButtonAssignment:               "npad/capture-button/set",
	OpClearNpadCaptureButtonAssignment:             "npad/capture-button/clear",
	OpGetVibrationDeviceInfo:                       "vibration/device-info",
	OpSendVibrationValue:                           "vibration/send",
	OpGetActualVibrationValue:                      "vibration/actual",
	OpCreateActiveVibrationDeviceList:              "vibration/device-list/create",
	OpPermitVibration:                              "vibration/permit",
	OpIsVibrationPermitted:                         "vibration/permitted",
	OpSendVibrationValues:                          "vibration/send-batch",
	OpSendVibrationGcErmCommand:                    "vibration/gc/send",
	OpGetActualVibrationGcErmCommand:               "vibration/gc/actual",
	OpBeginPermitVibrationSession:                  "vibration/session/begin",
	OpEndPermitVibrationSession:                    "vibration/session/end",
	OpIsVibrationDeviceMounted:                     "vibration/mounted",
	OpSendVibrationValueInBool:                     "vibration/n64/send",
	OpActivateConsoleSixAxisSensor:                 "console-sixaxis/activate",
	OpStartConsoleSixAxisSensor:                    "console-sixaxis/start",
	OpStopConsoleSixAxisSensor:                     "console-sixaxis/stop",
}
