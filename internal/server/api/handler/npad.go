package handler

import (
	"log/slog"

	"github.com/holaimscott/hidmux/apitypes"
	"github.com/holaimscott/hidmux/hid"
	"github.com/holaimscott/hidmux/internal/server/api"
	"github.com/holaimscott/hidmux/service"
)

// NpadActivate handles npad/activate and npad/activate-with-revision: the
// optional revision defaults to the oldest.
func NpadActivate(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadActivateRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		if p.Revision != nil {
			svc.ActivateNpadWithRevision(p.Aruid, *p.Revision)
		} else {
			svc.ActivateNpad(p.Aruid)
		}
		return nil
	}
}

// NpadDeactivate is a success no-op kept for protocol completeness.
func NpadDeactivate(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.AppletCreateRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		svc.DeactivateNpad(p.Aruid)
		return nil
	}
}

func NpadSetSupportedStyleSet(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadStyleSetRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		svc.SetSupportedNpadStyleSet(p.Aruid, p.StyleSet)
		return nil
	}
}

func NpadGetSupportedStyleSet(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.AppletCreateRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return respond(res, apitypes.NpadStyleSetResponse{StyleSet: svc.GetSupportedNpadStyleSet(p.Aruid)})
	}
}

func NpadSetSupportedIds(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadSupportedIdsRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.SetSupportedNpadIdType(p.Aruid, p.NpadIds)
	}
}

func NpadDisconnect(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadIdRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.DisconnectNpad(p.Aruid, p.NpadId)
	}
}

func NpadLedPattern(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadLedPatternRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		pattern, err := svc.GetPlayerLedPattern(p.NpadId)
		if err != nil {
			return err
		}
		return respond(res, apitypes.NpadLedPatternResponse{Pattern: pattern})
	}
}

// NpadSetJoyHoldType rejects out-of-range hold types before the service
// sees them: the service treats them as a caller contract violation and the
// control plane must not crash on remote input.
func NpadSetJoyHoldType(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadJoyHoldTypeRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		if p.HoldType != hid.HoldTypeVertical && p.HoldType != hid.HoldTypeHorizontal {
			return api.ErrBadRequest("invalid joy hold type")
		}
		svc.SetNpadJoyHoldType(p.Aruid, p.HoldType)
		return nil
	}
}

func NpadGetJoyHoldType(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.AppletCreateRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return respond(res, apitypes.NpadJoyHoldTypeResponse{HoldType: svc.GetNpadJoyHoldType(p.Aruid)})
	}
}

func NpadAssignSingle(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadAssignmentRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.SetNpadJoyAssignmentModeSingle(p.Aruid, p.NpadId, p.DeviceType)
	}
}

func NpadAssignSingleDefault(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadIdRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.SetNpadJoyAssignmentModeSingleByDefault(p.Aruid, p.NpadId)
	}
}

func NpadAssignSingleWithDestination(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadAssignmentRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		reassigned, newID, err := svc.SetNpadJoyAssignmentModeSingleWithDestination(p.Aruid, p.NpadId, p.DeviceType)
		if err != nil {
			return err
		}
		return respond(res, apitypes.NpadAssignmentDestinationResponse{Reassigned: reassigned, NewNpadId: newID})
	}
}

func NpadAssignDual(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadIdRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.SetNpadJoyAssignmentModeDual(p.Aruid, p.NpadId)
	}
}

func NpadMerge(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadPairRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.MergeSingleJoyAsDualJoy(p.Aruid, p.NpadId1, p.NpadId2)
	}
}

func NpadSwap(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadPairRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.SwapNpadAssignment(p.Aruid, p.NpadId1, p.NpadId2)
	}
}

func NpadLrAssignmentStart(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.AppletCreateRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		svc.StartLrAssignmentMode(p.Aruid)
		return nil
	}
}

func NpadLrAssignmentStop(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.AppletCreateRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		svc.StopLrAssignmentMode(p.Aruid)
		return nil
	}
}

// NpadSetHandheldActivationMode rejects out-of-range modes at the boundary
// for the same reason as NpadSetJoyHoldType.
func NpadSetHandheldActivationMode(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadHandheldActivationRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		if !p.Mode.Valid() {
			return api.ErrBadRequest("invalid handheld activation mode")
		}
		svc.SetNpadHandheldActivationMode(p.Aruid, p.Mode)
		return nil
	}
}

func NpadGetHandheldActivationMode(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.AppletCreateRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return respond(res, apitypes.NpadHandheldActivationResponse{Mode: svc.GetNpadHandheldActivationMode(p.Aruid)})
	}
}

func NpadSetHomeProtection(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadHomeProtectionRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.EnableUnintendedHomeButtonInputProtection(p.Aruid, p.NpadId, p.Enabled)
	}
}

func NpadGetHomeProtection(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadIdRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		enabled, err := svc.IsUnintendedHomeButtonInputProtectionEnabled(p.Aruid, p.NpadId)
		if err != nil {
			return err
		}
		return respond(res, apitypes.NpadHomeProtectionResponse{Enabled: enabled})
	}
}

func NpadAnalogStickClamp(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadAnalogStickClampRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		svc.SetNpadAnalogStickUseCenterClamp(p.Aruid, p.UseCenterClamp)
		return nil
	}
}

func NpadSetCaptureButton(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.NpadCaptureButtonRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		svc.SetNpadCaptureButtonAssignment(p.Aruid, p.StyleSet, p.Button)
		return nil
	}
}

func NpadClearCaptureButton(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.AppletCreateRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		svc.ClearNpadCaptureButtonAssignment(p.Aruid)
		return nil
	}
}
