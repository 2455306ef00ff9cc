package handler

import (
	"log/slog"

	"github.com/holaimscott/hidmux/apitypes"
	"github.com/holaimscott/hidmux/internal/server/api"
	"github.com/holaimscott/hidmux/service"
)

func VibrationDeviceInfo(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationDeviceInfoRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		info, err := svc.GetVibrationDeviceInfo(p.Handle)
		if err != nil {
			return err
		}
		return respond(res, info)
	}
}

// VibrationSend applies one value. Fire-and-forget: the underlying result is
// discarded, so sessions without vibration rights still see success.
func VibrationSend(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationSendRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		svc.SendVibrationValue(p.Aruid, p.Handle, p.Value)
		return nil
	}
}

func VibrationSendBatch(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationSendBatchRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.SendVibrationValues(p.Aruid, p.Handles, p.Values)
	}
}

func VibrationActual(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return respond(res, apitypes.VibrationValueResponse{Value: svc.GetActualVibrationValue(p.Aruid, p.Handle)})
	}
}

func VibrationGcSend(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationGcErmRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.SendVibrationGcErmCommand(p.Aruid, p.Handle, p.Command)
	}
}

func VibrationGcActual(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return respond(res, apitypes.VibrationGcErmResponse{Command: svc.GetActualVibrationGcErmCommand(p.Aruid, p.Handle)})
	}
}

func VibrationN64Send(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationN64Request
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.SendVibrationValueInBool(p.Aruid, p.Handle, p.IsVibrating)
	}
}

func VibrationMounted(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		mounted, err := svc.IsVibrationDeviceMounted(p.Aruid, p.Handle)
		if err != nil {
			return err
		}
		return respond(res, apitypes.VibrationMountedResponse{Mounted: mounted})
	}
}

func VibrationPermit(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationPermitRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		svc.PermitVibration(p.CanVibrate)
		return nil
	}
}

func VibrationPermitted(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		return respond(res, apitypes.VibrationPermittedResponse{Permitted: svc.IsVibrationPermitted()})
	}
}

func VibrationSessionBegin(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationSessionRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		svc.BeginPermitVibrationSession(p.Aruid)
		return nil
	}
}

func VibrationSessionEnd(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		svc.EndPermitVibrationSession()
		return nil
	}
}

func VibrationDeviceListCreate(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		id := svc.CreateActiveVibrationDeviceList()
		logger.Debug("vibration device list created", "listId", id)
		return respond(res, apitypes.VibrationDeviceListCreateResponse{ListId: id})
	}
}

func VibrationDeviceListRelease(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationDeviceListReleaseRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.ReleaseActiveVibrationDeviceList(p.ListId)
	}
}

func VibrationDeviceListActivate(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.VibrationDeviceListActivateRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.ActivateVibrationDevice(p.ListId, p.Handle)
	}
}
