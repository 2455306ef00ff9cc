package handler

import (
	"log/slog"

	"github.com/holaimscott/hidmux/apitypes"
	"github.com/holaimscott/hidmux/hid"
	"github.com/holaimscott/hidmux/internal/server/api"
	"github.com/holaimscott/hidmux/service"
)

func SixAxisStart(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.StartSixAxisSensor(p.Aruid, p.Handle)
	}
}

func SixAxisStop(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.StopSixAxisSensor(p.Aruid, p.Handle)
	}
}

func SixAxisFusionEnabled(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		enabled, err := svc.IsSixAxisSensorFusionEnabled(p.Aruid, p.Handle)
		if err != nil {
			return err
		}
		return respond(res, apitypes.SixAxisBoolResponse{Enabled: enabled})
	}
}

func SixAxisFusionEnable(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisEnableRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.EnableSixAxisSensorFusion(p.Aruid, p.Handle, p.Enabled)
	}
}

func SixAxisFusionParametersSet(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisFusionParametersRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		params := hid.SixAxisSensorFusionParameters{Parameter1: p.Parameter1, Parameter2: p.Parameter2}
		return svc.SetSixAxisSensorFusionParameters(p.Aruid, p.Handle, params)
	}
}

func SixAxisFusionParametersGet(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		params, err := svc.GetSixAxisSensorFusionParameters(p.Aruid, p.Handle)
		if err != nil {
			return err
		}
		return respond(res, apitypes.SixAxisFusionParametersResponse{
			Parameter1: params.Parameter1,
			Parameter2: params.Parameter2,
		})
	}
}

func SixAxisFusionParametersReset(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.ResetSixAxisSensorFusionParameters(p.Aruid, p.Handle)
	}
}

func SixAxisDriftModeSet(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisDriftModeRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.SetGyroscopeZeroDriftMode(p.Aruid, p.Handle, p.Mode)
	}
}

func SixAxisDriftModeGet(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		mode, err := svc.GetGyroscopeZeroDriftMode(p.Aruid, p.Handle)
		if err != nil {
			return err
		}
		return respond(res, apitypes.SixAxisDriftModeResponse{Mode: mode})
	}
}

func SixAxisDriftModeReset(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.ResetGyroscopeZeroDriftMode(p.Aruid, p.Handle)
	}
}

func SixAxisAtRest(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		atRest, err := svc.IsSixAxisSensorAtRest(p.Aruid, p.Handle)
		if err != nil {
			return err
		}
		return respond(res, apitypes.SixAxisAtRestResponse{AtRest: atRest})
	}
}

func SixAxisPassthroughEnable(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisEnableRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.EnableSixAxisSensorUnalteredPassthrough(p.Aruid, p.Handle, p.Enabled)
	}
}

func SixAxisPassthroughEnabled(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		enabled, err := svc.IsSixAxisSensorUnalteredPassthroughEnabled(p.Aruid, p.Handle)
		if err != nil {
			return err
		}
		return respond(res, apitypes.SixAxisBoolResponse{Enabled: enabled})
	}
}

func SixAxisNewlyAssignedReset(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.ResetIsSixAxisSensorDeviceNewlyAssigned(p.Aruid, p.Handle)
	}
}

func SixAxisCalibration(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		cal, err := svc.LoadSixAxisSensorCalibrationParameter(p.Aruid, p.Handle)
		if err != nil {
			return err
		}
		return respond(res, apitypes.SixAxisCalibrationResponse{Data: cal.Data[:]})
	}
}

func SixAxisIcInformation(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.SixAxisHandleRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		ic, err := svc.GetSixAxisSensorIcInformation(p.Aruid, p.Handle)
		if err != nil {
			return err
		}
		return respond(res, apitypes.SixAxisIcInformationResponse{
			AccelerometerRange: ic.AccelerometerRange,
			GyroscopeRange:     ic.GyroscopeRange,
		})
	}
}

func ConsoleSixAxisActivate(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.ConsoleSixAxisRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		return svc.ActivateConsoleSixAxisSensor(p.Aruid)
	}
}

func ConsoleSixAxisStart(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.ConsoleSixAxisRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		h := hid.ConsoleSixAxisSensorHandle{}
		if p.Handle != nil {
			h = *p.Handle
		}
		return svc.StartConsoleSixAxisSensor(p.Aruid, h)
	}
}

func ConsoleSixAxisStop(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.ConsoleSixAxisRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		h := hid.ConsoleSixAxisSensorHandle{}
		if p.Handle != nil {
			h = *p.Handle
		}
		return svc.StopConsoleSixAxisSensor(p.Aruid, h)
	}
}
