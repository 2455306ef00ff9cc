package handler

import (
	"log/slog"

	"github.com/holaimscott/hidmux/apitypes"
	"github.com/holaimscott/hidmux/internal/server/api"
	apierror "github.com/holaimscott/hidmux/internal/server/api/error"
	"github.com/holaimscott/hidmux/resource"
	"github.com/holaimscott/hidmux/service"
)

// AppletCreate returns a handler registering a session's applet resource.
func AppletCreate(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.AppletCreateRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		if err := svc.CreateAppletResource(p.Aruid); err != nil {
			if err == resource.ErrAruidAlreadyRegistered {
				return apierror.ErrConflict(err.Error())
			}
			return err
		}
		logger.Info("applet resource created", "aruid", p.Aruid)
		return respond(res, apitypes.AppletCreateRequest{Aruid: p.Aruid})
	}
}

// AppletFree returns a handler releasing a session's applet resource.
func AppletFree(svc *service.Service) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var p apitypes.AppletCreateRequest
		if err := decode(req, &p); err != nil {
			return err
		}
		svc.FreeAppletResource(p.Aruid)
		return nil
	}
}
