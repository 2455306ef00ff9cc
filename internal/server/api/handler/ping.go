package handler

import (
	"log/slog"

	"github.com/holaimscott/hidmux/apitypes"
	"github.com/holaimscott/hidmux/internal/server/api"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Ping returns a handler answering liveness probes with server identity.
func Ping() api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		return respond(res, apitypes.PingResponse{Server: "hidmux", Version: Version})
	}
}
