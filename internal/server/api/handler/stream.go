package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/holaimscott/hidmux/apitypes"
	"github.com/holaimscott/hidmux/internal/server/api"
	"github.com/holaimscott/hidmux/service"
)

// VibrationStream returns a stream handler pushing one JSON line per
// vibration value applied for the requested ARUID. The connection stays open
// until the client disconnects or the session's applet resource is freed.
func VibrationStream(svc *service.Service) api.StreamHandlerFunc {
	return func(conn net.Conn, params map[string]string, logger *slog.Logger) error {
		defer conn.Close()

		aruidStr, ok := params["aruid"]
		if !ok {
			return fmt.Errorf("missing aruid parameter")
		}
		aruid, err := strconv.ParseUint(aruidStr, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid aruid: %w", err)
		}

		events, cancel := svc.Resources().SubscribeVibration(aruid)
		defer cancel()
		logger.Debug("vibration stream subscribed", "aruid", aruid)

		enc := json.NewEncoder(conn)
		for ev := range events {
			line := apitypes.VibrationStreamEvent{Aruid: ev.Aruid, Handle: ev.Handle, Value: ev.Value}
			if err := enc.Encode(line); err != nil {
				// Client went away; not a server failure.
				logger.Debug("vibration stream closed", "aruid", aruid, "error", err)
				return nil
			}
		}
		return nil
	}
}
