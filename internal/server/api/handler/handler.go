// Package handler contains the control-plane handlers, one file per
// operation family. Every handler decodes its JSON payload, calls into the
// arbitration service and encodes the result; domain errors are surfaced
// as-is and normalized by the server's error wrapper.
package handler

import (
	"encoding/json"
	"fmt"

	"github.com/holaimscott/hidmux/internal/server/api"
	apierror "github.com/holaimscott/hidmux/internal/server/api/error"
)

// decode unmarshals a request payload into dst, mapping absence and malformed
// JSON to a 400.
func decode(req *api.Request, dst any) error {
	if req.Payload == "" {
		return apierror.ErrBadRequest("missing payload")
	}
	if err := json.Unmarshal([]byte(req.Payload), dst); err != nil {
		return apierror.ErrBadRequest(fmt.Sprintf("invalid JSON payload: %v", err))
	}
	return nil
}

// respond marshals v into the response body.
func respond(res *api.Response, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return apierror.ErrInternal(fmt.Sprintf("failed to marshal response: %v", err))
	}
	res.JSON = string(payload)
	return nil
}
