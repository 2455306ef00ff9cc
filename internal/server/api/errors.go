package api

import (
	"errors"

	"github.com/holaimscott/hidmux/apitypes"
	"github.com/holaimscott/hidmux/hid"
	"github.com/holaimscott/hidmux/service"
)

// Factory helpers returning *apitypes.ApiError (single canonical error type).
func ErrBadRequest(detail string) *apitypes.ApiError {
	return &apitypes.ApiError{Status: 400, Title: "Bad Request", Detail: detail}
}
func ErrNotFound(detail string) *apitypes.ApiError {
	return &apitypes.ApiError{Status: 404, Title: "Not Found", Detail: detail}
}
func ErrConflict(detail string) *apitypes.ApiError {
	return &apitypes.ApiError{Status: 409, Title: "Conflict", Detail: detail}
}
func ErrInternal(detail string) *apitypes.ApiError {
	return &apitypes.ApiError{Status: 500, Title: "Internal Server Error", Detail: detail}
}

// WrapError normalizes any error into *apitypes.ApiError. Domain sentinel
// errors map onto stable problem codes so clients can distinguish a rejected
// handle from a missing device or a permission failure.
func WrapError(err error) *apitypes.ApiError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*apitypes.ApiError); ok {
		return ae
	}
	if ae, ok := err.(apitypes.ApiError); ok {
		return &ae
	}
	switch {
	case errors.Is(err, hid.ErrInvalidHandle),
		errors.Is(err, hid.ErrInvalidNpadId),
		errors.Is(err, hid.ErrArraySizeMismatch):
		return ErrBadRequest(err.Error())
	case errors.Is(err, hid.ErrDeviceNotFound),
		errors.Is(err, service.ErrUnknownDeviceList):
		return ErrNotFound(err.Error())
	case errors.Is(err, hid.ErrVibrationNotPermitted),
		errors.Is(err, hid.ErrNpadNotSingleJoy),
		errors.Is(err, hid.ErrDeviceIndexOutOfRange):
		return ErrConflict(err.Error())
	}
	// Default wrap as internal error
	return ErrInternal(err.Error())
}
