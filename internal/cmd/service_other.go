//go:build !linux

package cmd

import (
	"errors"
	"log/slog"
)

func installService(*slog.Logger) error {
	return errors.New("service install is only supported on Linux (systemd)")
}

func uninstallService(*slog.Logger) error {
	return errors.New("service uninstall is only supported on Linux (systemd)")
}
