package cmd

import "log/slog"

// ServiceCommand manages the system service for the server.
type ServiceCommand struct {
	Install   ServiceInstall   `cmd:"" help:"Install and start the system service"`
	Uninstall ServiceUninstall `cmd:"" help:"Stop and remove the system service"`
}

type ServiceInstall struct{}

func (c *ServiceInstall) Run(logger *slog.Logger) error { return installService(logger) }

type ServiceUninstall struct{}

func (c *ServiceUninstall) Run(logger *slog.Logger) error { return uninstallService(logger) }
