// Package config defines the top-level CLI surface parsed by kong.
package config

import "github.com/holaimscott/hidmux/internal/cmd"

// LogConfig holds the global logging flags shared by all commands.
type LogConfig struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"HIDMUX_LOG_LEVEL"`
	File    string `help:"Log file path; logs go to stdout/stderr when empty" env:"HIDMUX_LOG_FILE"`
	RawFile string `help:"Raw wire-frame log file path" env:"HIDMUX_RAW_LOG_FILE"`
}

// CLI is the root command structure.
type CLI struct {
	Log    LogConfig `embed:"" prefix:"log."`
	Config string    `help:"Path to a configuration file" type:"path"`

	Server    cmd.Server         `cmd:"" help:"Run the HID arbitration server" default:"withargs"`
	Key       cmd.KeyCommand     `cmd:"" help:"Manage the API password key file"`
	Service   cmd.ServiceCommand `cmd:"" help:"Manage the system service"`
	ConfigCmd cmd.ConfigCommand  `cmd:"" name:"config" help:"Configuration file helpers"`
}
