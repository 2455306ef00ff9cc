package api

import "time"

// ServerConfig represents the server subcommand configuration.
type ServerConfig struct {
	Addr              string        `help:"API server listen address" default:":3242" env:"HIDMUX_API_ADDR"`
	Password          string        `help:"API password; empty disables authentication (a key is generated and persisted on first run unless --no-auth)" env:"HIDMUX_API_PASSWORD"`
	NoAuth            bool          `help:"Serve the API unauthenticated" default:"false" env:"HIDMUX_API_NO_AUTH"`
	ConnectionTimeout time.Duration `kong:"-"`
}
