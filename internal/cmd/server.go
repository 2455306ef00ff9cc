package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/holaimscott/hidmux/internal/configpaths"
	"github.com/holaimscott/hidmux/internal/log"
	"github.com/holaimscott/hidmux/internal/server/api"
	"github.com/holaimscott/hidmux/internal/server/api/auth"
	"github.com/holaimscott/hidmux/internal/server/api/handler"
	"github.com/holaimscott/hidmux/internal/util"
	"github.com/holaimscott/hidmux/service"
)

const keyFileName = "hidmux.key.txt"

type Server struct {
	ApiServerConfig   api.ServerConfig `embed:"" prefix:"api."`
	ConnectionTimeout time.Duration    `help:"Per-request read timeout" default:"30s" env:"HIDMUX_CONNECTION_TIMEOUT"`
}

// Run is called by Kong when the server command is executed.
func (s *Server) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.StartServer(ctx, logger, rawLogger)
}

func (s *Server) StartServer(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	s.ApiServerConfig.ConnectionTimeout = s.ConnectionTimeout

	if s.ApiServerConfig.Addr == "" {
		logger.Error("API server address must be set (default :3242).")
		return fmt.Errorf("API server address must be set (default :3242)")
	}

	logger.Info("Starting hidmux HID arbitration server", "addr", s.ApiServerConfig.Addr)

	password, err := s.resolvePassword(logger)
	if err != nil {
		return err
	}

	var key []byte
	if password != "" {
		key, err = auth.DeriveKey(password)
		if err != nil {
			return fmt.Errorf("failed to derive API key: %w", err)
		}
	}

	svc := service.New(logger)
	apiSrv := api.New(svc, s.ApiServerConfig.Addr, s.ApiServerConfig, key, logger)
	apiSrv.SetRawLogger(rawLogger)
	handler.RegisterRoutes(apiSrv.Router(), svc)

	if err := apiSrv.Start(); err != nil {
		logger.Error("failed to start API server", "error", err)
		if util.IsRunFromGUI() {
			fmt.Println("Press any key to exit...")
			var b []byte = make([]byte, 1)
			_, _ = os.Stdin.Read(b)
		}
		return err
	}

	if util.IsRunFromGUI() {
		go (func() {
			time.Sleep(250 * time.Millisecond)
			util.HideConsoleWindow()
		})()
	}

	<-ctx.Done()
	apiSrv.Close()
	return nil
}

// resolvePassword picks the API password: an explicit flag wins, --no-auth
// disables authentication, otherwise the persisted key file is used and
// created on first run.
func (s *Server) resolvePassword(logger *slog.Logger) (string, error) {
	if s.ApiServerConfig.NoAuth {
		logger.Warn("API authentication is disabled (--api.no-auth)")
		return "", nil
	}
	if s.ApiServerConfig.Password != "" {
		return s.ApiServerConfig.Password, nil
	}

	keyFileDir, err := configpaths.DefaultConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve key file path: %w", err)
	}
	keyFilePath := path.Join(keyFileDir, keyFileName)
	if pwd, err := os.ReadFile(keyFilePath); err == nil {
		return strings.TrimSpace(string(pwd)), nil
	}

	newPwd, err := auth.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate new API password: %w", err)
	}
	if err := os.MkdirAll(keyFileDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config dir for key file: %w", err)
	}
	if err := os.WriteFile(keyFilePath, []byte(newPwd), 0o600); err != nil {
		return "", fmt.Errorf("failed to write new API password to file: %w", err)
	}
	logger.Info("Generated API server password", "path", keyFilePath)
	logger.Info("-------------------------------------")
	logger.Info("Your hidmux API server password is:")
	logger.Info("-------------------------------------")
	logger.Info(newPwd)
	logger.Info("-------------------------------------")
	logger.Info("You can change this password at any time by editing the file")
	return newPwd, nil
}
