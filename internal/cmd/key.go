package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/holaimscott/hidmux/internal/configpaths"
	"github.com/holaimscott/hidmux/internal/util"
)

// KeyCommand groups key-file related subcommands.
type KeyCommand struct {
	Show KeyShow `cmd:"" help:"Print the API password and key file location"`
	Set  KeySet  `cmd:"" help:"Set the API password interactively"`
}

type KeyShow struct{}

func (c *KeyShow) Run(logger *slog.Logger) error {
	p, err := keyFilePath()
	if err != nil {
		return err
	}
	pwd, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no key file at %s; run the server once to generate one", p)
		}
		return err
	}
	fmt.Println(strings.TrimSpace(string(pwd)))
	logger.Debug("key file", "path", p)
	return nil
}

type KeySet struct{}

func (c *KeySet) Run(logger *slog.Logger) error {
	if !util.IsInteractive() {
		return errors.New("key set requires an interactive terminal")
	}
	pwd, err := util.PromptPassword("New API password: ")
	if err != nil {
		return err
	}
	if pwd == "" {
		return errors.New("password must not be empty")
	}
	confirm, err := util.PromptPassword("Repeat API password: ")
	if err != nil {
		return err
	}
	if pwd != confirm {
		return errors.New("passwords do not match")
	}

	p, err := keyFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(path.Dir(p), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(p, []byte(pwd), 0o600); err != nil {
		return err
	}
	logger.Info("API password updated", "path", p)
	return nil
}

func keyFilePath() (string, error) {
	dir, err := configpaths.DefaultConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve key file path: %w", err)
	}
	return path.Join(dir, keyFileName), nil
}
