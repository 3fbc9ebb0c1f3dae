package config

import (
	"errors"
	"os"
	"path/filepath"
)

// UserPath is the per-user settings file, used when no DefaultPath exists in
// the working directory.
func UserPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", errors.New("config directory not found")
	}
	return filepath.Join(dir, "wndmenu", "config.yaml"), nil
}

// Resolve picks the settings file: DefaultPath when present, otherwise
// UserPath, otherwise DefaultPath again so saves land next to the binary.
func Resolve() string {
	if _, err := os.Stat(DefaultPath); err == nil {
		return DefaultPath
	}
	if p, err := UserPath(); err == nil {
		return p
	}
	return DefaultPath
}
