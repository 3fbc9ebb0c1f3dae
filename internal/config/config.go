package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "wndmenu.yaml"

// Config holds the desktop client settings.
type Config struct {
	MenuPath     string `yaml:"menu_path"`
	ScreenWidth  int32  `yaml:"screen_width"`
	ScreenHeight int32  `yaml:"screen_height"`
	TargetFPS    int32  `yaml:"target_fps"`
	Fullscreen   bool   `yaml:"fullscreen"`
	LogLevel     string `yaml:"log_level"` // debug, info, warn or error
}

func Default() Config {
	return Config{
		MenuPath:     filepath.Join("assets", "menus", "MainMenu.wnd"),
		ScreenWidth:  1280,
		ScreenHeight: 720,
		TargetFPS:    60,
		LogLevel:     "info",
	}
}

// Load reads path. A missing file yields Default(); fields absent from the
// file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	def := Default()
	if c.ScreenWidth <= 0 {
		c.ScreenWidth = def.ScreenWidth
	}
	if c.ScreenHeight <= 0 {
		c.ScreenHeight = def.ScreenHeight
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = def.TargetFPS
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Merge copies file values into cfg for every flag not set explicitly on
// the command line.
func Merge(cfg *Config, fromFile Config, explicitFlags map[string]bool) {
	if !explicitFlags["menu"] {
		cfg.MenuPath = fromFile.MenuPath
	}
	if !explicitFlags["width"] {
		cfg.ScreenWidth = fromFile.ScreenWidth
	}
	if !explicitFlags["height"] {
		cfg.ScreenHeight = fromFile.ScreenHeight
	}
	if !explicitFlags["fps"] {
		cfg.TargetFPS = fromFile.TargetFPS
	}
	if !explicitFlags["fullscreen"] {
		cfg.Fullscreen = fromFile.Fullscreen
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
	cfg.normalize()
}

// Save writes cfg atomically through a temp file in the same directory.
func Save(path string, cfg Config) error {
	cfg.normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "wndmenu-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}
