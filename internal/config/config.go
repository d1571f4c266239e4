// Package config loads folio's settings from an optional YAML file and
// FOLIO_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Zachkp/folio/internal/theme"
)

// EnvPrefix prefixes every environment override. Nested keys use a double
// underscore: FOLIO_THEME__DEFAULT_DARK=true sets theme.default_dark.
const EnvPrefix = "FOLIO_"

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Theme   ThemeConfig   `koanf:"theme"`
	Content ContentConfig `koanf:"content"`
	Assets  AssetsConfig  `koanf:"assets"`
	Log     LogConfig     `koanf:"log"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
	// Mode is the gin mode: debug, release or test.
	Mode string `koanf:"mode"`
	// SecureCookies marks the preference cookie HTTPS-only.
	SecureCookies bool `koanf:"secure_cookies"`
}

type ThemeConfig struct {
	// DefaultDark applies when no preference is stored and no usable system
	// signal exists.
	DefaultDark bool `koanf:"default_dark"`
	// FollowSystem lets the browser's colour-scheme hint override DefaultDark.
	FollowSystem bool `koanf:"follow_system"`
}

// Policy converts the settings for the theme controller.
func (t ThemeConfig) Policy() theme.Policy {
	return theme.Policy{FollowSystem: t.FollowSystem, Default: t.DefaultDark}
}

type ContentConfig struct {
	// Path to a content document. Empty uses the embedded one.
	Path string `koanf:"path"`
	// Watch reloads Path on change.
	Watch bool `koanf:"watch"`
}

type AssetsConfig struct {
	// ImagesDir is served under /images when it exists.
	ImagesDir string `koanf:"images_dir"`
	// CV is the downloadable résumé served at /cv.pdf. Empty disables it.
	CV string `koanf:"cv"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: gin.DebugMode,
		},
		Theme: ThemeConfig{
			DefaultDark:  false,
			FollowSystem: true,
		},
		Assets: AssetsConfig{
			ImagesDir: "images",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path if it exists, then applies environment overrides. A plain
// PORT variable, as set by most hosting platforms, wins over everything.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if mode := os.Getenv(gin.EnvGinMode); mode != "" {
		cfg.Server.Mode = mode
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validModes = map[string]bool{
	gin.DebugMode:   true,
	gin.ReleaseMode: true,
	gin.TestMode:    true,
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("invalid server.mode %q: must be one of debug, release, test", c.Server.Mode)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Content.Watch && c.Content.Path == "" {
		return fmt.Errorf("content.watch needs content.path")
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", s, err)
	}
	return l, nil
}
