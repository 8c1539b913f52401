package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/imprev/internal/fit"
	"github.com/llehouerou/imprev/internal/frame"
	"github.com/llehouerou/imprev/internal/render"
)

const appName = "imprev"

type Config struct {
	HeightRescale float64 `koanf:"height_rescale"` // vertical compression for tall cells (default: 0.5)
	Filter        string  `koanf:"filter"`         // resampling filter name (default: "bilinear")
	Hint          *string `koanf:"hint"`           // line printed below each frame; "" hides it
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Later paths override earlier ones
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Filter = strings.ToLower(strings.TrimSpace(cfg.Filter))
	if _, err := frame.ParseFilter(cfg.Filter); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/imprev/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. $XDG_CONFIG_HOME/imprev/config.toml (highest priority)
	xdgPath := filepath.Join(xdg.ConfigHome, appName, "config.toml")
	if len(paths) == 0 || paths[0] != xdgPath {
		paths = append(paths, xdgPath)
	}

	return paths
}

// Compression returns the vertical compression factor with defaults applied.
func (c *Config) Compression() float64 {
	if c.HeightRescale <= 0 || c.HeightRescale > 1 {
		return fit.DefaultCompression
	}
	return c.HeightRescale
}

// HintText returns the line printed below each frame.
func (c *Config) HintText() string {
	if c.Hint == nil {
		return render.DefaultHint
	}
	return *c.Hint
}
