// Package config loads user settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// AppName names the per-user configuration directory.
const AppName = "bezierboard"

type Config struct {
	Log      Log      `toml:"log"`
	Document Document `toml:"document"`
	Window   Window   `toml:"window"`
	Canvas   Canvas   `toml:"canvas"`
	Share    Share    `toml:"share"`
}

type Log struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type Document struct {
	// Extension marks files that hold saved curve documents rather than images.
	Extension string `toml:"extension"`
}

type Window struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type Canvas struct {
	CurveWidth       float32 `toml:"curve_width"`
	BoundsWidth      float32 `toml:"bounds_width"`
	FlattenTolerance float64 `toml:"flatten_tolerance"`
}

type Share struct {
	Enabled   bool   `toml:"enabled"`
	Addr      string `toml:"addr"`
	Advertise bool   `toml:"advertise"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Log:      Log{Level: "info"},
		Document: Document{Extension: ".bez"},
		Window:   Window{Width: 1024, Height: 768},
		Canvas:   Canvas{CurveWidth: 2, BoundsWidth: 1, FlattenTolerance: 0.25},
		Share:    Share{Addr: ":8888", Advertise: true},
	}
}

// Path returns the location of the user's config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, AppName, "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("read config %s: unknown key %q", path, undec[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Document.Extension == "" || c.Document.Extension[0] != '.':
		return fmt.Errorf("document.extension %q must start with a dot", c.Document.Extension)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %gx%g must be positive", c.Window.Width, c.Window.Height)
	case c.Canvas.CurveWidth <= 0:
		return fmt.Errorf("canvas.curve_width %g must be positive", c.Canvas.CurveWidth)
	case c.Canvas.BoundsWidth < 0:
		// Zero hides the bounds rectangle.
		return fmt.Errorf("canvas.bounds_width %g must not be negative", c.Canvas.BoundsWidth)
	case c.Canvas.FlattenTolerance <= 0:
		return fmt.Errorf("canvas.flatten_tolerance %g must be positive", c.Canvas.FlattenTolerance)
	}
	return nil
}
