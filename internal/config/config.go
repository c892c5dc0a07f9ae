// seehuhn.de/go/sigpad - signature capture and input validation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads the settings of the sigpad commands.
//
// Settings are read from a TOML file and can be overridden by environment
// variables with the prefix SIGPAD_, for example SIGPAD_LINE_WIDTH=4.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"seehuhn.de/go/sigpad"
	"seehuhn.de/go/sigpad/store/sqlitestore"
	"seehuhn.de/go/sigpad/validate"
)

// Config holds the application settings.
type Config struct {
	Line        LineConfig    `mapstructure:"line"`
	Placeholder string        `mapstructure:"placeholder"`
	ColorPicker bool          `mapstructure:"color_picker"`
	Persist     PersistConfig `mapstructure:"persist"`
	Window      WindowConfig  `mapstructure:"window"`
	Form        FormConfig    `mapstructure:"form"`
	Log         LogConfig     `mapstructure:"log"`
}

// LineConfig describes the pen.
type LineConfig struct {
	Color string  `mapstructure:"color"` // a colour name or #rrggbb
	Width float64 `mapstructure:"width"`
}

// PersistConfig selects where committed signatures are stored.
// If SQLite is set, signatures go into that database, otherwise files of
// the given format are written to Dir.
type PersistConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Format  string `mapstructure:"format"`
	Dir     string `mapstructure:"dir"`
	SQLite  string `mapstructure:"sqlite"`
}

// WindowConfig holds the size of the drawing window.
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// FormConfig holds settings for the validation form.
type FormConfig struct {
	PasswordStyle string `mapstructure:"password_style"`
	MinLength     int    `mapstructure:"min_length"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the configuration.  The file name is taken from SIGPAD_CONFIG
// if set, otherwise config.toml in the sigpad user configuration directory
// is used if it exists.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("line.color", "black")
	v.SetDefault("line.width", 3.0)
	v.SetDefault("placeholder", sigpad.DefaultPlaceholder)
	v.SetDefault("color_picker", false)
	v.SetDefault("persist.enabled", false)
	v.SetDefault("persist.format", "png")
	v.SetDefault("persist.dir", "")
	v.SetDefault("persist.sqlite", "")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 400)
	v.SetDefault("form.password_style", validate.Min8AlphaNum.String())
	v.SetDefault("form.min_length", 6)
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("SIGPAD_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "sigpad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SIGPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || os.Getenv("SIGPAD_CONFIG") != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

var namedColors = map[string]color.NRGBA{
	"black": {A: 0xff},
	"blue":  sigpad.Palette[0].(color.NRGBA),
	"red":   sigpad.Palette[2].(color.NRGBA),
	"white": {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// ParseColor converts a colour name or a hex value like "#1e90ff" into a
// colour.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Style returns the pen style described by the configuration.
func (c Config) Style() (sigpad.Style, error) {
	col, err := ParseColor(c.Line.Color)
	if err != nil {
		return sigpad.Style{}, err
	}
	if c.Line.Width <= 0 {
		return sigpad.Style{}, fmt.Errorf("invalid line width %g", c.Line.Width)
	}
	return sigpad.Style{Color: col, Width: c.Line.Width}, nil
}

// OpenPersister returns the configured signature store, or nil if storing
// is disabled.  If the returned io.Closer is not nil, it must be closed
// after use.
func (c Config) OpenPersister() (sigpad.Persister, io.Closer, error) {
	if !c.Persist.Enabled {
		return nil, nil, nil
	}
	if c.Persist.SQLite != "" {
		s, err := sqlitestore.Open(c.Persist.SQLite)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	}
	format, err := sigpad.ParseFormat(c.Persist.Format)
	if err != nil {
		return nil, nil, err
	}
	fs, err := sigpad.NewFileStore(c.Persist.Dir, format)
	if err != nil {
		return nil, nil, err
	}
	return fs, nil, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h), nil
}
