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

package config

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/sigpad"
	"seehuhn.de/go/sigpad/store/sqlitestore"
)

// isolate points the configuration search at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("SIGPAD_CONFIG", "")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.Line.Color != "black" || c.Line.Width != 3 {
		t.Errorf("line %+v", c.Line)
	}
	if c.Placeholder != sigpad.DefaultPlaceholder {
		t.Errorf("placeholder %q", c.Placeholder)
	}
	if c.Persist.Enabled || c.Persist.Format != "png" {
		t.Errorf("persist %+v", c.Persist)
	}
	if c.Window.Width != 800 || c.Window.Height != 400 {
		t.Errorf("window %+v", c.Window)
	}
	if c.Form.MinLength != 6 {
		t.Errorf("form %+v", c.Form)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	isolate(t)
	cfgFile := filepath.Join(t.TempDir(), "sigpad.toml")
	data := `
placeholder = "Unterschrift"
color_picker = true

[line]
color = "#1e90ff"
width = 2.5

[persist]
enabled = true
format = "tiff"
`
	if err := os.WriteFile(cfgFile, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SIGPAD_CONFIG", cfgFile)
	t.Setenv("SIGPAD_LINE_WIDTH", "4")
	t.Setenv("SIGPAD_LOG_LEVEL", "debug")

	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.Placeholder != "Unterschrift" || !c.ColorPicker {
		t.Errorf("file settings not applied: %+v", c)
	}
	if c.Line.Color != "#1e90ff" {
		t.Errorf("line colour %q", c.Line.Color)
	}
	if c.Line.Width != 4 {
		t.Errorf("environment did not override the line width: %g", c.Line.Width)
	}
	if c.Persist.Format != "tiff" || !c.Persist.Enabled {
		t.Errorf("persist %+v", c.Persist)
	}
	if c.Log.Level != "debug" {
		t.Errorf("log level %q", c.Log.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	isolate(t)
	t.Setenv("SIGPAD_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := Load(); err == nil {
		t.Error("missing explicit config file was ignored")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"black", color.NRGBA{A: 255}, true},
		{" Red ", color.NRGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff}, true},
		{"#1e90ff", color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}, true},
		{"#1e90ff80", color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0x80}, true},
		{"1e90ff", color.NRGBA{}, false},
		{"#12345", color.NRGBA{}, false},
		{"#zzzzzz", color.NRGBA{}, false},
		{"mauve", color.NRGBA{}, false},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseColor(%q): error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStyle(t *testing.T) {
	c := Config{Line: LineConfig{Color: "blue", Width: 2}}
	st, err := c.Style()
	if err != nil {
		t.Fatal(err)
	}
	if st.Width != 2 || st.Color != sigpad.Palette[0] {
		t.Errorf("style %+v", st)
	}

	c.Line.Width = 0
	if _, err := c.Style(); err == nil {
		t.Error("zero line width accepted")
	}
}

func TestOpenPersister(t *testing.T) {
	c := Config{}
	p, closer, err := c.OpenPersister()
	if p != nil || closer != nil || err != nil {
		t.Errorf("disabled storage returned %v, %v, %v", p, closer, err)
	}

	c.Persist = PersistConfig{Enabled: true, Format: "bmp", Dir: t.TempDir()}
	p, _, err = c.OpenPersister()
	if err != nil {
		t.Fatal(err)
	}
	if fs, ok := p.(*sigpad.FileStore); !ok || fs.Format != sigpad.FormatBMP {
		t.Errorf("got persister %#v", p)
	}

	c.Persist.SQLite = filepath.Join(t.TempDir(), "sig.db")
	p, closer, err = c.OpenPersister()
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if _, ok := p.(*sqlitestore.Store); !ok {
		t.Errorf("got persister %T, want *sqlitestore.Store", p)
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := Config{Log: LogConfig{Level: "warn"}}.Logger(buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output %q", out)
	}

	if _, err := (Config{Log: LogConfig{Level: "loud"}}).Logger(buf); err == nil {
		t.Error("invalid level accepted")
	}
}
