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

// Command genref writes reference renderings of the recorded gesture
// scenarios.  For every scenario the final committed signature is written
// as a PNG image and as a vector PDF.  Run from the module root directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/sigpad"
	"seehuhn.de/go/sigpad/testcases"
)

func main() {
	refDir := flag.String("o", "testdata/reference", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		slog.Error("cannot create output directory", "error", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			err := generate(&sc, filepath.Join(*refDir, name))
			if errors.Is(err, errNoCommit) {
				slog.Info("skipped", "scenario", name)
				continue
			} else if err != nil {
				slog.Error("cannot render scenario", "scenario", name, "error", err)
				os.Exit(1)
			}
		}
	}
}

var errNoCommit = errors.New("scenario leaves no signature")

func generate(sc *testcases.Scenario, base string) error {
	st := sigpad.DefaultStyle()
	st.CanvasHeight = sc.Bounds.URy
	st.WidthMode = sigpad.WidthFromSurface
	st.SurfaceWidth = sc.Bounds.URx

	c := sigpad.NewController(&sigpad.Options{Style: st})
	c.SetBounds(sc.Bounds)
	sc.Replay(c)

	res := c.Image()
	if res == nil {
		return errNoCommit
	}

	f, err := os.Create(base + sigpad.FormatPNG.Ext())
	if err != nil {
		return err
	}
	err = sigpad.FormatPNG.Encode(f, res)
	if err != nil {
		f.Close()
		return fmt.Errorf("png: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	err = sigpad.WritePDF(base+sigpad.FormatPDF.Ext(), res)
	if err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}
