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

package sigpad

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testResult(t *testing.T) *Result {
	t.Helper()
	sp := horizontalStroke()
	sp.AddBreak()
	sp.AddPoint(pt(10, 2))
	sp.AddPoint(pt(30, 18))
	res, err := Rasterize(sp, Style{Width: 2, CanvasHeight: 20, Background: color.White})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"", FormatPNG},
		{"png", FormatPNG},
		{"BMP", FormatBMP},
		{" tiff ", FormatTIFF},
		{"tif", FormatTIFF},
		{"pdf", FormatPDF},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseFormat("jpeg"); err == nil {
		t.Error("lossy format accepted")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	res := testResult(t)

	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		FormatPNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatBMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		FormatTIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}
	for format, decode := range decoders {
		buf := &bytes.Buffer{}
		if err := format.Encode(buf, res); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		img, err := decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if img.Bounds() != res.Image.Bounds() {
			t.Fatalf("%s: bounds %v, want %v", format, img.Bounds(), res.Image.Bounds())
		}

		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				got := color.NRGBAModel.Convert(img.At(x, y))
				want := res.Image.NRGBAAt(x, y)
				if got != want {
					t.Fatalf("%s: pixel (%d,%d) is %v, want %v", format, x, y, got, want)
				}
			}
		}
	}

	if err := FormatPDF.Encode(&bytes.Buffer{}, res); err == nil {
		t.Error("PDF encoding to a stream did not fail")
	}
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(filepath.Join(dir, "sub"), FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 535000000, time.UTC)
	store.Now = func() time.Time { return fixed }

	res := testResult(t)
	var names []string
	for range 2 {
		name, err := store.Persist(context.Background(), res)
		if err != nil {
			t.Fatal(err)
		}
		names = append(names, filepath.Base(name))
	}

	want := []string{
		"Signature-2026-03-14T15-09-26.535.png",
		"Signature-2026-03-14T15-09-26.535-1.png",
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("file %d is %q, want %q", i, names[i], want[i])
		}
	}

	fd, err := os.Open(filepath.Join(dir, "sub", want[0]))
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	cfg, err := png.DecodeConfig(fd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != res.Width || cfg.Height != res.Height {
		t.Errorf("stored image is %dx%d, want %dx%d", cfg.Width, cfg.Height, res.Width, res.Height)
	}
}

func TestFileStorePDF(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), FormatPDF)
	if err != nil {
		t.Fatal(err)
	}
	name, err := store.Persist(context.Background(), testResult(t))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("file name %q", name)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("file is not a PDF")
	}
}

func TestFileStoreCancelled(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), FormatBMP)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Persist(ctx, testResult(t)); err == nil {
		t.Error("cancelled context did not stop Persist")
	}
}
