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
	"errors"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func horizontalStroke() *StrokePath {
	sp := &StrokePath{}
	for x := 2.0; x <= 40; x += 2 {
		sp.AddPoint(pt(x, 10))
	}
	return sp
}

func TestRasterizeEmpty(t *testing.T) {
	sp := &StrokePath{}
	sp.AddBreak()
	_, err := Rasterize(sp, DefaultStyle())
	if !errors.Is(err, ErrEmptyPath) {
		t.Errorf("got error %v, want ErrEmptyPath", err)
	}
}

func TestRasterizeStroke(t *testing.T) {
	blue := color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	st := Style{Color: blue, Width: 4, CanvasHeight: 30}

	res, err := Rasterize(horizontalStroke(), st)
	if err != nil {
		t.Fatal(err)
	}
	if res.Width != 40 || res.Height != 30 {
		t.Fatalf("image size %dx%d, want 40x30", res.Width, res.Height)
	}
	if b := res.Image.Bounds(); b.Dx() != res.Width || b.Dy() != res.Height {
		t.Errorf("image bounds %v do not match %dx%d", b, res.Width, res.Height)
	}

	// The stroke covers 8 <= y < 12.
	if got := res.Image.NRGBAAt(20, 9); got != blue {
		t.Errorf("pixel on the stroke is %v, want %v", got, blue)
	}
	for _, y := range []int{5, 13, 25} {
		if got := res.Image.NRGBAAt(20, y); got.A != 0 {
			t.Errorf("pixel (20,%d) off the stroke is %v", y, got)
		}
	}
	// The round cap at the left end reaches x = 0.
	if got := res.Image.NRGBAAt(0, 10); got.A == 0 {
		t.Error("round cap is missing")
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	sp := horizontalStroke()
	sp.AddBreak()
	sp.AddPoint(pt(5, 5))
	sp.AddPoint(pt(30, 25))
	sp.AddDot(rect.Rect{LLx: 20, LLy: 20, URx: 23, URy: 23})
	st := Style{Color: color.Black, Width: 2.5, CanvasHeight: 32}

	a, err := Rasterize(sp, st)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRenderer().Rasterize(sp, st)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Image.Pix, b.Image.Pix) {
		t.Error("rendering the same path twice gave different images")
	}
}

func TestRasterizeDotOnly(t *testing.T) {
	sp := &StrokePath{}
	sp.AddDot(rect.Rect{LLx: 8.5, LLy: 8.5, URx: 11.5, URy: 11.5})

	res, err := Rasterize(sp, Style{Width: 3, CanvasHeight: 20})
	if err != nil {
		t.Fatal(err)
	}
	if res.Width != 12 {
		t.Errorf("width %d, want 12", res.Width)
	}
	if got := res.Image.NRGBAAt(10, 10); got.R != 0 || got.G != 0 || got.B != 0 || got.A < 250 {
		t.Errorf("dot centre is %v, want black", got)
	}
}

func TestRasterizeSize(t *testing.T) {
	sp := horizontalStroke()

	cases := []struct {
		name string
		st   Style
		w, h int
	}{
		{"content", Style{Width: 1, CanvasHeight: 30}, 40, 30},
		{"content height", Style{Width: 1}, 40, 10},
		{"surface", Style{Width: 1, CanvasHeight: 30, WidthMode: WidthFromSurface, SurfaceWidth: 100.2}, 101, 30},
		{"scaled", Style{Width: 1, CanvasHeight: 30, Scale: 2}, 80, 60},
	}
	for _, tc := range cases {
		res, err := Rasterize(sp, tc.st)
		if err != nil {
			t.Fatal(err)
		}
		if res.Width != tc.w || res.Height != tc.h {
			t.Errorf("%s: size %dx%d, want %dx%d", tc.name, res.Width, res.Height, tc.w, tc.h)
		}
	}
}

func TestRasterizeBackground(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	st := Style{Color: color.Black, Width: 4, CanvasHeight: 30, Background: white}

	res, err := Rasterize(horizontalStroke(), st)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Image.NRGBAAt(20, 25); got != white {
		t.Errorf("background pixel %v, want %v", got, white)
	}
	if got := res.Image.NRGBAAt(20, 10); got != (color.NRGBA{A: 255}) {
		t.Errorf("stroke pixel %v, want opaque black", got)
	}
	// anti-aliased pixels at the round cap are opaque grey
	got := res.Image.NRGBAAt(0, 9)
	if got.A != 255 || got.R != got.G || got.G != got.B {
		t.Errorf("edge pixel %v is not opaque grey", got)
	}
}

func TestCompositeOver(t *testing.T) {
	px := []uint8{0, 0, 0, 0}
	compositeOver(px, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	if px[0] != 200 || px[1] != 100 || px[2] != 50 || px[3] != 128 {
		t.Errorf("half coverage on transparent gives %v", px)
	}

	px = []uint8{255, 255, 255, 255}
	compositeOver(px, color.NRGBA{A: 255}, 0.5)
	if px[0] != 128 || px[3] != 255 {
		t.Errorf("half coverage on white gives %v", px)
	}

	px = []uint8{10, 20, 30, 40}
	compositeOver(px, color.NRGBA{A: 255}, 0)
	if px[0] != 10 || px[3] != 40 {
		t.Errorf("zero coverage changed the pixel to %v", px)
	}
}

func TestRasterizeWidthIgnoresDots(t *testing.T) {
	sp := horizontalStroke() // right-most point at x = 40
	sp.AddDot(rect.Rect{LLx: 60, LLy: 8, URx: 64, URy: 12})

	res, err := Rasterize(sp, Style{Width: 2, CanvasHeight: 20})
	if err != nil {
		t.Fatal(err)
	}
	if res.Width != 40 {
		t.Errorf("width %d, want 40", res.Width)
	}

	res, err = Rasterize(sp, Style{Width: 2, CanvasHeight: 20, WidthMode: WidthFromSurface, SurfaceWidth: 80})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Image.NRGBAAt(62, 10); got.A == 0 {
		t.Error("dot missing with WidthFromSurface")
	}
}
