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
	"errors"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sigpad/raster"
)

// ErrEmptyPath is returned by [Rasterize] when the path contains neither
// points nor dots.
var ErrEmptyPath = errors.New("sigpad: nothing to rasterize")

// WidthMode selects how the width of a rendered signature is determined.
type WidthMode int

const (
	// WidthFromContent sizes the image to the right-most recorded point.
	// Dots are not taken into account, unless the path has no points at
	// all.  Parts of a stroke extending to the left of the origin or
	// beyond the right-most point, such as caps and dots, are cut off.
	WidthFromContent WidthMode = iota

	// WidthFromSurface sizes the image to Style.SurfaceWidth.
	WidthFromSurface
)

func (m WidthMode) String() string {
	switch m {
	case WidthFromContent:
		return "content"
	case WidthFromSurface:
		return "surface"
	default:
		return "WidthMode(?)"
	}
}

// Style describes how a signature is rendered.
type Style struct {
	// Color is the pen colour.  If nil, black is used.
	Color color.Color

	// Width is the pen width in surface units.
	Width float64

	// CanvasHeight is the image height in surface units, normally the
	// height of the display.  If this is zero, the height is taken from
	// the lowest point or dot.  A [Controller] replaces zero by the height
	// of its surface.
	CanvasHeight float64

	WidthMode    WidthMode
	SurfaceWidth float64 // used with WidthFromSurface

	// Background, if non-nil, is painted below the signature.  Otherwise
	// the image is transparent outside the strokes.
	Background color.Color

	// Scale is the number of pixels per surface unit.  Zero means 1.
	Scale float64
}

// DefaultStyle returns a black, three unit wide pen.
func DefaultStyle() Style {
	return Style{
		Color: color.Black,
		Width: 3,
	}
}

// Result is a rendered signature.
type Result struct {
	Image  *image.NRGBA
	Width  int
	Height int

	// Outline and Style are the inputs the image was rendered from.
	Outline *path.Data
	Style   Style
}

// Renderer rasterises signatures.  It keeps its scratch buffers between
// calls.  A Renderer is not safe for concurrent use.
type Renderer struct {
	r *raster.Rasteriser
}

// NewRenderer allocates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{r: raster.NewRasteriser(rect.Rect{})}
}

// Rasterize renders sp with a fresh [Renderer].
func Rasterize(sp *StrokePath, st Style) (*Result, error) {
	return NewRenderer().Rasterize(sp, st)
}

// Rasterize strokes the outline of sp into a new image.  Lines use round
// caps and round joins.  The path is only read.
func (rd *Renderer) Rasterize(sp *StrokePath, st Style) (*Result, error) {
	if sp.IsEmpty() {
		return nil, ErrEmptyPath
	}

	scale := st.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := canvasSize(sp, st, scale)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if st.Background != nil {
		bg := color.NRGBAModel.Convert(st.Background).(color.NRGBA)
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i+0] = bg.R
			img.Pix[i+1] = bg.G
			img.Pix[i+2] = bg.B
			img.Pix[i+3] = bg.A
		}
	}

	var pen color.Color = color.Black
	if st.Color != nil {
		pen = st.Color
	}
	fg := color.NRGBAModel.Convert(pen).(color.NRGBA)

	outline := BuildOutline(sp)

	r := rd.r
	r.Reset(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = matrix.Matrix{scale, 0, 0, scale, 0, 0}
	r.Width = st.Width
	r.Stroke(outline.Iter(), func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+4*xMin:]
		for i, c := range coverage {
			compositeOver(row[4*i:4*i+4], fg, c)
		}
	})

	res := &Result{
		Image:   img,
		Width:   w,
		Height:  h,
		Outline: outline,
		Style:   st,
	}
	return res, nil
}

// canvasSize returns the image dimensions in pixels.  Both are at least 1.
func canvasSize(sp *StrokePath, st Style, scale float64) (int, int) {
	b := sp.Bounds()

	width := b.URx
	if len(sp.Points) > 0 {
		width = sp.Points[0].X
		for _, p := range sp.Points[1:] {
			width = max(width, p.X)
		}
	}
	if st.WidthMode == WidthFromSurface {
		width = st.SurfaceWidth
	}
	height := st.CanvasHeight
	if height <= 0 {
		height = b.URy
	}

	w := max(int(math.Ceil(width*scale)), 1)
	h := max(int(math.Ceil(height*scale)), 1)
	return w, h
}

// compositeOver paints colour c with the given coverage over the
// non-premultiplied pixel px.
func compositeOver(px []uint8, c color.NRGBA, coverage float32) {
	if coverage <= 0 {
		return
	}
	sa := float32(c.A) / 255 * min(coverage, 1)
	da := float32(px[3]) / 255
	oa := sa + da*(1-sa)
	if oa <= 0 {
		return
	}

	blend := func(s, d uint8) uint8 {
		v := (float32(s)*sa + float32(d)*da*(1-sa)) / oa
		return uint8(v + 0.5)
	}
	px[0] = blend(c.R, px[0])
	px[1] = blend(c.G, px[1])
	px[2] = blend(c.B, px[2])
	px[3] = uint8(oa*255 + 0.5)
}
