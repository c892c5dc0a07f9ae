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
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// Format is a file format for stored signatures.
type Format int

// These are the supported file formats.  All of them are lossless.
const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
	FormatPDF // vector output, re-created from the outline
)

var formatNames = []string{"png", "bmp", "tiff", "pdf"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Ext returns the file name extension for f, including the leading dot.
func (f Format) Ext() string {
	if f == FormatTIFF {
		return ".tif"
	}
	return "." + f.String()
}

// ParseFormat converts a format name like "png" into a Format.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "tif":
		return FormatTIFF, nil
	case "":
		return FormatPNG, nil
	}
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown image format %q", name)
}

// Encode writes the bitmap of res to w.  PDF output needs a file name and
// is handled by [WritePDF] instead.
func (f Format) Encode(w io.Writer, res *Result) error {
	var img image.Image = res.Image
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPDF:
		return fmt.Errorf("%s output cannot be streamed", f)
	default:
		return fmt.Errorf("unsupported format %s", f)
	}
}

// WritePDF stores the signature outline as a single page PDF file.  The
// page has the size of the image, with one PDF unit per surface unit.
// Colours are written as grey levels.
func WritePDF(fname string, res *Result) error {
	st := res.Style
	scale := st.Scale
	if scale <= 0 {
		scale = 1
	}
	pageW := float64(res.Width) / scale
	pageH := float64(res.Height) / scale

	paper := &pdf.Rectangle{URx: pageW, URy: pageH}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if st.Background != nil {
		page.SetFillColor(color.DeviceGray(grayLevel(st.Background)))
		page.Rectangle(0, 0, pageW, pageH)
		page.Fill()
	}

	// The recorded coordinates have the origin in the top-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, pageH})

	pen := st.Color
	if pen == nil {
		pen = DefaultStyle().Color
	}
	page.SetStrokeColor(color.DeviceGray(grayLevel(pen)))
	page.SetLineWidth(st.Width)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for cmd, pts := range res.Outline.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	return page.Close()
}

// grayLevel returns the luminance of c in the range [0, 1].
func grayLevel(c interface{ RGBA() (r, g, b, a uint32) }) float64 {
	r, g, b, _ := c.RGBA()
	y := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return y / 0xffff
}
