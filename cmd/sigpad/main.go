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

// Command sigpad opens a window in which a signature can be drawn with the
// mouse or a touch screen.
//
// Every finished stroke is rendered and, if enabled in the configuration,
// stored.  Keys: C clears the signature, L locks and unlocks input, P
// cycles through the pen colours when the colour picker is enabled.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sigpad"
	"seehuhn.de/go/sigpad/internal/config"
	"seehuhn.de/go/sigpad/internal/gesture"
)

const (
	placeholderAlpha = 0.2
	placeholderScale = 3
	fadeSeconds      = 0.3

	buttonW = 48
	buttonH = 20
)

func main() {
	os.Exit(run())
}

// run starts the drawing pad and returns the exit code.  Deferred calls
// run before the process exits, so that the signature store is closed.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	style, err := cfg.Style()
	if err != nil {
		logger.Error("invalid pen style", "error", err)
		return 1
	}
	persister, closer, err := cfg.OpenPersister()
	if err != nil {
		logger.Error("cannot open signature store", "error", err)
		return 1
	}
	if closer != nil {
		defer closer.Close()
	}

	g := newPad(cfg, style, persister, logger)
	defer g.ctrl.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Signature")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("sigpad stopped", "error", err)
		return 1
	}
	return 0
}

// pad is the ebiten.Game showing the drawing surface.
type pad struct {
	ctrl    *sigpad.Controller
	tracker gesture.Tracker
	log     *slog.Logger

	w, h int

	renderer *sigpad.Renderer
	surface  *ebiten.Image // current strokes
	scratch  *image.RGBA
	drawn    int // number of points and dots shown on surface
	dirty    bool

	placeholder *ebiten.Image
	alpha       float32
	fade        *gween.Tween

	button     *ebiten.Image
	buttonDown bool
	labels     map[string]*ebiten.Image
	colorIdx   int
	status     string
}

func newPad(cfg config.Config, style sigpad.Style, persister sigpad.Persister, logger *slog.Logger) *pad {
	g := &pad{
		log:      logger,
		renderer: sigpad.NewRenderer(),
		alpha:    placeholderAlpha,
		tracker:  gesture.Tracker{DeadZone: gesture.DefaultDeadZone},
		labels:   make(map[string]*ebiten.Image),
	}
	g.ctrl = sigpad.NewController(&sigpad.Options{
		Style:           style,
		Placeholder:     cfg.Placeholder,
		ShowColorPicker: cfg.ColorPicker,
		Persister:       persister,
		Logger:          logger,
		OnCommit:        g.onCommit,
		OnClear:         g.onClear,
	})

	g.placeholder = newLabel(g.ctrl.Placeholder())

	g.button = ebiten.NewImage(buttonW, buttonH)
	g.button.Fill(color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3c, A: 0xff})
	ebitenutil.DebugPrintAt(g.button, "Clear", 9, 2)
	return g
}

// newLabel returns an image of s in the debug font.  The glyphs are white
// on a transparent background.
func newLabel(s string) *ebiten.Image {
	img := ebiten.NewImage(6*len(s)+2, 16)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	return img
}

// maxLabels bounds the number of cached status labels.
const maxLabels = 32

// label is like newLabel, but caches the images.
func (g *pad) label(s string) *ebiten.Image {
	if img, ok := g.labels[s]; ok {
		return img
	}
	if len(g.labels) >= maxLabels {
		for k, img := range g.labels {
			img.Deallocate()
			delete(g.labels, k)
		}
	}
	img := newLabel(s)
	g.labels[s] = img
	return img
}

func (g *pad) onCommit(res *sigpad.Result) {
	g.status = fmt.Sprintf("signature %dx%d", res.Width, res.Height)
}

func (g *pad) onClear() {
	g.status = ""
	g.dirty = true
	g.fade = gween.New(g.alpha, placeholderAlpha, fadeSeconds, ease.OutQuad)
}

// Layout implements ebiten.Game.  The surface always fills the window.
func (g *pad) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.ctrl.SetBounds(rect.Rect{URx: float64(g.w), URy: float64(g.h)})
		if g.surface != nil {
			g.surface.Deallocate()
			g.surface = nil
		}
		g.dirty = true
	}
	return g.w, g.h
}

func (g *pad) buttonRect() image.Rectangle {
	x := g.w - buttonW - 30
	return image.Rect(x, 10, x+buttonW, 10+buttonH)
}

// Update implements ebiten.Game.
func (g *pad) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.ctrl.SetDisabled(!g.ctrl.Disabled())
		g.tracker.Cancel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && !g.ctrl.Disabled() {
		g.ctrl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && g.ctrl.ShowColorPicker() {
		g.colorIdx = (g.colorIdx + 1) % len(sigpad.Palette)
		g.ctrl.SetColor(sigpad.Palette[g.colorIdx])
		g.dirty = true
	}

	p, pressed := pointer()

	// The clear button takes presses which start on it.
	onButton := image.Pt(int(p.X), int(p.Y)).In(g.buttonRect())
	switch {
	case pressed && !g.tracker.Down() && !g.buttonDown && onButton:
		g.buttonDown = true
	case g.buttonDown && !pressed:
		g.buttonDown = false
		if onButton && !g.ctrl.Disabled() {
			g.ctrl.Clear()
		}
	case !g.buttonDown:
		wasEmpty := g.ctrl.IsEmpty()
		g.tracker.Update(g.ctrl, p, pressed)
		if wasEmpty && !g.ctrl.IsEmpty() {
			g.fade = gween.New(g.alpha, 0, fadeSeconds, ease.OutQuad)
		}
	}

	if g.fade != nil {
		var done bool
		g.alpha, done = g.fade.Update(1 / float32(ebiten.TPS()))
		if done {
			g.fade = nil
		}
	}

	if n := g.ctrl.Len(); n != g.drawn {
		g.drawn = n
		g.dirty = true
	}
	return nil
}

// pointer returns the position of the mouse, or of the first touch if the
// screen is touched.
func pointer() (vec.Vec2, bool) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return vec.Vec2{X: float64(x), Y: float64(y)}, true
	}
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return vec.Vec2{X: float64(x), Y: float64(y)}, pressed
}

// redraw renders the recorded path onto the surface image.
func (g *pad) redraw() {
	if g.surface == nil {
		g.surface = ebiten.NewImage(g.w, g.h)
		g.scratch = image.NewRGBA(image.Rect(0, 0, g.w, g.h))
	}
	clear(g.scratch.Pix)

	sp := g.ctrl.Path()
	if !sp.IsEmpty() {
		st := g.ctrl.Style()
		st.WidthMode = sigpad.WidthFromSurface
		st.SurfaceWidth = float64(g.w)
		st.CanvasHeight = float64(g.h)
		res, err := g.renderer.Rasterize(sp, st)
		if err != nil {
			g.log.Error("cannot draw signature", "error", err)
		} else {
			draw.Draw(g.scratch, g.scratch.Bounds(), res.Image, image.Point{}, draw.Src)
		}
	}
	g.surface.WritePixels(g.scratch.Pix)
	g.dirty = false
}

// Draw implements ebiten.Game.
func (g *pad) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	if g.w == 0 || g.h == 0 {
		return
	}

	if g.alpha > 0 {
		b := g.placeholder.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(placeholderScale, placeholderScale)
		op.GeoM.Translate(
			float64(g.w-placeholderScale*b.Dx())/2,
			float64(g.h-placeholderScale*b.Dy())/2)
		op.ColorScale.Scale(0, 0, 0, g.alpha)
		screen.DrawImage(g.placeholder, op)
	}

	if g.dirty || g.surface == nil {
		g.redraw()
	}
	screen.DrawImage(g.surface, nil)

	r := g.buttonRect()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	if g.ctrl.Disabled() {
		op.ColorScale.ScaleAlpha(0.4)
	}
	screen.DrawImage(g.button, op)

	info := g.status
	if g.ctrl.Disabled() {
		info = "locked  " + info
	}
	if g.ctrl.ShowColorPicker() {
		info += "  [P] colour"
	}
	if info != "" {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(10, float64(g.h-20))
		op.ColorScale.Scale(0.3, 0.3, 0.3, 1)
		screen.DrawImage(g.label(info), op)
	}
}
