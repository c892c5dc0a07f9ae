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
	"context"
	"image/color"
	"log/slog"
	"sync"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// State is the drawing state of a [Controller].
type State int

const (
	// Idle means that no stroke is in progress.
	Idle State = iota

	// Drawing means that the pen is down and points are being recorded.
	Drawing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	default:
		return "State(?)"
	}
}

// Palette lists the pen colours offered by the colour picker.
var Palette = []color.Color{
	color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}, // blue
	color.Black,
	color.NRGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff}, // red
}

// DefaultPlaceholder is shown on an empty drawing surface.
const DefaultPlaceholder = "Sign Here"

// Options configure a [Controller].
// The zero value is a valid configuration.
type Options struct {
	// Style is used to render committed signatures.  If Style.Width is
	// zero, the values from [DefaultStyle] are used.
	Style Style

	// Placeholder is the text shown while nothing has been drawn.
	// If empty, DefaultPlaceholder is used.
	Placeholder string

	// ShowColorPicker asks the host to offer the colours in Palette.
	ShowColorPicker bool

	// Persister, if not nil, stores every committed signature before
	// OnCommit is called.  Failures are logged and otherwise ignored.
	Persister Persister

	// OnCommit is called with every non-empty committed signature.
	OnCommit func(*Result)

	// OnClear is called after the signature has been cleared.
	OnClear func()

	// Logger receives diagnostic messages.  If nil, slog.Default() is used.
	Logger *slog.Logger

	// Async moves rendering, storage and the OnCommit callback to a
	// background goroutine.  Results are delivered in commit order.  The
	// Controller must then be closed after use.
	Async bool
}

// Controller turns pointer events into a recorded signature.
//
// The methods of a Controller must be called from a single goroutine,
// normally the UI event loop.  If Options.Async is set, OnCommit is called
// from a separate worker goroutine.
type Controller struct {
	opt      Options
	style    Style
	log      *slog.Logger
	renderer *Renderer

	bounds   rect.Rect
	disabled bool
	state    State
	path     StrokePath

	mu    sync.Mutex // protects image and gen
	image *Result
	gen   int // incremented by Clear

	jobs      chan commitJob
	done      chan struct{}
	closeOnce sync.Once
	closed    bool
}

type commitJob struct {
	path  *StrokePath
	style Style
	gen   int
}

// NewController returns a new Controller.  If opt is nil, default options
// are used.
func NewController(opt *Options) *Controller {
	c := &Controller{}
	if opt != nil {
		c.opt = *opt
	}

	c.style = c.opt.Style
	if c.style.Width <= 0 {
		def := DefaultStyle()
		c.style.Width = def.Width
		if c.style.Color == nil {
			c.style.Color = def.Color
		}
	}
	if c.opt.Placeholder == "" {
		c.opt.Placeholder = DefaultPlaceholder
	}
	c.log = c.opt.Logger
	if c.log == nil {
		c.log = slog.Default()
	}

	if c.opt.Async {
		c.jobs = make(chan commitJob, 16)
		c.done = make(chan struct{})
		go c.worker(NewRenderer())
	} else {
		c.renderer = NewRenderer()
	}
	return c
}

// SetBounds sets the extent of the drawing surface, in the coordinates
// used by the pointer events.  This must be called whenever the surface is
// laid out.  Points outside the bounds are not recorded.  Unless the style
// sets a canvas height, committed images are as high as the surface.
func (c *Controller) SetBounds(r rect.Rect) {
	c.bounds = r
}

// Bounds returns the current extent of the drawing surface.
func (c *Controller) Bounds() rect.Rect {
	return c.bounds
}

// SetDisabled enables or disables pointer input.  The recorded signature is
// kept while input is disabled.
func (c *Controller) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// Disabled reports whether pointer input is ignored.
func (c *Controller) Disabled() bool {
	return c.disabled
}

// SetColor changes the pen colour for future commits.
func (c *Controller) SetColor(col color.Color) {
	c.style.Color = col
}

// Style returns the style used for rendering.
func (c *Controller) Style() Style {
	return c.style
}

// Placeholder returns the text to show on an empty surface.
func (c *Controller) Placeholder() string {
	return c.opt.Placeholder
}

// ShowColorPicker reports whether the host should offer a colour picker.
func (c *Controller) ShowColorPicker() bool {
	return c.opt.ShowColorPicker
}

// State returns the current drawing state.
func (c *Controller) State() State {
	return c.state
}

// Path returns a copy of the recorded signature.
func (c *Controller) Path() *StrokePath {
	return c.path.Clone()
}

// Len returns the number of recorded points and dots.  The value changes
// whenever something is drawn or cleared.
func (c *Controller) Len() int {
	return len(c.path.Points) + len(c.path.Dots)
}

// IsEmpty reports whether nothing has been drawn since the last Clear.
func (c *Controller) IsEmpty() bool {
	return c.path.IsEmpty()
}

// Image returns the most recently committed signature, or nil if there is
// none.
func (c *Controller) Image() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.image
}

// DragChanged handles a pointer movement while the pointer is down.
// Positions inside the surface bounds extend the current stroke, positions
// outside lift the pen.
func (c *Controller) DragChanged(p vec.Vec2) {
	if c.disabled {
		return
	}
	if contains(c.bounds, p) {
		c.path.AddPoint(p)
	} else {
		c.path.AddBreak()
	}
	c.state = Drawing
}

// DragEnded handles the release of the pointer after a drag.  The current
// stroke is finished and the signature is committed.
func (c *Controller) DragEnded(p vec.Vec2) {
	if c.disabled {
		return
	}
	c.path.AddBreak()
	c.state = Idle
	c.commit()
}

// Tap handles a pointer release without movement.  A dot of the pen width
// is placed at p and the signature is committed.
func (c *Controller) Tap(p vec.Vec2) {
	if c.disabled {
		return
	}
	d := c.style.Width / 2
	c.path.AddDot(rect.Rect{LLx: p.X - d, LLy: p.Y - d, URx: p.X + d, URy: p.Y + d})
	c.state = Idle
	c.commit()
}

// Clear removes the recorded signature and the last committed image, and
// then calls OnClear.
func (c *Controller) Clear() {
	c.path.Reset()
	c.state = Idle

	c.mu.Lock()
	c.image = nil
	c.gen++
	c.mu.Unlock()

	if c.opt.OnClear != nil {
		c.opt.OnClear()
	}
}

// Close waits for pending commits to finish and stops the background
// worker.  Commits after Close are discarded.
func (c *Controller) Close() error {
	c.closeOnce.Do(func() {
		c.closed = true
		if c.jobs != nil {
			close(c.jobs)
			<-c.done
		}
	})
	return nil
}

func (c *Controller) commit() {
	if c.path.IsEmpty() {
		return
	}
	if c.closed {
		c.log.Warn("signature commit after close")
		return
	}

	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	st := c.style
	if st.CanvasHeight <= 0 {
		st.CanvasHeight = c.bounds.URy
	}
	job := commitJob{path: c.path.Clone(), style: st, gen: gen}
	if c.jobs != nil {
		c.jobs <- job
		return
	}
	c.process(c.renderer, job)
}

func (c *Controller) worker(rd *Renderer) {
	defer close(c.done)
	for job := range c.jobs {
		c.process(rd, job)
	}
}

// process renders, stores and delivers one committed signature.
func (c *Controller) process(rd *Renderer, job commitJob) {
	res, err := rd.Rasterize(job.path, job.style)
	if err != nil {
		c.log.Error("cannot render signature", "error", err)
		return
	}

	if c.opt.Persister != nil {
		where, err := c.opt.Persister.Persist(context.Background(), res)
		if err != nil {
			c.log.Warn("signature not stored", "error", err)
		} else {
			c.log.Info("signature stored", "location", where)
		}
	}

	c.mu.Lock()
	if job.gen == c.gen {
		c.image = res
	}
	c.mu.Unlock()

	c.log.Debug("signature committed",
		"width", res.Width, "height", res.Height,
		"points", len(job.path.Points), "dots", len(job.path.Dots))
	if c.opt.OnCommit != nil {
		c.opt.OnCommit(res)
	}
}

// contains reports whether p lies in r.  The left and top edges belong to
// r, the right and bottom edges do not.
func contains(r rect.Rect, p vec.Vec2) bool {
	return p.X >= r.LLx && p.X < r.URx && p.Y >= r.LLy && p.Y < r.URy
}
