// Package figure holds the drawable-figure data model the renderer consumes:
// a canvas size, an ordered set of regions, and the text annotations appended
// to the figure. Coordinates are points with the origin at the bottom left,
// so a positive y offset moves up.
package figure

import (
	"fmt"

	"github.com/tommct/publishutil/style"
)

// DefaultDPI is the raster resolution used when a figure does not set one.
const DefaultDPI = 100.0

// Figure is the top-level drawable canvas.
type Figure struct {
	Width   float64      `json:"width"`  // inches
	Height  float64      `json:"height"` // inches
	DPI     float64      `json:"dpi"`
	Regions []*Region    `json:"regions"`
	Texts   []Annotation `json:"texts"`
}

// Option configures a new figure.
type Option func(*Figure)

// WithDPI sets the raster resolution.
func WithDPI(dpi float64) Option {
	return func(f *Figure) {
		if dpi > 0 {
			f.DPI = dpi
		}
	}
}

// New creates a figure of the given size in inches.
func New(width, height float64, opts ...Option) *Figure {
	f := &Figure{Width: width, Height: height, DPI: DefaultDPI}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WidthPoints returns the figure width in points.
func (f *Figure) WidthPoints() float64 { return f.Width * style.PtPerInch }

// HeightPoints returns the figure height in points.
func (f *Figure) HeightPoints() float64 { return f.Height * style.PtPerInch }

// AddRegion appends a region placed by figure-fraction coordinates
// (x, y is the lower-left corner; all four values in [0, 1]).
// Region enumeration order is insertion order and never changes.
func (f *Figure) AddRegion(x, y, w, h float64) *Region {
	r := &Region{
		Frac: Rect{X0: x, Y0: y, X1: x + w, Y1: y + h},
		Pad:  DefaultPad(),
		fig:  f,
	}
	f.Regions = append(f.Regions, r)
	return r
}

// AddText appends a text annotation to the figure's text collection.
func (f *Figure) AddText(a Annotation) { f.Texts = append(f.Texts, a) }

// Region is a rectangular sub-area of a figure where data is plotted.
type Region struct {
	Frac Rect `json:"frac"` // placement in figure-fraction coordinates
	Pad  Pad  `json:"pad"`  // decoration padding in points (ticks, tick labels)

	fig *Figure
}

// FrameBox returns the region's frame rectangle in points.
func (r *Region) FrameBox() Rect {
	w, h := r.fig.WidthPoints(), r.fig.HeightPoints()
	return Rect{
		X0: r.Frac.X0 * w,
		Y0: r.Frac.Y0 * h,
		X1: r.Frac.X1 * w,
		Y1: r.Frac.Y1 * h,
	}
}

// TightBox returns the minimal rectangle enclosing the region's rendered
// content in points: the frame grown by the decoration padding.
func (r *Region) TightBox() Rect {
	box := r.FrameBox()
	return Rect{
		X0: box.X0 - r.Pad.Left,
		Y0: box.Y0 - r.Pad.Bottom,
		X1: box.X1 + r.Pad.Right,
		Y1: box.Y1 + r.Pad.Top,
	}
}

// Rect is an axis-aligned rectangle, (X0, Y0) bottom-left, (X1, Y1) top-right.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) String() string {
	return fmt.Sprintf("[%g %g %g %g]", r.X0, r.Y0, r.X1, r.Y1)
}

// Pad is the decoration padding around a region frame, in points.
type Pad struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// DefaultPad approximates the space tick marks and tick labels occupy.
func DefaultPad() Pad {
	return Pad{Left: 22, Right: 4, Top: 4, Bottom: 16}
}

// Annotation is a styled text record ready for the renderer. Plain data,
// no behavior.
type Annotation struct {
	Text       string  `json:"text"`
	X          float64 `json:"x"` // points
	Y          float64 `json:"y"` // points
	FontFamily string  `json:"fontfamily,omitempty"`
	FontSize   float64 `json:"fontsize"` // pt
	Bold       bool    `json:"bold,omitempty"`
	Italic     bool    `json:"italic,omitempty"`
}
