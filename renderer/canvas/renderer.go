// Package canvasrenderer draws figures via github.com/tdewolff/canvas.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	svgrenderer "github.com/tdewolff/canvas/renderers/svg"

	"github.com/tommct/publishutil/figure"
	"github.com/tommct/publishutil/fonts"
	"github.com/tommct/publishutil/renderer"
	"github.com/tommct/publishutil/style"
)

const frameStrokeWidth = 0.2 // mm

// Format selects the output encoding.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat maps a file extension or flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "pdf":
		return FormatPDF, nil
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", s)
	}
}

// Options configures the canvas renderer.
type Options struct {
	Format Format
	// Frames draws each region's frame rectangle, useful for previews of
	// label placement before real plot content exists.
	Frames bool
}

// Renderer draws a figure's regions and text annotations onto a canvas and
// encodes it in the configured format.
type Renderer struct {
	opts Options

	fontMu   sync.Mutex
	families map[string]*canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)

// New creates a renderer for the given output format with frames enabled.
func New(format Format) *Renderer { return NewWithOptions(Options{Format: format, Frames: true}) }

// NewWithOptions creates a renderer with explicit options.
func NewWithOptions(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatPDF
	}
	return &Renderer{
		opts:     opts,
		families: map[string]*canvas.FontFamily{},
	}
}

// Render renders the figure into a byte slice in the configured format.
func (r *Renderer) Render(fig *figure.Figure) ([]byte, error) {
	if fig == nil {
		return nil, fmt.Errorf("nothing to render: nil figure")
	}
	if fig.Width <= 0 || fig.Height <= 0 {
		return nil, fmt.Errorf("figure size %gx%g inches is not drawable", fig.Width, fig.Height)
	}

	width := fig.Width * style.MmPerInch
	height := fig.Height * style.MmPerInch
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	// canvas and figure both use a bottom-left origin, no flip needed

	if r.opts.Frames {
		r.drawFrames(ctx, fig)
	}
	if err := r.drawTexts(ctx, fig); err != nil {
		return nil, err
	}

	return r.encode(c, fig, width, height)
}

func (r *Renderer) encode(c *canvas.Canvas, fig *figure.Figure, width, height float64) ([]byte, error) {
	var buf bytes.Buffer
	switch r.opts.Format {
	case FormatPDF:
		writer := pdf.New(&buf, width, height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("writing PDF: %w", err)
		}
	case FormatPNG:
		dpi := fig.DPI
		if dpi <= 0 {
			dpi = figure.DefaultDPI
		}
		img := rasterizer.Draw(c, canvas.DPMM(dpi/style.MmPerInch), canvas.DefaultColorSpace)
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encoding PNG: %w", err)
		}
	case FormatSVG:
		writer := svgrenderer.New(&buf, width, height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("writing SVG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported output format %q", r.opts.Format)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawFrames(ctx *canvas.Context, fig *figure.Figure) {
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(canvas.Hex("#808080"))
	ctx.SetStrokeWidth(frameStrokeWidth)
	for _, region := range fig.Regions {
		box := region.FrameBox()
		ctx.DrawPath(ptToMM(box.X0), ptToMM(box.Y0), canvas.Rectangle(ptToMM(box.Width()), ptToMM(box.Height())))
	}
}

// drawTexts places every annotation with its (X, Y) as the baseline origin.
func (r *Renderer) drawTexts(ctx *canvas.Context, fig *figure.Figure) error {
	for _, a := range fig.Texts {
		face, err := r.fontFace(a)
		if err != nil {
			return err
		}
		line := canvas.NewTextLine(face, a.Text, canvas.Left)
		ctx.DrawText(ptToMM(a.X), ptToMM(a.Y), line)
	}
	return nil
}

func (r *Renderer) fontFace(a figure.Annotation) (*canvas.FontFace, error) {
	family, err := r.ensureFamily(a.FontFamily, a.Bold, a.Italic)
	if err != nil {
		return nil, err
	}
	fontStyle := canvas.FontRegular
	if a.Bold {
		fontStyle |= canvas.FontBold
	}
	if a.Italic {
		fontStyle |= canvas.FontItalic
	}
	size := a.FontSize
	if size <= 0 {
		size = 10
	}
	return family.Face(size, canvas.Black, fontStyle, canvas.FontNormal), nil
}

func (r *Renderer) ensureFamily(name string, bold, italic bool) (*canvas.FontFamily, error) {
	if name == "" {
		name = fonts.DefaultFamily
	}
	key := fmt.Sprintf("%s|%v|%v", name, bold, italic)

	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if family, ok := r.families[key]; ok {
		return family, nil
	}

	data, err := fonts.Load(name, bold, italic)
	if err != nil {
		return nil, err
	}
	fontStyle := canvas.FontRegular
	if bold {
		fontStyle |= canvas.FontBold
	}
	if italic {
		fontStyle |= canvas.FontItalic
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, fontStyle); err != nil {
		return nil, fmt.Errorf("loading bundled font for %s: %w", name, err)
	}
	r.families[key] = family
	return family, nil
}

// ptToMM converts points to millimeters, the canvas' native unit.
func ptToMM(pt float64) float64 { return pt * style.MmPerInch / style.PtPerInch }
