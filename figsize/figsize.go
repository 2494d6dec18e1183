// Package figsize computes publication-compliant figure dimensions from a
// resolved style and a sizing request. Pure computation: same inputs, same
// output, always in inches.
package figsize

import (
	"errors"
	"fmt"
	"math"

	"github.com/tommct/publishutil/style"
)

// GoldenRatio is the default width:height ratio applied when a request
// carries no height and no explicit ratio.
var GoldenRatio = (1 + math.Sqrt(5)) / 2

// ColumnsTakePrecedence is the tie-break policy when a request sets both
// Columns and WidthProportion: columns win. A single constant rather than
// branch ordering, so the rule has exactly one home.
const ColumnsTakePrecedence = true

// ErrSizeConstraint indicates an explicitly requested height exceeds the
// style's max_height.
var ErrSizeConstraint = errors.New("size exceeds style constraint")

// ErrInvalidRequest indicates a request field is out of its documented range.
var ErrInvalidRequest = errors.New("invalid size request")

// Request describes one sizing call. Zero values mean "unset".
type Request struct {
	// Columns is the number of publication columns to span. Width becomes
	// Columns*column_width + (Columns-1)*gutter_width, capped at max_width.
	Columns int
	// WidthProportion in (0, 1] is the fraction of max_width to occupy.
	// Ignored when Columns is set and ColumnsTakePrecedence holds.
	WidthProportion float64
	// Height in (0, 1] is a fraction of max_height; a value above 1 is an
	// absolute height in the style's declared unit.
	Height float64
	// WHRatio is the width:height aspect ratio used when Height is unset.
	// When both are unset the golden ratio applies.
	WHRatio float64
}

// Size is a computed figure size in inches.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// WH returns the pair for APIs that want two floats.
func (s Size) WH() (w, h float64) { return s.Width, s.Height }

func (s Size) String() string { return fmt.Sprintf("%.4gin x %.4gin", s.Width, s.Height) }

// Compute resolves a Request against a style into a width/height pair in
// inches.
//
// Width: columns if set, else proportion of max_width, else full max_width.
// A column width is capped at max_width; columns tile a page, so spilling
// over the bound is not an error. Height: proportion or absolute if set,
// else derived from the ratio. A ratio-derived height is clamped to
// max_height; an explicit absolute height that exceeds it fails with
// ErrSizeConstraint.
func Compute(st *style.Style, req Request) (Size, error) {
	if st == nil {
		return Size{}, fmt.Errorf("%w: nil style", ErrInvalidRequest)
	}
	fs := st.FigSize

	width, err := rawWidth(fs, req)
	if err != nil {
		return Size{}, err
	}

	height, explicit, err := rawHeight(fs, req, width)
	if err != nil {
		return Size{}, err
	}
	if height > fs.MaxHeight {
		if explicit {
			return Size{}, fmt.Errorf("%w: requested height %g%s exceeds max_height %g%s",
				ErrSizeConstraint, height, fs.Units, fs.MaxHeight, fs.Units)
		}
		height = fs.MaxHeight
	}

	return Size{Width: fs.Inches(width), Height: fs.Inches(height)}, nil
}

// rawWidth returns the figure width in the style's declared unit.
func rawWidth(fs style.FigSize, req Request) (float64, error) {
	if req.Columns < 0 {
		return 0, fmt.Errorf("%w: n_columns must be positive, got %d", ErrInvalidRequest, req.Columns)
	}
	if req.WidthProportion < 0 || req.WidthProportion > 1 {
		return 0, fmt.Errorf("%w: width_proportion must be in (0, 1], got %g", ErrInvalidRequest, req.WidthProportion)
	}

	useColumns := req.Columns > 0
	if useColumns && req.WidthProportion > 0 && !ColumnsTakePrecedence {
		useColumns = false
	}

	switch {
	case useColumns:
		n := float64(req.Columns)
		width := n*fs.ColumnWidth + (n-1)*fs.GutterWidth
		return math.Min(width, fs.MaxWidth), nil
	case req.WidthProportion > 0:
		return req.WidthProportion * fs.MaxWidth, nil
	default:
		// No sizing hint at all: use the full allowed width.
		return fs.MaxWidth, nil
	}
}

// rawHeight returns the figure height in the style's declared unit, and
// whether the caller named it explicitly (which forbids clamping).
func rawHeight(fs style.FigSize, req Request, width float64) (h float64, explicit bool, err error) {
	switch {
	case req.Height < 0:
		return 0, false, fmt.Errorf("%w: height must be positive, got %g", ErrInvalidRequest, req.Height)
	case req.Height > 1:
		return req.Height, true, nil
	case req.Height > 0:
		return req.Height * fs.MaxHeight, true, nil
	case req.WHRatio < 0:
		return 0, false, fmt.Errorf("%w: wh_ratio must be positive, got %g", ErrInvalidRequest, req.WHRatio)
	case req.WHRatio > 0:
		return width / req.WHRatio, false, nil
	default:
		return width / GoldenRatio, false, nil
	}
}
