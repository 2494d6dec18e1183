// Package style resolves publication style names to immutable configuration
// records: the sizing parameters of a journal's figure grid and the house
// style for panel labels.
package style

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Style is the resolved, immutable configuration for one publication.
// Safe for concurrent read; never mutated after Parse.
type Style struct {
	Name    string       `json:"name"`
	Source  string       `json:"source"` // "builtin" or the file path
	FigSize FigSize      `json:"figsize"`
	Labels  *PanelLabels `json:"panel_labels,omitempty"` // nil when the style defines none
}

// FigSize holds the sizing fields of a style, all in Units.
type FigSize struct {
	ColumnWidth float64 `json:"column_width"`
	GutterWidth float64 `json:"gutter_width"`
	MaxWidth    float64 `json:"max_width"`
	MaxHeight   float64 `json:"max_height"`
	Units       Unit    `json:"units"`
	DPI         float64 `json:"dpi,omitempty"` // required iff Units == UnitPX
}

// Inches converts a value in the style's declared unit to inches.
func (f FigSize) Inches(v float64) float64 { return f.Units.Inches(v, f.DPI) }

// MaxWidthInches returns the page width bound in inches.
func (f FigSize) MaxWidthInches() float64 { return f.Inches(f.MaxWidth) }

// MaxHeightInches returns the page height bound in inches.
func (f FigSize) MaxHeightInches() float64 { return f.Inches(f.MaxHeight) }

// PanelLabels holds the label styling fields of a style.
type PanelLabels struct {
	FontSize   float64    `json:"fontsize"` // pt
	FontFamily string     `json:"fontfamily,omitempty"`
	Bold       bool       `json:"bold,omitempty"`
	Italic     bool       `json:"italic,omitempty"`
	Case       Case       `json:"case"`
	Prefix     string     `json:"prefix,omitempty"`
	Suffix     string     `json:"suffix,omitempty"`
	Offset     [2]float64 `json:"offset"` // pt from the tight-box upper left, +y up
}

// Format applies the case transform and prefix/suffix to a raw label text.
// Case first, affixes after, so a prefix like "(" survives an upper transform.
func (p *PanelLabels) Format(text string) string {
	return p.Prefix + p.Case.Apply(text) + p.Suffix
}

// Case is a label text transform.
type Case string

const (
	CaseNone  Case = "none"
	CaseLower Case = "lower"
	CaseUpper Case = "upper"
)

// Apply transforms s according to the case rule.
func (c Case) Apply(s string) string {
	switch c {
	case CaseLower:
		return strings.ToLower(s)
	case CaseUpper:
		return strings.ToUpper(s)
	default:
		return s
	}
}

// File schema. Pointer fields distinguish "absent" from zero so validation
// can report missing keys precisely.
type fileSchema struct {
	FigSize     *figsizeSchema     `yaml:"figsize"`
	PanelLabels *panelLabelsSchema `yaml:"panel_labels"`
}

type figsizeSchema struct {
	ColumnWidth *float64 `yaml:"column_width"`
	GutterWidth *float64 `yaml:"gutter_width"`
	MaxWidth    *float64 `yaml:"max_width"`
	MaxHeight   *float64 `yaml:"max_height"`
	Units       *string  `yaml:"units"`
	DPI         *float64 `yaml:"dpi"`
}

type panelLabelsSchema struct {
	FontSize   *float64  `yaml:"fontsize"`
	FontFamily string    `yaml:"fontfamily"`
	FontWeight string    `yaml:"fontweight"`
	FontStyle  string    `yaml:"fontstyle"`
	Case       string    `yaml:"case"`
	Prefix     string    `yaml:"prefix"`
	Suffix     string    `yaml:"suffix"`
	Offset     []float64 `yaml:"offset"`
}

// Parse decodes and validates one style document. source appears in error
// messages and in Style.Source.
func Parse(name, source string, data []byte) (*Style, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw fileSchema
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, formatErr(source, "empty document")
		}
		return nil, &FormatError{Source: source, Reason: "not a valid style document", Err: err}
	}

	st := &Style{Name: name, Source: source}
	if raw.FigSize == nil {
		return nil, formatErr(source, "missing required key %q", "figsize")
	}
	fs, err := raw.FigSize.validate(source)
	if err != nil {
		return nil, err
	}
	st.FigSize = fs

	if raw.PanelLabels != nil {
		pl, err := raw.PanelLabels.validate(source)
		if err != nil {
			return nil, err
		}
		st.Labels = pl
	}
	return st, nil
}

func (s *figsizeSchema) validate(source string) (FigSize, error) {
	required := []struct {
		key string
		val *float64
	}{
		{"column_width", s.ColumnWidth},
		{"gutter_width", s.GutterWidth},
		{"max_width", s.MaxWidth},
		{"max_height", s.MaxHeight},
	}
	for _, r := range required {
		if r.val == nil {
			return FigSize{}, formatErr(source, "figsize: missing required key %q", r.key)
		}
	}
	if s.Units == nil {
		return FigSize{}, formatErr(source, "figsize: missing required key %q", "units")
	}
	unit, err := ParseUnit(*s.Units)
	if err != nil {
		return FigSize{}, &FormatError{Source: source, Reason: "figsize", Err: err}
	}

	fs := FigSize{
		ColumnWidth: *s.ColumnWidth,
		GutterWidth: *s.GutterWidth,
		MaxWidth:    *s.MaxWidth,
		MaxHeight:   *s.MaxHeight,
		Units:       unit,
	}
	if fs.ColumnWidth <= 0 || fs.MaxWidth <= 0 || fs.MaxHeight <= 0 {
		return FigSize{}, formatErr(source, "figsize: column_width, max_width and max_height must be positive")
	}
	if fs.GutterWidth < 0 {
		return FigSize{}, formatErr(source, "figsize: gutter_width must not be negative")
	}

	if unit == UnitPX {
		if s.DPI == nil {
			return FigSize{}, formatErr(source, "figsize: units 'px' requires key %q", "dpi")
		}
		if *s.DPI <= 0 {
			return FigSize{}, formatErr(source, "figsize: dpi must be positive")
		}
		fs.DPI = *s.DPI
	}
	return fs, nil
}

func (s *panelLabelsSchema) validate(source string) (*PanelLabels, error) {
	if s.FontSize == nil {
		return nil, formatErr(source, "panel_labels: missing required key %q", "fontsize")
	}
	if *s.FontSize <= 0 {
		return nil, formatErr(source, "panel_labels: fontsize must be positive")
	}

	pl := &PanelLabels{
		FontSize:   *s.FontSize,
		FontFamily: s.FontFamily,
		Prefix:     s.Prefix,
		Suffix:     s.Suffix,
		Case:       CaseNone,
	}

	switch s.Case {
	case "", string(CaseNone):
	case string(CaseLower):
		pl.Case = CaseLower
	case string(CaseUpper):
		pl.Case = CaseUpper
	default:
		return nil, formatErr(source, "panel_labels: case must be one of 'lower', 'upper', 'none', got %q", s.Case)
	}

	switch s.FontWeight {
	case "", "normal":
	case "bold":
		pl.Bold = true
	default:
		return nil, formatErr(source, "panel_labels: fontweight must be 'normal' or 'bold', got %q", s.FontWeight)
	}
	switch s.FontStyle {
	case "", "normal":
	case "italic", "oblique":
		pl.Italic = true
	default:
		return nil, formatErr(source, "panel_labels: fontstyle must be 'normal', 'italic' or 'oblique', got %q", s.FontStyle)
	}

	switch len(s.Offset) {
	case 0:
	case 2:
		pl.Offset = [2]float64{s.Offset[0], s.Offset[1]}
	default:
		return nil, formatErr(source, "panel_labels: offset must be [x, y], got %d values", len(s.Offset))
	}
	return pl, nil
}

// String implements fmt.Stringer for log-friendly output.
func (st *Style) String() string {
	return fmt.Sprintf("%s (%gx%g %s max)", st.Name, st.FigSize.MaxWidth, st.FigSize.MaxHeight, st.FigSize.Units)
}
