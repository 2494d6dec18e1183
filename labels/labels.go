// Package labels places panel labels ("A", "B", ...) next to a figure's
// regions according to a publication style.
//
// Which region carries which label is an explicit mapping owned by the
// caller; regions absent from the mapping are skipped. One deterministic
// pass in region order, no retries.
package labels

import (
	"github.com/tommct/publishutil/figure"
	"github.com/tommct/publishutil/style"
)

// Shift is an extra offset in points applied on top of the style's default
// label offset. Positive Y moves up.
type Shift struct {
	X float64
	Y float64
}

// PanelLabel is one placed label: the final annotation plus the region it
// belongs to.
type PanelLabel struct {
	figure.Annotation
	Region *figure.Region `json:"-"`
}

// Draw computes a label position for every region of fig present in m,
// appends the resulting annotations to the figure's text collection, and
// returns them in region-enumeration order.
//
// The anchor is the upper-left corner of the region's tight bounding box,
// offset by the style's default offset plus shift. Returns nil when the
// style defines no panel-label group.
func Draw(fig *figure.Figure, st *style.Style, m map[*figure.Region]string, shift Shift) []PanelLabel {
	if fig == nil || st == nil || st.Labels == nil {
		return nil
	}
	ls := st.Labels

	var placed []PanelLabel
	for _, region := range fig.Regions {
		text, ok := m[region]
		if !ok || text == "" {
			continue
		}

		box := region.TightBox()
		a := figure.Annotation{
			Text:       ls.Format(text),
			X:          box.X0 + ls.Offset[0] + shift.X,
			Y:          box.Y1 + ls.Offset[1] + shift.Y,
			FontFamily: ls.FontFamily,
			FontSize:   ls.FontSize,
			Bold:       ls.Bold,
			Italic:     ls.Italic,
		}
		fig.AddText(a)
		placed = append(placed, PanelLabel{Annotation: a, Region: region})
	}
	return placed
}
