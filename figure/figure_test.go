package figure

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	fig := New(7.2, 9.7)
	assert.Equal(t, 7.2, fig.Width)
	assert.Equal(t, 9.7, fig.Height)
	assert.Equal(t, DefaultDPI, fig.DPI)
	assert.Empty(t, fig.Regions)

	fig = New(4, 3, WithDPI(300))
	assert.Equal(t, 300.0, fig.DPI)
}

func TestPointsConversion(t *testing.T) {
	fig := New(2, 3)
	assert.InDelta(t, 144.0, fig.WidthPoints(), 1e-12)
	assert.InDelta(t, 216.0, fig.HeightPoints(), 1e-12)
}

func TestAddRegionPreservesOrder(t *testing.T) {
	fig := New(6, 4)
	a := fig.AddRegion(0, 0.5, 0.5, 0.5)
	b := fig.AddRegion(0.5, 0.5, 0.5, 0.5)
	c := fig.AddRegion(0, 0, 1, 0.5)

	require.Len(t, fig.Regions, 3)
	assert.Same(t, a, fig.Regions[0])
	assert.Same(t, b, fig.Regions[1])
	assert.Same(t, c, fig.Regions[2])
}

func TestFrameBox(t *testing.T) {
	fig := New(2, 2) // 144pt x 144pt
	r := fig.AddRegion(0.25, 0.5, 0.5, 0.25)

	box := r.FrameBox()
	assert.InDelta(t, 36.0, box.X0, 1e-12)
	assert.InDelta(t, 72.0, box.Y0, 1e-12)
	assert.InDelta(t, 108.0, box.X1, 1e-12)
	assert.InDelta(t, 108.0, box.Y1, 1e-12)
	assert.InDelta(t, 72.0, box.Width(), 1e-12)
	assert.InDelta(t, 36.0, box.Height(), 1e-12)
}

func TestTightBoxGrowsByPad(t *testing.T) {
	fig := New(2, 2)
	r := fig.AddRegion(0.25, 0.5, 0.5, 0.25)
	r.Pad = Pad{Left: 10, Right: 2, Top: 3, Bottom: 8}

	frame := r.FrameBox()
	tight := r.TightBox()
	assert.InDelta(t, frame.X0-10, tight.X0, 1e-12)
	assert.InDelta(t, frame.X1+2, tight.X1, 1e-12)
	assert.InDelta(t, frame.Y1+3, tight.Y1, 1e-12)
	assert.InDelta(t, frame.Y0-8, tight.Y0, 1e-12)
}

func TestAddText(t *testing.T) {
	fig := New(2, 2)
	fig.AddText(Annotation{Text: "A", X: 1, Y: 2})
	fig.AddText(Annotation{Text: "B", X: 3, Y: 4})
	require.Len(t, fig.Texts, 2)
	assert.Equal(t, "A", fig.Texts[0].Text)
	assert.Equal(t, "B", fig.Texts[1].Text)
}

func TestWriteDebugJSON(t *testing.T) {
	fig := New(2, 2)
	fig.AddRegion(0, 0, 1, 1)
	fig.AddText(Annotation{Text: "a", FontSize: 8})

	path := filepath.Join(t.TempDir(), "fig.json")
	require.NoError(t, WriteDebugJSON(fig, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "regions")
	assert.Contains(t, decoded, "texts")

	assert.NoError(t, WriteDebugJSON(nil, path))
}
