package renderer

import "github.com/tommct/publishutil/figure"

// Renderer turns a figure into final file bytes, for example PDF or PNG.
// Render returns the produced binary data and a possible error.
type Renderer interface {
	Render(fig *figure.Figure) ([]byte, error)
}
