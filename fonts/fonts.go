// Package fonts exposes the bundled font data the renderer falls back on,
// keyed by the generic family names style files use.
package fonts

import (
	"fmt"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10boldoblique"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
)

// DefaultFamily is used when a style names no font family.
const DefaultFamily = "sans-serif"

type variant struct {
	bold   bool
	italic bool
}

var (
	serif = map[variant][]byte{
		{false, false}: lmroman10regular.TTF,
		{true, false}:  lmroman10bold.TTF,
		{false, true}:  lmroman10italic.TTF,
		{true, true}:   lmroman10bolditalic.TTF,
	}
	sans = map[variant][]byte{
		{false, false}: lmsans10regular.TTF,
		{true, false}:  lmsans10bold.TTF,
		{false, true}:  lmsans10oblique.TTF,
		{true, true}:   lmsans10boldoblique.TTF,
	}
)

// Load returns TTF bytes for a generic family name and variant. Unknown
// family names fall back to the sans family rather than failing: label
// drawing should not die on a cosmetic field.
func Load(family string, bold, italic bool) ([]byte, error) {
	table := sans
	switch family {
	case "serif", "roman":
		table = serif
	}
	data, ok := table[variant{bold, italic}]
	if !ok || len(data) == 0 {
		return nil, fmt.Errorf("no bundled font for family %q (bold=%v italic=%v)", family, bold, italic)
	}
	return data, nil
}
