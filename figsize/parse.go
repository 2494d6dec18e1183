package figsize

import (
	"fmt"
	"math"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Compact size-spec expressions for command lines and config one-liners:
//
//	"2col"          two columns, golden-ratio height
//	"0.75w"         75% of max_width
//	"2col x 16:9"   two columns at a 16:9 aspect
//	"1col x 0.4h"   one column, 40% of max_height
//	"1col x 3.2h"   one column, 3.2 absolute height units
var (
	specLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
		{Name: "Ident", Pattern: `[A-Za-z]+`},
		{Name: "Colon", Pattern: `:`},
	})

	specParser = participle.MustBuild[sizeExpr](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
)

type sizeExpr struct {
	Width  widthTerm   `parser:"@@"`
	Height *heightTerm `parser:"( 'x' @@ )?"`
}

type widthTerm struct {
	Value float64 `parser:"@Number"`
	Kind  string  `parser:"@('col' | 'w')"`
}

type heightTerm struct {
	Value float64  `parser:"@Number"`
	Ratio *float64 `parser:"( ':' @Number"`
	Prop  bool     `parser:"| @'h' )"`
}

// ParseSpec parses a compact size-spec expression into a Request.
func ParseSpec(input string) (Request, error) {
	expr, err := specParser.ParseString("", input)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %q: %v", ErrInvalidRequest, input, err)
	}

	var req Request
	switch expr.Width.Kind {
	case "col":
		if expr.Width.Value < 1 || expr.Width.Value != math.Trunc(expr.Width.Value) {
			return Request{}, fmt.Errorf("%w: %q: column count must be a positive integer", ErrInvalidRequest, input)
		}
		req.Columns = int(expr.Width.Value)
	case "w":
		req.WidthProportion = expr.Width.Value
	}

	if h := expr.Height; h != nil {
		if h.Ratio != nil {
			if *h.Ratio == 0 {
				return Request{}, fmt.Errorf("%w: %q: zero ratio denominator", ErrInvalidRequest, input)
			}
			req.WHRatio = h.Value / *h.Ratio
		} else {
			req.Height = h.Value
		}
	}
	return req, nil
}
