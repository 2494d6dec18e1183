package figsize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		in   string
		want Request
	}{
		{"1col", Request{Columns: 1}},
		{"2col", Request{Columns: 2}},
		{"0.75w", Request{WidthProportion: 0.75}},
		{"1w", Request{WidthProportion: 1}},
		{"2col x 16:9", Request{Columns: 2, WHRatio: 16.0 / 9.0}},
		{"1col x 0.4h", Request{Columns: 1, Height: 0.4}},
		{"0.5w x 1h", Request{WidthProportion: 0.5, Height: 1}},
		{"1col x 3.2h", Request{Columns: 1, Height: 3.2}},
		{"  2col  x  4:3 ", Request{Columns: 2, WHRatio: 4.0 / 3.0}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpec(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpecErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"col",
		"2",
		"2.5col",
		"0col",
		"2col x",
		"2col x 16:0",
		"2col y 16:9",
		"2col x 0.5", // height needs the h suffix or a ratio
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSpec(in)
			require.Error(t, err, "input %q", in)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}
