package style

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
	}{
		{"mm", UnitMM},
		{"cm", UnitCM},
		{"in", UnitIN},
		{"inches", UnitIN},
		{"pt", UnitPT},
		{"px", UnitPX},
		{" MM ", UnitMM},
	}
	for _, tt := range tests {
		got, err := ParseUnit(tt.in)
		require.NoError(t, err, "ParseUnit(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseUnit(%q)", tt.in)
	}

	_, err := ParseUnit("furlong")
	assert.Error(t, err)
	_, err = ParseUnit("")
	assert.Error(t, err)
}

func TestUnitInches(t *testing.T) {
	const eps = 1e-12
	assert.InDelta(t, 1.0, UnitMM.Inches(25.4, 0), eps)
	assert.InDelta(t, 1.0, UnitCM.Inches(2.54, 0), eps)
	assert.InDelta(t, 1.0, UnitIN.Inches(1, 0), eps)
	assert.InDelta(t, 1.0, UnitPT.Inches(72, 0), eps)
	assert.InDelta(t, 1.0, UnitPX.Inches(96, 96), eps)
	assert.InDelta(t, 2.0, UnitPX.Inches(600, 300), eps)
}

// Round trips through the fixed factors should stay within float noise.
func TestInchRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 89, 183, 247, 1000}
	for _, v := range samples {
		in := UnitMM.Inches(v, 0)
		back := in * MmPerInch
		if diff := math.Abs(back - v); diff > 1e-9 {
			t.Fatalf("mm round trip error too large: in=%gmm inches=%g back=%g diff=%g", v, in, back, diff)
		}
	}
	for _, v := range samples {
		in := UnitPT.Inches(v, 0)
		back := in * PtPerInch
		if diff := math.Abs(back - v); diff > 1e-9 {
			t.Fatalf("pt round trip error too large: in=%gpt inches=%g back=%g diff=%g", v, in, back, diff)
		}
	}
}

func TestLengthInches(t *testing.T) {
	l := Length{Value: 50.8, Unit: UnitMM}
	assert.InDelta(t, 2.0, l.Inches(0), 1e-12)
	assert.False(t, l.IsZero())
	assert.True(t, Length{Unit: UnitPT}.IsZero())
}

func TestUnitString(t *testing.T) {
	for _, u := range []Unit{UnitMM, UnitCM, UnitIN, UnitPT, UnitPX} {
		parsed, err := ParseUnit(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, parsed)
	}
	assert.Equal(t, "", UnitNone.String())
}
