package siunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		name      string
		value     float64
		precision int
		wantVal   float64
		wantExp   int
	}{
		{"milli range", 0.04784, 1, 47.8, -3},
		{"kilo range", 4781.123, 1, 4.8, 3},
		{"negative", -0.04784, 2, -47.84, -3},
		{"zero", 0, 1, 0, 0},
		{"beyond yotta", 1e29, 1, 100.0, 27},
		{"beyond yocto", 1e-27, 1, 1.0, -27},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val, exp := Split(tc.value, tc.precision)
			assert.InDelta(t, tc.wantVal, val, 1e-9)
			assert.Equal(t, tc.wantExp, exp)
		})
	}
}

func TestPrefixFor(t *testing.T) {
	p, err := PrefixFor(-24)
	require.NoError(t, err)
	assert.Equal(t, "y", p)

	p, err = PrefixFor(0)
	require.NoError(t, err)
	assert.Equal(t, "", p)

	_, err = PrefixFor(30)
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		value     float64
		precision int
		want      string
	}{
		{0.04781, 2, "47.81 m"},
		{4781.123, 2, "4.78 k"},
		{0.04781, 3, "47.810 m"},
		{1e-27, 1, "1.0e-27"},
		{1.764e-24, 1, "1.8 y"},
		{7.4088e-23, 2, "74.09 y"},
		{3.1117e-21, 2, "3.11 z"},
		{5.48903e-18, 2, "5.49 a"},
		{9.68265e-15, 2, "9.68 f"},
		{1.70802e-11, 2, "17.08 p"},
		{3.01295e-08, 2, "30.13 n"},
		{1.26544e-06, 2, "1.27 µ"},
		{0.00223223, 2, "2.23 m"},
		{3.93766, 2, "3.94"},
		{165.382, 2, "165.38"},
		{6946.03, 2, "6.95 k"},
		{291733, 2, "291.73 k"},
		{1.22528e+07, 2, "12.25 M"},
		{2.16139e+10, 2, "21.61 G"},
		{3.8127e+13, 2, "38.13 T"},
		{1.60133e+15, 2, "1.60 P"},
		{2.82475e+18, 2, "2.82 E"},
		{4.98286e+21, 2, "4.98 Z"},
		{8.78977e+24, 2, "8.79 Y"},
		{1.55051e+28, 2, "15.51e+27"},
		{6.51216e+29, 2, "651.22e+27"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.value, tc.precision))
		})
	}
}

func TestFormatterUnit(t *testing.T) {
	f := Formatter{Precision: 1, Unit: "B"}
	assert.Equal(t, "1.2 kB", f.Format(1234))
	assert.Equal(t, "3.9 B", f.Format(3.9))
}

func TestParse(t *testing.T) {
	v, err := Parse("47.8 m")
	require.NoError(t, err)
	assert.InDelta(t, 0.0478, v, 1e-9)

	v, err = Parse("4.78 k")
	require.NoError(t, err)
	assert.InDelta(t, 4780.0, v, 1e-9)

	v, err = Parse("1.0e-27")
	require.NoError(t, err)
	assert.InDelta(t, 1e-27, v, 1e-36)

	v, err = Parse("-12.5 µ")
	require.NoError(t, err)
	assert.InDelta(t, -12.5e-6, v, 1e-12)

	_, err = Parse("not a number")
	assert.Error(t, err)

	_, err = Parse("12 Q")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, value := range []float64{0.0478, 4780, 1.27e-6, 291730} {
		parsed, err := Parse(Format(value, 3))
		require.NoError(t, err)
		assert.InDelta(t, value, parsed, value*1e-3)
	}
}
